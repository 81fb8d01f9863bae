package atlas

import (
	"context"
	"errors"

	"github.com/ib-77/ropatlas/pkg/rop"
	"github.com/ib-77/ropatlas/pkg/rop/chain"
	"github.com/mudler/xlog"
)

var (
	ErrCapitalNotFound    = errors.New("capitalNotFound")
	ErrPopulationNotFound = errors.New("populationNotFound")
)

// Atlas holds the country → capital, capital → population and
// capital → mayor tables. It is never mutated after construction.
type Atlas struct {
	capitals    Table[string, string]
	populations Table[string, int]
	mayors      Table[string, string]
}

// New builds an Atlas over the given tables. A nil table behaves as empty.
func New(capitals Table[string, string], populations Table[string, int], mayors Table[string, string]) *Atlas {
	if capitals == nil {
		capitals = NewMapTable[string, string](nil)
	}
	if populations == nil {
		populations = NewMapTable[string, int](nil)
	}
	if mayors == nil {
		mayors = NewMapTable[string, string](nil)
	}
	return &Atlas{capitals: capitals, populations: populations, mayors: mayors}
}

// FromMaps copies the given maps into a new Atlas.
func FromMaps(capitals map[string]string, populations map[string]int, mayors map[string]string) *Atlas {
	return New(NewMapTable(capitals), NewMapTable(populations), NewMapTable(mayors))
}

func Empty() *Atlas {
	return New(nil, nil, nil)
}

func (a *Atlas) CapitalOf(_ context.Context, country string) (string, error) {
	capital, ok := a.capitals.Lookup(country)
	if !ok {
		return "", ErrCapitalNotFound
	}
	return capital, nil
}

func (a *Atlas) PopulationOf(_ context.Context, capital string) (int, error) {
	population, ok := a.populations.Lookup(capital)
	if !ok {
		return 0, ErrPopulationNotFound
	}
	return population, nil
}

// PopulationOfCapital resolves the population of country's capital.
func (a *Atlas) PopulationOfCapital(ctx context.Context, country string) rop.Result[int] {
	capital := chain.ThenTry(chain.FromValue(ctx, country), a.CapitalOf)
	res := chain.ThenTry(capital, a.PopulationOf).Result()

	if res.IsSuccess() {
		xlog.Debug("population resolved", "country", country, "population", res.Result(), "result", res.Id())
	} else {
		xlog.Debug("population lookup failed", "country", country, "error", res.Err(), "result", res.Id())
	}
	return res
}

// PopulationOfCapitalErr is PopulationOfCapital with the failure returned
// as an error.
func (a *Atlas) PopulationOfCapitalErr(ctx context.Context, country string) (int, error) {
	capital, err := a.CapitalOf(ctx, country)
	if err != nil {
		return 0, err
	}
	return a.PopulationOf(ctx, capital)
}

// MayorOfCapital returns the mayor of country's capital, if both are known.
func (a *Atlas) MayorOfCapital(_ context.Context, country string) (string, bool) {
	capital, ok := a.capitals.Lookup(country)
	if !ok {
		return "", false
	}
	return a.mayors.Lookup(capital)
}
