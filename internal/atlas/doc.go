// Package atlas resolves a country's capital city and the capital's
// population (in thousands) or mayor.
//
// The population lookup is offered in two forms: PopulationOfCapital
// returns a rop.Result[int], PopulationOfCapitalErr returns (int, error).
// Both fail with ErrCapitalNotFound or ErrPopulationNotFound, and the
// population table is never consulted when the capital is unknown.
package atlas
