package atlas

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/ib-77/ropatlas/pkg/rop"
	"github.com/ib-77/ropatlas/pkg/rop/solo"
	"github.com/mudler/xlog"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidAtlas      = errors.New("invalid atlas")
	ErrMultipleDocuments = errors.New("multiple documents")
)

// Document is the on-disk form of an Atlas.
type Document struct {
	Capitals    map[string]string `yaml:"capitals"`
	Populations map[string]int    `yaml:"populations"`
	Mayors      map[string]string `yaml:"mayors"`
}

// Load reads and validates a YAML atlas file.
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading atlas %s: %w", path, err)
	}

	a, err := Parse(data)
	if err != nil {
		xlog.Error("failed to load atlas", "path", path, "error", err)
		return nil, fmt.Errorf("loading atlas %s: %w", path, err)
	}
	return a, nil
}

// Parse decodes a YAML atlas document. Empty input yields an empty Atlas.
func Parse(data []byte) (*Atlas, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	switch err := dec.Decode(&doc); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("decoding atlas: %w", err)
	default:
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding atlas: %w", ErrMultipleDocuments)
		}
	}

	res := doc.Validate(context.Background())
	if res.IsFailure() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAtlas, res.Err())
	}

	capitals := NewMapTable(doc.Capitals)
	populations := NewMapTable(doc.Populations)
	mayors := NewMapTable(doc.Mayors)
	xlog.Debug("atlas parsed", "capitals", capitals.Len(), "populations", populations.Len(), "mayors", mayors.Len())

	return New(capitals, populations, mayors), nil
}

// Validate reports every problem in the document, not just the first.
func (d Document) Validate(ctx context.Context) rop.Result[Document] {
	return solo.ValidateAll(ctx, rop.Success(d), false,
		d.check(noEmptyNames),
		d.check(noEmptyCapitals),
		d.check(noNegativePopulations),
	)
}

func (d Document) check(f func(ctx context.Context, in Document) (bool, string)) func(context.Context, rop.Result[Document]) rop.Result[Document] {
	return func(ctx context.Context, _ rop.Result[Document]) rop.Result[Document] {
		return solo.Validate(ctx, d, f)
	}
}

func noEmptyNames(_ context.Context, d Document) (bool, string) {
	tables := []struct {
		name string
		keys []string
	}{
		{"capitals", slices.Collect(maps.Keys(d.Capitals))},
		{"populations", slices.Collect(maps.Keys(d.Populations))},
		{"mayors", slices.Collect(maps.Keys(d.Mayors))},
	}
	for _, t := range tables {
		if slices.Contains(t.keys, "") {
			return false, "empty key in " + t.name
		}
	}
	return true, ""
}

func noEmptyCapitals(_ context.Context, d Document) (bool, string) {
	for _, country := range slices.Sorted(maps.Keys(d.Capitals)) {
		if d.Capitals[country] == "" {
			return false, fmt.Sprintf("empty capital for %q", country)
		}
	}
	return true, ""
}

func noNegativePopulations(_ context.Context, d Document) (bool, string) {
	for _, capital := range slices.Sorted(maps.Keys(d.Populations)) {
		if d.Populations[capital] < 0 {
			return false, fmt.Sprintf("negative population for %q", capital)
		}
	}
	return true, ""
}
