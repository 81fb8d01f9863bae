package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var c CLI
	var out bytes.Buffer
	c.Out = &out

	parser, err := kong.New(&c, kong.Name("atlas"), kong.Exit(func(int) { t.Fatalf("unexpected exit") }))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	err = kctx.Run(&c.Context)
	return out.String(), err
}

func writeAtlas(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atlas.yaml")
	data := "capitals:\n  France: Paris\n  Italy: Rome\npopulations:\n  Paris: 2148\nmayors:\n  Paris: Anne Hidalgo\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestPopulation_DefaultsToFranceOnEmptyAtlas(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "Error: capitalNotFound\n", out)
}

func TestPopulation_WithAtlasFile(t *testing.T) {
	path := writeAtlas(t)

	out, err := run(t, "--atlas", path, "population", "France")
	require.NoError(t, err)
	assert.Equal(t, "2148 thousand inhabitants\n", out)

	out, err = run(t, "--atlas", path, "population", "Italy")
	require.NoError(t, err)
	assert.Equal(t, "Error: populationNotFound\n", out)
}

func TestPopulation_MissingAtlasFile(t *testing.T) {
	_, err := run(t, "--atlas", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMayor(t *testing.T) {
	path := writeAtlas(t)

	out, err := run(t, "--atlas", path, "mayor")
	require.NoError(t, err)
	assert.Equal(t, "Anne Hidalgo\n", out)

	out, err = run(t, "--atlas", path, "mayor", "Italy")
	require.NoError(t, err)
	assert.Equal(t, "Error: no mayor\n", out)
}

func TestEncodings(t *testing.T) {
	out, err := run(t, "encodings")
	require.NoError(t, err)
	assert.Contains(t, out, "japaneseEUC  Japanese (EUC)\n")
	assert.Contains(t, out, "utf8         Unicode (UTF-8)\n")
}
