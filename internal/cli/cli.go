package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ib-77/ropatlas/internal/atlas"
	"github.com/ib-77/ropatlas/pkg/charset"
	"github.com/mudler/xlog"
)

type Context struct {
	LogLevel  string `env:"ATLAS_LOG_LEVEL" default:"info" enum:"error,warn,info,debug" help:"Set the level of logs to output [${enum}]"`
	LogFormat string `env:"ATLAS_LOG_FORMAT" default:"default" enum:"default,text,json" help:"Set the format of logs to output [${enum}]"`
	AtlasFile string `name:"atlas" env:"ATLAS_FILE" type:"path" help:"YAML file with capitals, populations and mayors. Without it every table is empty"`

	Out io.Writer `kong:"-"`
}

func (c *Context) Atlas() (*atlas.Atlas, error) {
	if c.AtlasFile == "" {
		return atlas.Empty(), nil
	}
	xlog.Debug("loading atlas", "path", c.AtlasFile)
	return atlas.Load(c.AtlasFile)
}

func (c *Context) stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

type CLI struct {
	Context `embed:""`

	Population PopulationCMD `cmd:"" help:"Print the population of a country's capital, this is the default command" default:"withargs"`
	Mayor      MayorCMD      `cmd:"" help:"Print the mayor of a country's capital"`
	Encodings  EncodingsCMD  `cmd:"" help:"List the known text encodings"`
}

type PopulationCMD struct {
	Country string `arg:"" optional:"" default:"France" help:"Country to look up"`
}

func (p *PopulationCMD) Run(ctx *Context) error {
	a, err := ctx.Atlas()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.stdout(), atlas.Report(a.PopulationOfCapital(context.Background(), p.Country)))
	return err
}

type MayorCMD struct {
	Country string `arg:"" optional:"" default:"France" help:"Country to look up"`
}

func (m *MayorCMD) Run(ctx *Context) error {
	a, err := ctx.Atlas()
	if err != nil {
		return err
	}
	mayor, ok := a.MayorOfCapital(context.Background(), m.Country)
	if !ok {
		mayor = "Error: no mayor"
	}
	_, err = fmt.Fprintln(ctx.stdout(), mayor)
	return err
}

type EncodingsCMD struct{}

func (e *EncodingsCMD) Run(ctx *Context) error {
	for _, enc := range charset.Encodings {
		if _, err := fmt.Fprintf(ctx.stdout(), "%-12s %s\n", enc, enc.LocalizedName()); err != nil {
			return err
		}
	}
	return nil
}
