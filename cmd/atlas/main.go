package main

import (
	"github.com/alecthomas/kong"
	"github.com/ib-77/ropatlas/internal/cli"
	"github.com/mudler/xlog"
)

func main() {
	// Log at INFO until the flags are parsed
	xlog.SetLogger(xlog.NewLogger(xlog.LogLevel("info"), "text"))

	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("atlas"),
		kong.Description("Looks up a country's capital and reports its population or mayor."),
		kong.UsageOnError(),
	)

	xlog.SetLogger(xlog.NewLogger(xlog.LogLevel(c.LogLevel), c.LogFormat))

	if err := ctx.Run(&c.Context); err != nil {
		xlog.Fatal("Error running atlas", "error", err)
	}
}
