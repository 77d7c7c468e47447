package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/datebuilder/cmd/datebuilder/commands"
	"git.home.luguber.info/inful/datebuilder/internal/config"
	builderrors "git.home.luguber.info/inful/datebuilder/internal/errors"
	"git.home.luguber.info/inful/datebuilder/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("datebuilder"),
		kong.Description("Build calendar date/time values from the command line."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	adapter := builderrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())

	cfg, err := config.Load(cli.Config)
	if err != nil {
		adapter.HandleError(err)
	}

	g := &commands.Global{Logger: slog.Default(), Config: cfg, Out: os.Stdout}
	if err := ctx.Run(g, &cli); err != nil {
		adapter.HandleError(err)
	}
}
