package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/datebuilder/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Config *config.Config
	Out    io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"datebuilder.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Now       NowCmd       `cmd:"" help:"Build an instant starting from the current time"`
	Today     TodayCmd     `cmd:"" help:"Build an instant starting from today at midnight"`
	Yesterday YesterdayCmd `cmd:"" help:"Build an instant starting one calendar day back"`
	Tomorrow  TomorrowCmd  `cmd:"" help:"Build an instant starting one calendar day ahead"`
	Parse     ParseCmd     `cmd:"" help:"Build an instant from an MM_dd_yyyy date string"`
	Init      InitCmd      `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
