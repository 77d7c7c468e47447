package commands

import (
	"git.home.luguber.info/inful/datebuilder"
)

// ParseCmd implements the 'parse' command.
type ParseCmd struct {
	Date string `arg:"" help:"Date string in MM_dd_yyyy form, e.g. 08_29_1974"`

	AdjustFlags
	OutputFlags
}

func (c *ParseCmd) Run(g *Global, _ *CLI) error {
	b, err := datebuilder.FromFormattedString(c.Date)
	if err != nil {
		return err
	}
	return runBuilder(g, b, &c.AdjustFlags, c.OutputFlags)
}
