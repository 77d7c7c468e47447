package commands

import (
	"git.home.luguber.info/inful/datebuilder"
)

// NowCmd implements the 'now' command.
type NowCmd struct {
	AdjustFlags
	OutputFlags
}

func (c *NowCmd) Run(g *Global, _ *CLI) error {
	return runBuilder(g, datebuilder.Now(), &c.AdjustFlags, c.OutputFlags)
}

// TodayCmd implements the 'today' command.
type TodayCmd struct {
	AdjustFlags
	OutputFlags
}

func (c *TodayCmd) Run(g *Global, _ *CLI) error {
	return runBuilder(g, datebuilder.Today(), &c.AdjustFlags, c.OutputFlags)
}

// YesterdayCmd implements the 'yesterday' command.
type YesterdayCmd struct {
	AdjustFlags
	OutputFlags
}

func (c *YesterdayCmd) Run(g *Global, _ *CLI) error {
	return runBuilder(g, datebuilder.Yesterday(), &c.AdjustFlags, c.OutputFlags)
}

// TomorrowCmd implements the 'tomorrow' command.
type TomorrowCmd struct {
	AdjustFlags
	OutputFlags
}

func (c *TomorrowCmd) Run(g *Global, _ *CLI) error {
	return runBuilder(g, datebuilder.Tomorrow(), &c.AdjustFlags, c.OutputFlags)
}
