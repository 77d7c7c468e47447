package commands

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/datebuilder"
	"git.home.luguber.info/inful/datebuilder/internal/config"
	builderrors "git.home.luguber.info/inful/datebuilder/internal/errors"
)

// AdjustFlags are the chainable builder operations shared by every date
// command. They apply in a fixed order: zone rebase, absolute setters
// (year, month, day), relative shifts (days, years, hours, minutes), then
// the midnight snap.
type AdjustFlags struct {
	Zone       string `help:"IANA time zone for calendar field operations (overrides config)" placeholder:"ZONE"`
	Year       *int   `help:"Set the calendar year" placeholder:"YYYY"`
	Month      *int   `help:"Set the calendar month, 1-12" placeholder:"M"`
	Day        *int   `help:"Set the day of month" placeholder:"D"`
	AddDays    int    `help:"Add calendar days (negative subtracts)" placeholder:"N"`
	AddYears   int    `help:"Add calendar years (negative subtracts)" placeholder:"N"`
	AddHours   int    `help:"Add hours (negative subtracts)" placeholder:"N"`
	SubMinutes int    `name:"sub-minutes" help:"Subtract minutes" placeholder:"N"`
	Midnight   bool   `help:"Snap to midnight in the active zone"`
}

// OutputFlags control how the built instant is printed.
type OutputFlags struct {
	Format string `short:"f" help:"Output format: millis, unix or rfc3339 (default from config)" placeholder:"FMT"`
}

// apply chains the flag-selected operations onto the builder. Builder-level
// failures (bad month, bad day) stay inside the chain and surface at Build.
func (a *AdjustFlags) apply(g *Global, b *datebuilder.Builder) error {
	zone := a.Zone
	if zone == "" {
		zone = g.Config.Zone
	}
	if zone != "" && zone != "UTC" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			if a.Zone != "" {
				return builderrors.Wrap(err, builderrors.CategoryValidation, builderrors.SeverityFatal,
					fmt.Sprintf("unknown time zone %q", zone))
			}
			return builderrors.WrapConfig(err, fmt.Sprintf("unknown time zone %q", zone))
		}
		b.InTimeZone(loc)
	}

	if a.Year != nil {
		b.InYear(*a.Year)
	}
	if a.Month != nil {
		b.InMonth(*a.Month)
	}
	if a.Day != nil {
		b.OnDay(*a.Day)
	}
	if a.AddDays != 0 {
		b.AddDays(a.AddDays)
	}
	if a.AddYears != 0 {
		b.AddYears(a.AddYears)
	}
	if a.AddHours != 0 {
		b.AddHours(a.AddHours)
	}
	if a.SubMinutes != 0 {
		b.SubtractMinutes(a.SubMinutes)
	}
	if a.Midnight {
		b.AtMidnightExactly()
	}
	return nil
}

// runBuilder applies adjustments, builds, and prints the result.
func runBuilder(g *Global, b *datebuilder.Builder, adjust *AdjustFlags, out OutputFlags) error {
	if err := adjust.apply(g, b); err != nil {
		return err
	}
	built, err := b.Build()
	if err != nil {
		return err
	}
	return emit(g, out, built)
}

func emit(g *Global, f OutputFlags, t time.Time) error {
	format := f.Format
	if format == "" {
		format = g.Config.Output.Format
	}
	switch format {
	case config.FormatMillis:
		fmt.Fprintln(g.Out, t.UnixMilli())
	case config.FormatUnix:
		fmt.Fprintln(g.Out, t.Unix())
	case config.FormatRFC3339:
		fmt.Fprintln(g.Out, t.Format(time.RFC3339Nano))
	default:
		return builderrors.NewValidation(fmt.Sprintf("unknown output format %q (want %s, %s or %s)",
			format, config.FormatMillis, config.FormatUnix, config.FormatRFC3339))
	}
	return nil
}
