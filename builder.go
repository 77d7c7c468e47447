// Package datebuilder provides a fluent builder for constructing calendar
// date/time values through chained operations.
//
// All dates are resolved in UTC unless rebased with InTimeZone.
//
// Examples:
//
//	midnightIn2009, err := datebuilder.Now().InYear(2009).AtMidnightExactly().Build()
//	yesterday, err := datebuilder.Yesterday().Build()
//	birthday, err := datebuilder.Now().InYear(1974).InMonth(8).OnDay(29).Build()
//	b, err := datebuilder.FromFormattedString("08_29_1974")
//
// A Builder is not safe for concurrent mutation from multiple goroutines;
// each instance is expected to be owned by a single caller.
package datebuilder

import (
	"fmt"
	"regexp"
	"time"
)

// timeNow is the clock used by the relative constructors. Tests swap it out
// for deterministic instants.
var timeNow = time.Now

// FromFormattedString accepts exactly two-digit month, underscore, two-digit
// day, underscore, four-digit year. time.Parse alone also accepts unpadded
// fields, so the shape is gated first.
var formattedDatePattern = regexp.MustCompile(`^\d{2}_\d{2}_\d{4}$`)

const formattedDateLayout = "01_02_2006"

// Builder accumulates date/time adjustments and produces a finalized instant.
//
// Mutating methods return the receiver so calls chain. The first failing
// mutation is recorded and every later mutation becomes a no-op; Build
// surfaces that error. A chain therefore either fully succeeds or fails
// without partial mutation.
type Builder struct {
	t   time.Time
	err error
}

// Now returns a builder holding the current instant, in UTC.
func Now() *Builder {
	return At(timeNow())
}

// Today returns a builder holding the current date at midnight exactly, in UTC.
func Today() *Builder {
	return At(timeNow()).AtMidnightExactly()
}

// Yesterday returns a builder holding the current time one calendar day back,
// in UTC. The time of day is preserved.
func Yesterday() *Builder {
	return At(timeNow()).SubtractDays(1)
}

// Tomorrow returns a builder holding the current time one calendar day ahead,
// in UTC. The time of day is preserved.
func Tomorrow() *Builder {
	return At(timeNow()).AddDays(1)
}

// At returns a builder seeded with an arbitrary instant, with calendar fields
// resolved in UTC.
func At(t time.Time) *Builder {
	return &Builder{t: t.In(time.UTC)}
}

// FromFormattedString parses a date string of the fixed form MM_dd_yyyy
// (for example "08_29_1974") and returns a builder at that date at midnight
// UTC. Strings that do not match the pattern, or that name an invalid
// calendar date, fail with an error matching ErrInvalidArgument.
func FromFormattedString(s string) (*Builder, error) {
	if !formattedDatePattern.MatchString(s) {
		return nil, newInvalidArgument("date", s, "must match MM_dd_yyyy")
	}
	t, err := time.ParseInLocation(formattedDateLayout, s, time.UTC)
	if err != nil {
		return nil, newInvalidArgument("date", s, "not a valid calendar date")
	}
	return At(t), nil
}

// AtMidnightExactly sets hour, minute, second and sub-second fields to zero,
// preserving the date and zone.
func (b *Builder) AtMidnightExactly() *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location()), nil
	})
}

// AddDays adds n calendar days. Month and year roll over; the time of day is
// preserved even across daylight-saving transitions in a non-UTC zone. n may
// be negative.
func (b *Builder) AddDays(n int) *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		return t.AddDate(0, 0, n), nil
	})
}

// SubtractDays subtracts n calendar days. Equivalent to AddDays(-n).
func (b *Builder) SubtractDays(n int) *Builder {
	return b.AddDays(-n)
}

// AddYears adds n calendar years. If the current day of month does not exist
// in the target year (Feb 29 into a non-leap year), the day is clamped to the
// last valid day of that month.
func (b *Builder) AddYears(n int) *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		return setDateClamped(t, t.Year()+n, t.Month(), t.Day()), nil
	})
}

// InYear sets the calendar year, leaving the other fields unchanged. The day
// of month is clamped if the result would be invalid.
func (b *Builder) InYear(year int) *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		return setDateClamped(t, year, t.Month(), t.Day()), nil
	})
}

// InMonth sets the calendar month, one-based (1 = January, 12 = December).
// Values outside 1..12 fail with an error matching ErrInvalidArgument. The
// day of month is clamped if the target month is shorter.
func (b *Builder) InMonth(month int) *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		if month < 1 || month > 12 {
			return t, newInvalidArgument("month", month, "must be in range 1-12")
		}
		return setDateClamped(t, t.Year(), time.Month(month), t.Day()), nil
	})
}

// OnDay sets the day of month. Values outside the current month's range fail
// with an error matching ErrInvalidArgument rather than clamping: an explicit
// day is taken at its word.
func (b *Builder) OnDay(day int) *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		if last := daysInMonth(t.Year(), t.Month()); day < 1 || day > last {
			return t, newInvalidArgument("day", day, fmt.Sprintf("must be in range 1-%d for %s %d", last, t.Month(), t.Year()))
		}
		h, min, sec := t.Clock()
		return time.Date(t.Year(), t.Month(), day, h, min, sec, t.Nanosecond(), t.Location()), nil
	})
}

// AddHours advances the held instant by n hours. n may be negative.
func (b *Builder) AddHours(n int) *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		return t.Add(time.Duration(n) * time.Hour), nil
	})
}

// AddMinutes advances the held instant by n minutes. n may be negative.
func (b *Builder) AddMinutes(n int) *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		return t.Add(time.Duration(n) * time.Minute), nil
	})
}

// SubtractMinutes subtracts n minutes. Equivalent to AddMinutes(-n).
func (b *Builder) SubtractMinutes(n int) *Builder {
	return b.AddMinutes(-n)
}

// InTimeZone rebases all subsequent calendar field operations (midnight,
// year/month/day) to the given zone while preserving the absolute instant.
// A nil location fails with an error matching ErrInvalidArgument.
func (b *Builder) InTimeZone(loc *time.Location) *Builder {
	return b.mutate(func(t time.Time) (time.Time, error) {
		if loc == nil {
			return t, newInvalidArgument("zone", nil, "location must not be nil")
		}
		return t.In(loc), nil
	})
}

// Err reports the first error recorded by the chain, if any, without building.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the immutable instant currently held, or the first error
// recorded by the chain. Build does not reset the builder; calling it again
// without further mutation yields the same instant.
func (b *Builder) Build() (time.Time, error) {
	if b.err != nil {
		return time.Time{}, b.err
	}
	return b.t, nil
}

// BuildMillis is Build expressed as epoch milliseconds.
func (b *Builder) BuildMillis() (int64, error) {
	t, err := b.Build()
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

func (b *Builder) mutate(f func(time.Time) (time.Time, error)) *Builder {
	if b.err != nil {
		return b
	}
	t, err := f(b.t)
	if err != nil {
		b.err = err
		return b
	}
	b.t = t
	return b
}

// setDateClamped rebuilds t on the given calendar date, clamping the day to
// the last valid day of the target month, preserving time of day and zone.
func setDateClamped(t time.Time, year int, month time.Month, day int) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	h, min, sec := t.Clock()
	return time.Date(year, month, day, h, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth relies on time.Date normalization: day zero of the following
// month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
