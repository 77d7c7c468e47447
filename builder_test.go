package datebuilder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withNow pins the package clock for the duration of the test.
func withNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = prev })
}

func mustMillis(t *testing.T, b *Builder) int64 {
	t.Helper()
	ms, err := b.BuildMillis()
	require.NoError(t, err)
	return ms
}

func TestFromFormattedString(t *testing.T) {
	t.Run("builds specified date at midnight UTC", func(t *testing.T) {
		b, err := FromFormattedString("08_29_1974")
		require.NoError(t, err)
		require.Equal(t, int64(146966400000), mustMillis(t, b))
	})

	t.Run("adds days to the date being built", func(t *testing.T) {
		b, err := FromFormattedString("12_01_2012")
		require.NoError(t, err)
		require.Equal(t, int64(1354492800000), mustMillis(t, b.AddDays(2)))
	})

	t.Run("days can be negative", func(t *testing.T) {
		b, err := FromFormattedString("12_01_2012")
		require.NoError(t, err)
		require.Equal(t, int64(1354147200000), mustMillis(t, b.AddDays(-2)))
	})

	t.Run("subtracts days", func(t *testing.T) {
		b, err := FromFormattedString("12_01_2012")
		require.NoError(t, err)
		require.Equal(t, int64(1354233600000), mustMillis(t, b.SubtractDays(1)))
	})

	t.Run("adds hours", func(t *testing.T) {
		b, err := FromFormattedString("12_01_2012")
		require.NoError(t, err)
		require.Equal(t, int64(1354323600000), mustMillis(t, b.AddHours(1)))
	})

	t.Run("subtracts minutes", func(t *testing.T) {
		b, err := FromFormattedString("12_01_2012")
		require.NoError(t, err)
		require.Equal(t, int64(1354319940000), mustMillis(t, b.SubtractMinutes(1)))
	})

	t.Run("rejects strings that do not match the pattern", func(t *testing.T) {
		for _, s := range []string{
			"not_a_date_foo",
			"crap_01_02015_foo",
			"8_29_1974",   // unpadded month
			"08_9_1974",   // unpadded day
			"08_29_74",    // two-digit year
			"08-29-1974",  // wrong separator
			"08_29_1974 ", // trailing garbage
			"",
		} {
			b, err := FromFormattedString(s)
			require.Nil(t, b, "input %q", s)
			require.ErrorIs(t, err, ErrInvalidArgument, "input %q", s)
		}
	})

	t.Run("rejects calendar-invalid dates", func(t *testing.T) {
		for _, s := range []string{"02_30_2012", "13_01_2012", "00_10_2012", "04_31_2012"} {
			_, err := FromFormattedString(s)
			require.ErrorIs(t, err, ErrInvalidArgument, "input %q", s)
			var iae *InvalidArgumentError
			require.ErrorAs(t, err, &iae)
		}
	})
}

func TestAtMidnightExactly(t *testing.T) {
	t.Run("zeroes all time-of-day fields", func(t *testing.T) {
		got, err := Now().AtMidnightExactly().Build()
		require.NoError(t, err)
		assert.Zero(t, got.Hour())
		assert.Zero(t, got.Minute())
		assert.Zero(t, got.Second())
		assert.Zero(t, got.Nanosecond())
	})

	t.Run("resolves midnight in the active zone", func(t *testing.T) {
		withNow(t, time.Date(2012, time.December, 1, 2, 30, 0, 0, time.UTC))
		zone := time.FixedZone("UTC-5", -5*60*60)

		got, err := Now().InTimeZone(zone).AtMidnightExactly().Build()
		require.NoError(t, err)
		assert.Zero(t, got.Hour())
		assert.Zero(t, got.Minute())
		// 2012-11-30 00:00 UTC-5 is 05:00 UTC.
		assert.Equal(t, time.Date(2012, time.November, 30, 5, 0, 0, 0, time.UTC), got.UTC())
	})
}

func TestRelativeConstructors(t *testing.T) {
	fixed := time.Date(2012, time.December, 1, 15, 30, 45, 123000000, time.UTC)
	withNow(t, fixed)

	t.Run("yesterday before today before tomorrow", func(t *testing.T) {
		yesterday := mustMillis(t, Yesterday().AtMidnightExactly())
		today := mustMillis(t, Today().AtMidnightExactly())
		tomorrow := mustMillis(t, Tomorrow().AtMidnightExactly())
		require.Less(t, yesterday, today)
		require.Less(t, today, tomorrow)
	})

	t.Run("today is now snapped to midnight", func(t *testing.T) {
		got, err := Today().Build()
		require.NoError(t, err)
		require.Equal(t, time.Date(2012, time.December, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("yesterday and tomorrow preserve the time of day", func(t *testing.T) {
		y, err := Yesterday().Build()
		require.NoError(t, err)
		require.Equal(t, fixed.AddDate(0, 0, -1), y)

		tm, err := Tomorrow().Build()
		require.NoError(t, err)
		require.Equal(t, fixed.AddDate(0, 0, 1), tm)
	})
}

func TestFieldSetters(t *testing.T) {
	fixed := time.Date(2012, time.December, 15, 10, 20, 30, 0, time.UTC)
	withNow(t, fixed)

	t.Run("in specified year, other fields unchanged", func(t *testing.T) {
		got, err := Now().InYear(2000).Build()
		require.NoError(t, err)
		require.Equal(t, time.Date(2000, time.December, 15, 10, 20, 30, 0, time.UTC), got)
	})

	t.Run("in specified month", func(t *testing.T) {
		got, err := Today().InMonth(1).Build()
		require.NoError(t, err)
		require.Equal(t, time.January, got.Month())
	})

	t.Run("on specified day of month", func(t *testing.T) {
		got, err := Now().OnDay(1).Build()
		require.NoError(t, err)
		require.Equal(t, 1, got.Day())
	})

	t.Run("setting a short month clamps the day", func(t *testing.T) {
		got, err := At(time.Date(2012, time.January, 31, 12, 0, 0, 0, time.UTC)).InMonth(2).Build()
		require.NoError(t, err)
		require.Equal(t, time.Date(2012, time.February, 29, 12, 0, 0, 0, time.UTC), got)

		got, err = At(time.Date(2013, time.January, 31, 12, 0, 0, 0, time.UTC)).InMonth(2).Build()
		require.NoError(t, err)
		require.Equal(t, time.Date(2013, time.February, 28, 12, 0, 0, 0, time.UTC), got)
	})

	t.Run("setting a non-leap year clamps Feb 29", func(t *testing.T) {
		got, err := At(time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC)).InYear(2023).Build()
		require.NoError(t, err)
		require.Equal(t, time.Date(2023, time.February, 28, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("month outside 1-12 is rejected", func(t *testing.T) {
		for _, m := range []int{0, 13, -1} {
			_, err := Now().InMonth(m).Build()
			require.ErrorIs(t, err, ErrInvalidArgument, "month %d", m)
		}
	})

	t.Run("day outside the current month is rejected", func(t *testing.T) {
		_, err := At(time.Date(2012, time.April, 10, 0, 0, 0, 0, time.UTC)).OnDay(31).Build()
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = Now().OnDay(0).Build()
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestAddYears(t *testing.T) {
	t.Run("adds exactly n calendar years", func(t *testing.T) {
		withNow(t, time.Date(2012, time.December, 1, 9, 0, 0, 0, time.UTC))
		base, err := Today().Build()
		require.NoError(t, err)
		later, err := Today().AddYears(10).Build()
		require.NoError(t, err)
		require.Equal(t, 10, later.Year()-base.Year())
	})

	t.Run("clamps Feb 29 into a non-leap year", func(t *testing.T) {
		got, err := At(time.Date(2024, time.February, 29, 6, 30, 0, 0, time.UTC)).AddYears(1).Build()
		require.NoError(t, err)
		require.Equal(t, time.Date(2025, time.February, 28, 6, 30, 0, 0, time.UTC), got)
	})
}

func TestInTimeZone(t *testing.T) {
	t.Run("preserves the absolute instant", func(t *testing.T) {
		zone := time.FixedZone("UTC+9", 9*60*60)
		base := time.Date(2012, time.December, 1, 0, 0, 0, 0, time.UTC)

		got, err := At(base).InTimeZone(zone).Build()
		require.NoError(t, err)
		require.Equal(t, base.UnixMilli(), got.UnixMilli())
		require.Equal(t, 9, got.Hour())
	})

	t.Run("rebases field operations", func(t *testing.T) {
		zone := time.FixedZone("UTC+9", 9*60*60)
		base := time.Date(2012, time.December, 1, 0, 0, 0, 0, time.UTC)

		// Midnight of Dec 1 in UTC+9 is Nov 30 15:00 UTC.
		got, err := At(base).InTimeZone(zone).AtMidnightExactly().Build()
		require.NoError(t, err)
		require.Equal(t, time.Date(2012, time.November, 30, 15, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("nil location is rejected", func(t *testing.T) {
		_, err := Now().InTimeZone(nil).Build()
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestChaining(t *testing.T) {
	t.Run("relative and absolute operations apply in call order", func(t *testing.T) {
		base := time.Date(2012, time.January, 30, 0, 0, 0, 0, time.UTC)

		first, err := At(base).AddDays(2).OnDay(15).Build()
		require.NoError(t, err)
		second, err := At(base).OnDay(15).AddDays(2).Build()
		require.NoError(t, err)

		// Feb 1 -> Feb 15 versus Jan 15 -> Jan 17.
		require.Equal(t, time.Date(2012, time.February, 15, 0, 0, 0, 0, time.UTC), first)
		require.Equal(t, time.Date(2012, time.January, 17, 0, 0, 0, 0, time.UTC), second)
	})

	t.Run("independent setters commute", func(t *testing.T) {
		base := time.Date(2012, time.June, 15, 8, 0, 0, 0, time.UTC)

		a, err := At(base).InYear(2000).InMonth(3).Build()
		require.NoError(t, err)
		b, err := At(base).InMonth(3).InYear(2000).Build()
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("first error wins and later operations no-op", func(t *testing.T) {
		b := At(time.Date(2012, time.June, 15, 0, 0, 0, 0, time.UTC)).InMonth(13).AddDays(5).InYear(1999)
		require.ErrorIs(t, b.Err(), ErrInvalidArgument)

		_, err := b.Build()
		require.ErrorIs(t, err, ErrInvalidArgument)

		var iae *InvalidArgumentError
		require.ErrorAs(t, err, &iae)
		require.Equal(t, "month", iae.Field)
	})
}

func TestBuild(t *testing.T) {
	t.Run("repeated builds yield the same instant", func(t *testing.T) {
		b, err := FromFormattedString("12_01_2012")
		require.NoError(t, err)

		first, err := b.Build()
		require.NoError(t, err)
		second, err := b.Build()
		require.NoError(t, err)
		require.True(t, first.Equal(second))
	})

	t.Run("mutation between builds is visible", func(t *testing.T) {
		b, err := FromFormattedString("12_01_2012")
		require.NoError(t, err)

		first := mustMillis(t, b)
		second := mustMillis(t, b.AddDays(1))
		require.Equal(t, first+24*60*60*1000, second)
	})
}
