package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonavalle/credit-engine/ledger"
)

func TestDate_WireFormat(t *testing.T) {
	d := ledger.NewDate(2024, time.March, 5)
	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, "05-Mar-2024", d.Display())

	parsed, err := ledger.ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))
}

func TestDate_ZeroValueIsEmptyOnTheWire(t *testing.T) {
	// Optional dates (contract date before graduation) round-trip as ""
	var d ledger.Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.Equal(t, "", d.Display())
	assert.True(t, ledger.DateOrZero("").IsZero())
	assert.True(t, ledger.DateOrZero("garbage").IsZero())
}

func TestDate_AddMonths_ClampsToEndOfMonth(t *testing.T) {
	// Jan 31 + 1 month clamps to the last day of February
	d := ledger.NewDate(2024, time.January, 31).AddMonths(1)
	assert.Equal(t, "2024-02-29", d.String())
	d = ledger.NewDate(2023, time.January, 31).AddMonths(1)
	assert.Equal(t, "2023-02-28", d.String())

	// Clamping applies per step, not cumulatively: Jan 31 + 2 months is
	// back on the 31st
	d = ledger.NewDate(2024, time.January, 31).AddMonths(2)
	assert.Equal(t, "2024-03-31", d.String())
	d = ledger.NewDate(2024, time.January, 31).AddMonths(3)
	assert.Equal(t, "2024-04-30", d.String())

	// The common case stays on the same day-of-month
	d = ledger.NewDate(2024, time.January, 15).AddMonths(1)
	assert.Equal(t, "2024-02-15", d.String())

	// Crossing a year boundary
	d = ledger.NewDate(2024, time.November, 30).AddMonths(3)
	assert.Equal(t, "2025-02-28", d.String())
}

func TestDaysBetween(t *testing.T) {
	a := ledger.NewDate(2024, time.March, 1)
	b := ledger.NewDate(2024, time.April, 15)

	assert.Equal(t, 45, ledger.DaysBetween(a, b))
	assert.Equal(t, -45, ledger.DaysBetween(b, a))
	assert.Equal(t, 0, ledger.DaysBetween(a, a))
}

func TestMonthsElapsed(t *testing.T) {
	first := ledger.NewDate(2024, time.January, 1)

	cases := []struct {
		today ledger.Date
		want  int
	}{
		// Before the first due date nothing has elapsed
		{ledger.NewDate(2023, time.December, 31), -1},
		{ledger.NewDate(2024, time.January, 1), 0},
		// A month elapses only once the day-of-month is reached
		{ledger.NewDate(2024, time.February, 1), 1},
		{ledger.NewDate(2024, time.April, 15), 3},
		{ledger.NewDate(2025, time.January, 1), 12},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ledger.MonthsElapsed(first, c.today), "today=%s", c.today)
	}
}

func TestMonthsElapsed_MidMonthDueDay(t *testing.T) {
	// Due on the 15th: the 14th of the next month is not yet a full month
	first := ledger.NewDate(2024, time.January, 15)
	assert.Equal(t, 0, ledger.MonthsElapsed(first, ledger.NewDate(2024, time.February, 14)))
	assert.Equal(t, 1, ledger.MonthsElapsed(first, ledger.NewDate(2024, time.February, 15)))
}
