package ledger

import "time"

// =============================================================================
// DATE - Day-granularity time value
// =============================================================================

// Date is a calendar day in UTC. Contracts, payments and installment
// schedules never need finer granularity than a day.
type Date struct {
	Time time.Time
}

const (
	wireDateLayout    = "2006-01-02"
	displayDateLayout = "02-Jan-2006"
)

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses the ISO wire form (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(wireDateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// DateOrZero parses the wire form, degrading to the zero Date on bad input.
func DateOrZero(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}
	}
	return d
}

// Comparison
func (d Date) Before(o Date) bool { return d.normalize().Before(o.normalize()) }
func (d Date) After(o Date) bool  { return d.normalize().After(o.normalize()) }
func (d Date) Equal(o Date) bool  { return d.normalize().Equal(o.normalize()) }
func (d Date) IsZero() bool       { return d.Time.IsZero() }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

// AddMonths steps whole calendar months, clamping to the last day of
// the target month instead of letting the day overflow (Jan 31 + 1
// month is Feb 29 in a leap year, not Mar 2). Due dates anchored on
// the 29th-31st must stay at month end rather than drifting forward.
func (d Date) AddMonths(n int) Date {
	t := d.normalize()
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return NewDate(firstOfTarget.Year(), firstOfTarget.Month(), day)
}

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }

// String returns the ISO wire form; the zero Date is the empty string
// so optional dates round-trip through rows cleanly.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format(wireDateLayout)
}

// Display renders DD-Mon-YYYY for human-facing output.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format(displayDateLayout)
}

// DaysBetween returns whole days from 'from' to 'to' (negative if 'to'
// is earlier).
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// MonthsElapsed returns the number of whole months from 'from' to 'to'.
// A month counts only once the day-of-month has been reached, so a due
// date of the 15th is not elapsed on the 14th.
func MonthsElapsed(from, to Date) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}
