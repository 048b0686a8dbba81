package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// ISOFormat is the wire format for dates, both on this service's API and on
// the upstream HRIS API.
const ISOFormat = "2006-01-02"

// Date is a calendar day with no time or zone component. Comparisons and
// arithmetic on it never depend on the server's local zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISOFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC on the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(ISOFormat)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// WeekOfMonth returns the 1-based week ordinal by day-of-month alone: days
// 1-7 are week 1, 8-14 week 2, and so on. It deliberately ignores which
// weekday the month starts on.
func (d Date) WeekOfMonth() int {
	return (d.Day + 6) / 7
}

// Next returns the following calendar day, rolling over months and years.
func (d Date) Next() Date {
	return DateOf(d.Time().AddDate(0, 0, 1))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", data, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
