package calendar

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-05")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if d.Year != 2025 || d.Month != time.March || d.Day != 5 {
		t.Errorf("ParseDate(2025-03-05) = %+v", d)
	}
	if d.String() != "2025-03-05" {
		t.Errorf("String() = %q, want 2025-03-05", d.String())
	}

	for _, bad := range []string{"", "2025-13-01", "05-03-2025", "2025-03-05T00:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestWeekOfMonth(t *testing.T) {
	cases := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1},
		{8, 2}, {14, 2},
		{15, 3}, {21, 3},
		{22, 4}, {28, 4},
		{29, 5}, {31, 5},
	}
	for _, c := range cases {
		d := NewDate(2025, time.January, c.day)
		if got := d.WeekOfMonth(); got != c.want {
			t.Errorf("WeekOfMonth(day %d) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestNextCrossesMonthAndYear(t *testing.T) {
	cases := []struct {
		in   Date
		want Date
	}{
		{NewDate(2025, time.January, 31), NewDate(2025, time.February, 1)},
		{NewDate(2024, time.February, 28), NewDate(2024, time.February, 29)}, // leap year
		{NewDate(2025, time.December, 31), NewDate(2026, time.January, 1)},
	}
	for _, c := range cases {
		if got := c.in.Next(); !got.Equal(c.want) {
			t.Errorf("Next(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestIsNonWorkingDayAllSundays(t *testing.T) {
	// Walk a full year; every Sunday must be non-working.
	d := NewDate(2025, time.January, 1)
	for d.Year == 2025 {
		if d.Weekday() == time.Sunday && !IsNonWorkingDay(d) {
			t.Errorf("IsNonWorkingDay(%s) = false for a Sunday", d)
		}
		d = d.Next()
	}
}

func TestIsNonWorkingDaySaturdays(t *testing.T) {
	// Saturdays on the 8th-14th and 22nd-28th are non-working; weeks 1, 3
	// and 5 are working Saturdays.
	d := NewDate(2025, time.January, 1)
	for d.Year == 2025 {
		if d.Weekday() == time.Saturday {
			want := (d.Day >= 8 && d.Day <= 14) || (d.Day >= 22 && d.Day <= 28)
			if got := IsNonWorkingDay(d); got != want {
				t.Errorf("IsNonWorkingDay(%s) = %v, want %v (day %d)", d, got, want, d.Day)
			}
		}
		d = d.Next()
	}
}

func TestIsNonWorkingDayWeekdays(t *testing.T) {
	// A regular Monday-Friday is always a working day.
	d := NewDate(2025, time.June, 1)
	for d.Month == time.June {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			if IsNonWorkingDay(d) {
				t.Errorf("IsNonWorkingDay(%s) = true for a %s", d, d.Weekday())
			}
		}
		d = d.Next()
	}
}

func TestHolidaySet(t *testing.T) {
	set := make(HolidaySet)
	d := NewDate(2025, time.August, 17)
	if set.Contains(d) {
		t.Error("empty set contains a date")
	}
	set.Add(d)
	if !set.Contains(d) {
		t.Error("set does not contain an added date")
	}
	if set.Contains(d.Next()) {
		t.Error("set contains a date that was never added")
	}
}
