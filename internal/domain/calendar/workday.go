package calendar

import "time"

// IsNonWorkingDay reports whether d is a scheduled day off: every Sunday,
// plus the Saturdays falling in the second and fourth week of the month as
// counted by WeekOfMonth.
func IsNonWorkingDay(d Date) bool {
	switch d.Weekday() {
	case time.Sunday:
		return true
	case time.Saturday:
		week := d.WeekOfMonth()
		return week == 2 || week == 4
	default:
		return false
	}
}
