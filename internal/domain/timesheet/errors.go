package timesheet

import "errors"

var (
	ErrDayNotFound = errors.New("no timesheet found for date")
)
