package history

import "errors"

var (
	ErrMonthOutOfRange  = errors.New("year must be 2000-2100 and month 1-12")
	ErrInvalidDate      = errors.New("dates must be in YYYY-MM-DD format")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
