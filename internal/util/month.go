package util

import (
	"fmt"
	"time"
)

// monthKeyLayout is the YYYY-MM form used to address a month
const monthKeyLayout = "2006-01"

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// MonthKey formats year and month as YYYY-MM
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// CurrentMonthKey returns the month key of t
func CurrentMonthKey(t time.Time) string {
	return MonthKey(t.Year(), t.Month())
}

// ParseMonthKey splits a YYYY-MM key into year and month
func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", key)
	}
	return t.Year(), t.Month(), nil
}

// PreviousMonthKey returns the key of the month before key
func PreviousMonthKey(key string) (string, error) {
	year, month, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	py, pm := PreviousMonth(year, int(month))
	return MonthKey(py, time.Month(pm)), nil
}
