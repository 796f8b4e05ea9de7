package utils

import (
	"time"
)

const (
	layoutCompactDate = "20060102"
	layoutLongDate    = "January 02, 2006 at 03:04 PM"
)

// FormatCompactDate formats t as YYYYMMDD in local timezone.
func FormatCompactDate(t time.Time) string {
	return t.In(time.Local).Format(layoutCompactDate)
}

// FormatLongDateTime renders t like "March 05, 2025 at 02:30 PM" in local timezone.
func FormatLongDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutLongDate)
}
