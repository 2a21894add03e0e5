package ui

import "time"

// A due date entered without a time is stored as UTC midnight and names a
// calendar day, not an instant. Everything else is shown in local time.
func dateOnly(due time.Time) bool {
	u := due.UTC()
	return u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}

// DueDateInput formats due for the task form. Submitting the result
// unchanged parses back to the same instant.
func DueDateInput(due time.Time) string {
	if dateOnly(due) {
		return due.UTC().Format(time.DateOnly)
	}
	l := due.Local()
	switch {
	case l.Nanosecond() != 0:
		return due.UTC().Format(time.RFC3339Nano)
	case l.Second() != 0:
		return l.Format("2006-01-02T15:04:05")
	}
	return l.Format("2006-01-02T15:04")
}

// FormatDueDate formats due for display.
func FormatDueDate(due time.Time) string {
	if dateOnly(due) {
		return due.UTC().Format(time.DateOnly)
	}
	return due.Local().Format("2006-01-02 15:04")
}
