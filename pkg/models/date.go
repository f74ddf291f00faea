package models

import (
	"fmt"
	"time"
)

// Date is a validated civil date. The zero value is not a valid date; always
// construct through NewDate so impossible year/month/day combinations are
// rejected instead of being normalized away.
type Date struct {
	t time.Time
}

// NewDate builds a Date from explicit year, month and day components. It
// fails on combinations that do not exist on the calendar (month 13,
// February 30, ...) rather than wrapping them into the next month.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, fmt.Errorf("invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return Date{t: t}, nil
}

// AddDays returns the date n calendar days later (earlier for negative n),
// carrying across month and year boundaries.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Year returns the year component.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month component (1-12).
func (d Date) Month() int { return int(d.t.Month()) }

// Day returns the day component (1-31).
func (d Date) Day() int { return d.t.Day() }

// MonthName returns the English month name, e.g. "March".
func (d Date) MonthName() string {
	return d.t.Month().String()
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}
