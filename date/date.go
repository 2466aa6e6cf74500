// Package date provides a day-granularity Date and the timestamp parsing
// used by statement inputs.
package date

import (
	"fmt"
	"strings"
	"time"
)

// Permissive read date formats (allows single-digit month/day).
var readDateFormats = []string{"2006-1-2", "2006/1/2"}

// Permissive read timestamp formats.
var readTimeFormats = []string{
	"2006/1/2 15:04:05",
	"2006-1-2 15:04:05",
	"2006/1/2 15:04",
	"2006-1-2 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Time returns the start of that day, at midnight UTC.
func (d Date) Time() time.Time { return d.time() }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the day of t, in t's location.
func Of(t time.Time) Date { return New(t.Date()) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like
// "2025-7-1" or "1992/08/14".
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range readDateFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", str, readDateFormats[0])
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseTime parses a timestamp with a time of day, like "1992/07/14 11:12:30".
//
// Timestamps without a zone are read as UTC, so that they compare with
// Date.Time().
func ParseTime(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	for _, layout := range readTimeFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return on, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q want format %q", str, readTimeFormats[0])
}

// MustParseTime is like ParseTime but panics on error.
func MustParseTime(str string) time.Time {
	t, err := ParseTime(str)
	if err != nil {
		panic(err.Error())
	}
	return t
}
