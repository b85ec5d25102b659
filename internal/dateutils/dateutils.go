// Package dateutils provides date parsing and normalization for statement
// data. All output dates are ISO YYYY-MM-DD strings.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the canonical output layout for all normalized dates.
const DateLayoutISO = "2006-01-02"

// now is a variable so tests can pin the clock.
var now = time.Now

// yearFormats are tried in order when parsing a date that carries a year.
// US month-first layouts come first because the statement exports this engine
// targets are month-first.
var yearFormats = []string{
	DateLayoutISO,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2006/01/02",
}

// yearlessFormats cover statement lines that print only month and day; the
// current year is substituted.
var yearlessFormats = []string{
	"01/02",
	"1/2",
	"Jan 2",
}

// Normalize parses a date string in any of the supported layouts and returns
// it as YYYY-MM-DD.
func Normalize(dateStr string) (string, error) {
	cleaned := strings.Join(strings.Fields(dateStr), " ")
	if cleaned == "" {
		return "", fmt.Errorf("empty date string")
	}

	for _, format := range yearFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t.Format(DateLayoutISO), nil
		}
	}

	for _, format := range yearlessFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			t = time.Date(now().Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return t.Format(DateLayoutISO), nil
		}
	}

	return "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// NormalizeOrToday parses a date string and falls back to today's date when
// the input is missing or unparseable. Date resolution never fails a parse;
// degraded dates are part of the best-effort contract.
func NormalizeOrToday(dateStr string) string {
	if normalized, err := Normalize(dateStr); err == nil {
		return normalized
	}
	return Today()
}

// Today returns the current date as YYYY-MM-DD.
func Today() string {
	return now().Format(DateLayoutISO)
}
