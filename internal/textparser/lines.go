// Package textparser implements the plain-text statement pipeline. Input is
// text already extracted from a PDF by an external step: unstructured
// monospace lines where one transaction may span several physical lines. The
// pipeline classifies each line, assembles multi-line records with a
// single-pass state machine, and deduplicates the flushed transactions.
package textparser

import (
	"regexp"
	"strings"
)

// dateStartPattern marks the beginning of a new record: a month/day token at
// line start, with an optional year.
var dateStartPattern = regexp.MustCompile(`^\s*(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`)

// dashRunPattern matches separator lines that are purely a run of dashes.
var dashRunPattern = regexp.MustCompile(`^\s*-{3,}\s*$`)

// doubleSpacePattern splits the column-aligned part of a record-start line
// from whatever follows it.
var doubleSpacePattern = regexp.MustCompile(`\s{2,}`)

// lineSplitPattern splits input text into physical lines.
var lineSplitPattern = regexp.MustCompile(`\r?\n`)

// headerFooterMarkers identify statement boilerplate lines. Matching is
// case-insensitive substring; these lines are discarded before the state
// machine ever sees them so they can neither join a description nor be
// mistaken for a date line.
var headerFooterMarkers = []string{
	"activity in date order",
	"date description",
	"totally free checking",
	"continued",
	"withdrawals",
	"deposits",
	"balance",
}

// isHeaderFooter reports whether a line is statement boilerplate.
func isHeaderFooter(line string) bool {
	if dashRunPattern.MatchString(line) {
		return true
	}
	lowered := strings.ToLower(line)
	for _, marker := range headerFooterMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// dateToken extracts the record-start date token from a line. The second
// return value is false for continuation lines.
func dateToken(line string) (token string, rest string, ok bool) {
	loc := dateStartPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", "", false
	}
	return line[loc[2]:loc[3]], line[loc[1]:], true
}

// initialFragment takes the text after the date token up to the first run of
// two or more spaces; statement layouts column-align amounts after the
// description with wide gaps.
func initialFragment(rest string) string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ""
	}
	return strings.TrimSpace(doubleSpacePattern.Split(rest, 2)[0])
}
