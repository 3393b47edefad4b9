// Package markdown extracts structured monster and skill records from
// loosely formatted, human-authored markdown documents. Parsing is
// best-effort: unrecognized lines are skipped, malformed numerals yield
// no value, and a fully malformed document yields an empty result
// rather than an error.
package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	wsRun      = regexp.MustCompile(`[ \t]+`)
	emphasis   = regexp.MustCompile("[*_`]")
	numeralRe  = regexp.MustCompile(`-?[0-9]+(?:\.[0-9]+)?`)
	unknownVal = "?"
)

// NormalizeWhitespace collapses runs of spaces and tabs to a single
// space and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// StripEmphasis removes bold, italic and code markers, then normalizes
// whitespace.
func StripEmphasis(s string) string {
	return NormalizeWhitespace(emphasis.ReplaceAllString(s, ""))
}

// ParseNumber extracts the first decimal numeral from s, tolerating a
// comma decimal separator. It reports false for an explicit unknown
// marker ("?") or when no numeral is present. It never errors.
func ParseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(StripEmphasis(s), ",", ".")
	if s == "" || strings.Contains(s, unknownVal) {
		return 0, false
	}
	match := numeralRe.FindString(s)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// UniqueKey returns name unchanged if it is free in existing, otherwise
// the first free "name (2)", "name (3)", … suffix. Every parser inserts
// through this so same-named entries are never silently overwritten.
func UniqueKey[T any](name string, existing map[string]T) string {
	if _, taken := existing[name]; !taken {
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", name, i)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
	}
}
