// Package parser extracts and normalizes the fields of a single raw log
// record for each supported source format.
package parser

import (
	"regexp"
	"strings"

	"github.com/nlogconv/nlogconv-go/pkg/nlog/record"
)

// Extract searches text for re and returns its first capture group with
// surrounding whitespace removed.
//
// Returns ("", false) if re does not match anywhere in text.
func Extract(re *regexp.Regexp, text string) (string, bool) {
	match := re.FindStringSubmatch(text)
	if match == nil || len(match) < 2 {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// requireField extracts a mandatory field, reporting a FieldError when absent.
func requireField(field string, re *regexp.Regexp, text string) (string, error) {
	v, ok := Extract(re, text)
	if !ok {
		return "", &record.FieldError{
			Field:   field,
			Pattern: re.String(),
			Err:     record.ErrNoMatch,
		}
	}
	return v, nil
}

// isoToSpaced turns "2020-01-02T10:20:30Z" into "2020-01-02 10:20:30Z".
func isoToSpaced(ts string) string {
	return strings.ReplaceAll(ts, "T", " ")
}
