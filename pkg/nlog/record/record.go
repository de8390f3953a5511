// Package record defines the normalized log record produced by every
// converter and the errors a converter reports when a record cannot be
// normalized.
package record

import "strings"

// Separator joins the fields of a normalized line.
//
// Field values are written as-is: a '|' inside a message is not escaped, so
// lines whose message contains the separator are ambiguous for readers that
// split on it.
const Separator = "|"

// Record is one normalized log entry.
type Record struct {
	Timestamp string
	Level     string
	Source    string
	// Message may span several lines (stack traces, exception text).
	Message string
}

// Fields returns the record fields in output order.
func (r Record) Fields() []string {
	return []string{r.Timestamp, r.Level, r.Source, r.Message}
}

// String returns the normalized line without a trailing newline.
func (r Record) String() string {
	return strings.Join(r.Fields(), Separator)
}
