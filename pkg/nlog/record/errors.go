package record

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by FieldError.
var (
	// ErrNoMatch means the field pattern did not match the record text.
	ErrNoMatch = errors.New("pattern did not match")

	// ErrMalformed means the field was found but its value has an unexpected shape.
	ErrMalformed = errors.New("malformed value")

	// ErrLevelOutOfRange means a numeric severity has no entry in the level table.
	ErrLevelOutOfRange = errors.New("level out of range")
)

// FieldError reports a field that could not be extracted or normalized.
type FieldError struct {
	Field   string // timestamp, level, source or message
	Pattern string // pattern that failed, if any
	Value   string // offending value when the pattern matched
	Err     error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("field %s: %v", e.Field, e.Err)
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	if e.Pattern != "" {
		msg += fmt.Sprintf(" (pattern %q)", e.Pattern)
	}
	return msg
}

// Unwrap returns the underlying cause so errors.Is works with the sentinels above.
func (e *FieldError) Unwrap() error {
	return e.Err
}
