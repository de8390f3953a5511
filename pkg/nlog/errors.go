package nlog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormatNotDetected is returned when no registered magic string appears
// in the detection prefix of the input.
var ErrFormatNotDetected = errors.New("could not determine source format, try to specify it explicitly")

// UnknownFormatError is returned when an explicitly requested format is not registered.
type UnknownFormatError struct {
	ID    string
	Known []string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (known: %s)", e.ID, strings.Join(e.Known, ", "))
}
