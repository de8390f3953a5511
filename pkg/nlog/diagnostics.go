package nlog

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DiagnosticFunc receives a failed Result. A returned error aborts the run.
type DiagnosticFunc func(Result) error

// DiagnosticHeader starts every diagnostic entry.
const DiagnosticHeader = "Cannot convert log entry:"

var diagnosticRule = strings.Repeat("-", 80)

// DiagnosticWriter writes failed records in a human readable form:
//
//	Cannot convert log entry: <error>
//	"<raw record text, Go-quoted>"
//	--------------------------------------------------------------------------------
type DiagnosticWriter struct {
	W io.Writer

	// Header, if set, decorates DiagnosticHeader (for example with color).
	Header func(string) string
}

// Write implements DiagnosticFunc.
func (d DiagnosticWriter) Write(r Result) error {
	header := DiagnosticHeader
	if d.Header != nil {
		header = d.Header(header)
	}
	_, err := fmt.Fprintf(d.W, "%s %v\n%s\n%s\n", header, r.Err, strconv.Quote(r.Raw), diagnosticRule)
	return err
}

// WriteDiagnostic returns a DiagnosticFunc writing plain entries to w.
func WriteDiagnostic(w io.Writer) DiagnosticFunc {
	return DiagnosticWriter{W: w}.Write
}
