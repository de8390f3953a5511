package nlog

import "github.com/nlogconv/nlogconv-go/internal/parser"

// Converter turns the text of one raw record into a normalized Record.
type Converter interface {
	// Convert returns an error, typically a *FieldError, when a required
	// field is missing or malformed. It never returns a partial Record.
	Convert(raw string) (Record, error)
}

// ConverterFunc is an adapter to allow ordinary functions to be used as Converters.
type ConverterFunc func(raw string) (Record, error)

// Convert implements the Converter interface.
func (f ConverterFunc) Convert(raw string) (Record, error) {
	return f(raw)
}

// Built-in converters.
var (
	PlainConverter        Converter = ConverterFunc(parser.ConvertPlain)
	WindowsEventConverter Converter = ConverterFunc(parser.ConvertWindowsEvent)
	WCFConverter          Converter = ConverterFunc(parser.ConvertWCF)
)

// Result is the outcome of converting one raw record.
// Exactly one of Record and Err is meaningful.
type Result struct {
	// Raw is the record text as produced by the segmenter.
	Raw string

	// Record is set when Err is nil.
	Record Record

	// Err explains why the record was rejected.
	Err error
}

// OK reports whether the record was converted.
func (r Result) OK() bool {
	return r.Err == nil
}

// ConvertRecord runs c on raw and packs the outcome into a Result.
func ConvertRecord(c Converter, raw string) Result {
	rec, err := c.Convert(raw)
	if err != nil {
		return Result{Raw: raw, Err: err}
	}
	return Result{Raw: raw, Record: rec}
}
