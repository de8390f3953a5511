package nlog

import "github.com/nlogconv/nlogconv-go/pkg/nlog/record"

// Record is a normalized log entry. See [record.Record].
type Record = record.Record

// FieldError reports a field that could not be extracted. See [record.FieldError].
type FieldError = record.FieldError

// Causes wrapped by FieldError.
var (
	ErrNoMatch         = record.ErrNoMatch
	ErrMalformed       = record.ErrMalformed
	ErrLevelOutOfRange = record.ErrLevelOutOfRange
)
