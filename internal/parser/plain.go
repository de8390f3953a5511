package parser

import (
	"fmt"
	"strings"

	"github.com/nlogconv/nlogconv-go/pkg/nlog/record"
)

// ConvertPlain normalizes one block of a plain text log.
//
// The time value "D.M.Y H:M:S.fff" is reordered to "Y-M-D H:M:S.fff".
// Type defaults to INFO, Source to UNKNOWN, and a missing Comment leaves
// the message empty. A missing or malformed Time fails the record.
func ConvertPlain(raw string) (record.Record, error) {
	text := strings.TrimSpace(raw)

	ts, err := requireField("timestamp", plainTimePattern, text)
	if err != nil {
		return record.Record{}, err
	}
	m := plainTimeLayoutPattern.FindStringSubmatch(ts)
	if m == nil {
		return record.Record{}, &record.FieldError{
			Field:   "timestamp",
			Pattern: plainTimeLayoutPattern.String(),
			Value:   ts,
			Err:     record.ErrMalformed,
		}
	}

	rec := record.Record{
		Timestamp: fmt.Sprintf("%s-%s-%s %s", m[3], m[2], m[1], m[4]),
		Level:     "INFO",
		Source:    "UNKNOWN",
	}

	if level, ok := Extract(plainLevelPattern, text); ok {
		rec.Level = strings.ToUpper(level)
		if rec.Level == "INFORMATION" {
			rec.Level = "INFO"
		}
	}
	if source, ok := Extract(plainSourcePattern, text); ok {
		rec.Source = source
	}
	rec.Message, _ = Extract(plainCommentPattern, text)

	return rec, nil
}
