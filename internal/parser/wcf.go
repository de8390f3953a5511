package parser

import (
	"strings"

	"github.com/nlogconv/nlogconv-go/pkg/nlog/record"
)

// ConvertWCF normalizes one <E2ETraceEvent> element of a WCF trace export.
//
// Timestamp, level and source are required. The message falls back to
// WCFNoMessage; Description, ExceptionString and StackTrace contents are
// appended to it on separate lines, in that order, when present.
func ConvertWCF(raw string) (record.Record, error) {
	text := strings.TrimSpace(raw)

	ts, err := requireField("timestamp", wcfTimePattern, text)
	if err != nil {
		return record.Record{}, err
	}
	level, err := requireField("level", wcfLevelPattern, text)
	if err != nil {
		return record.Record{}, err
	}
	source, err := requireField("source", wcfSourcePattern, text)
	if err != nil {
		return record.Record{}, err
	}

	message, _ := Extract(wcfMessagePattern, text)
	if message == "" {
		message = WCFNoMessage
	}

	var sb strings.Builder
	sb.WriteString(message)
	for _, re := range wcfDetailPatterns {
		if detail, ok := Extract(re, text); ok && detail != "" {
			sb.WriteByte('\n')
			sb.WriteString(detail)
		}
	}

	return record.Record{
		Timestamp: isoToSpaced(ts),
		Level:     strings.ToUpper(level),
		Source:    source,
		Message:   sb.String(),
	}, nil
}
