package parser

import (
	"strconv"
	"strings"

	"github.com/nlogconv/nlogconv-go/pkg/nlog/record"
)

// ConvertWindowsEvent normalizes one <Event> element of a Windows Event XML
// export. All four fields are required.
func ConvertWindowsEvent(raw string) (record.Record, error) {
	text := strings.TrimSpace(raw)

	ts, err := requireField("timestamp", windowsTimePattern, text)
	if err != nil {
		return record.Record{}, err
	}
	levelText, err := requireField("level", windowsLevelPattern, text)
	if err != nil {
		return record.Record{}, err
	}
	level, err := windowsLevel(levelText)
	if err != nil {
		return record.Record{}, err
	}
	source, err := requireField("source", windowsSourcePattern, text)
	if err != nil {
		return record.Record{}, err
	}
	message, err := requireField("message", windowsDataPattern, text)
	if err != nil {
		return record.Record{}, err
	}

	return record.Record{
		Timestamp: isoToSpaced(ts),
		Level:     level,
		Source:    source,
		Message:   message,
	}, nil
}

func windowsLevel(v string) (string, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n >= len(windowsLevels) {
		return "", &record.FieldError{
			Field: "level",
			Value: v,
			Err:   record.ErrLevelOutOfRange,
		}
	}
	return windowsLevels[n], nil
}
