package nlog

import "strings"

// EmitFunc receives the text of one raw record.
// A non-nil error stops segmentation and is returned to the caller.
type EmitFunc func(raw string) error

// Segmenter splits a stream of lines into raw records.
//
// Segmenters hold per-stream state and are not safe for concurrent use.
// Emitted records are never altered: concatenating them in order yields
// exactly the text that was pushed.
type Segmenter interface {
	// Push consumes one input line, including its line terminator, and
	// calls emit for every record it completes.
	Push(line string, emit EmitFunc) error

	// Close emits any buffered text as the final record.
	Close(emit EmitFunc) error
}

// DelimiterSegmenter starts a new record at every line containing Delimiter.
// The delimiter line belongs to the record it starts.
type DelimiterSegmenter struct {
	Delimiter string

	buf strings.Builder
}

// NewDelimiterSegmenter returns a DelimiterSegmenter for delim.
func NewDelimiterSegmenter(delim string) *DelimiterSegmenter {
	return &DelimiterSegmenter{Delimiter: delim}
}

// Push implements the Segmenter interface.
func (s *DelimiterSegmenter) Push(line string, emit EmitFunc) error {
	if strings.Contains(line, s.Delimiter) {
		if err := flush(&s.buf, emit); err != nil {
			return err
		}
	}
	s.buf.WriteString(line)
	return nil
}

// Close implements the Segmenter interface.
func (s *DelimiterSegmenter) Close(emit EmitFunc) error {
	return flush(&s.buf, emit)
}

// MarkerSegmenter ends a record right after every occurrence of Marker.
// A marker may appear anywhere in a line, any number of times.
type MarkerSegmenter struct {
	Marker string

	buf strings.Builder
}

// NewMarkerSegmenter returns a MarkerSegmenter for marker.
func NewMarkerSegmenter(marker string) *MarkerSegmenter {
	return &MarkerSegmenter{Marker: marker}
}

// Push implements the Segmenter interface.
func (s *MarkerSegmenter) Push(line string, emit EmitFunc) error {
	for line != "" {
		p := strings.Index(line, s.Marker)
		if p < 0 || s.Marker == "" {
			s.buf.WriteString(line)
			return nil
		}
		end := p + len(s.Marker)
		s.buf.WriteString(line[:end])
		if err := flush(&s.buf, emit); err != nil {
			return err
		}
		line = line[end:]
	}
	return nil
}

// Close implements the Segmenter interface.
func (s *MarkerSegmenter) Close(emit EmitFunc) error {
	return flush(&s.buf, emit)
}

// flush emits buf if it holds any text and always resets it.
func flush(buf *strings.Builder, emit EmitFunc) error {
	if buf.Len() == 0 {
		return nil
	}
	raw := buf.String()
	buf.Reset()
	return emit(raw)
}
