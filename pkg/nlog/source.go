package nlog

import (
	"bufio"
	"context"
	"errors"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LineSource yields input lines one at a time.
type LineSource interface {
	// Next returns the next line including its terminator, if any.
	// Returns io.EOF once the input is exhausted.
	Next(ctx context.Context) (string, error)
}

// readerBufferSize is the initial read buffer; longer lines still work.
const readerBufferSize = 64 * 1024

type readerSource struct {
	r *bufio.Reader
}

// NewReaderSource returns a LineSource reading lines from r.
//
// Line terminators are kept so records can be reassembled byte for byte.
// A leading byte order mark selects the decoding: a UTF-8 BOM is dropped
// and UTF-16 input (common for Windows XML exports) is transcoded to UTF-8.
// Input without a BOM is passed through unchanged.
func NewReaderSource(r io.Reader) LineSource {
	dec := unicode.BOMOverride(transform.Nop)
	return &readerSource{r: bufio.NewReaderSize(transform.NewReader(r, dec), readerBufferSize)}
}

// Next implements the LineSource interface.
func (s *readerSource) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := s.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// replaySource yields buffered lines before reading from src.
type replaySource struct {
	lines []string
	src   LineSource
}

func (s *replaySource) Next(ctx context.Context) (string, error) {
	if len(s.lines) > 0 {
		line := s.lines[0]
		s.lines = s.lines[1:]
		return line, nil
	}
	return s.src.Next(ctx)
}
