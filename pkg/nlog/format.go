package nlog

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/nlogconv/nlogconv-go/internal/parser"
)

// DefaultDetectLines is the number of leading lines inspected by format detection.
const DefaultDetectLines = 5

// Identifiers of the built-in formats.
const (
	FormatWCF          = "wcf"
	FormatWindowsEvent = "windows"
	FormatPlain        = "plain"
)

// Format describes one supported source format.
type Format struct {
	// ID is the name used on the command line.
	ID string

	// Magic is a literal expected within the first lines of a file of this format.
	Magic string

	// Converter normalizes one raw record.
	Converter Converter

	// NewSegmenter returns a fresh segmenter for one input stream.
	NewSegmenter func() Segmenter
}

// Registry is an ordered list of formats. Detection checks formats in
// order, so a format whose magic can occur inside another format's content
// must come before that format.
type Registry []Format

// DefaultRegistry returns the built-in formats in detection order.
func DefaultRegistry() Registry {
	return Registry{
		{
			ID:           FormatWCF,
			Magic:        parser.WCFMagic,
			Converter:    WCFConverter,
			NewSegmenter: func() Segmenter { return NewMarkerSegmenter(parser.WCFEndMarker) },
		},
		{
			ID:           FormatWindowsEvent,
			Magic:        parser.WindowsEventMagic,
			Converter:    WindowsEventConverter,
			NewSegmenter: func() Segmenter { return NewMarkerSegmenter(parser.WindowsEventEndMarker) },
		},
		{
			ID:           FormatPlain,
			Magic:        parser.PlainMagic,
			Converter:    PlainConverter,
			NewSegmenter: func() Segmenter { return NewDelimiterSegmenter(parser.PlainDelimiter) },
		},
	}
}

// IDs returns the format identifiers in registry order.
func (r Registry) IDs() []string {
	ids := make([]string, len(r))
	for i, f := range r {
		ids[i] = f.ID
	}
	return ids
}

// Lookup returns the format registered under id.
func (r Registry) Lookup(id string) (Format, bool) {
	for _, f := range r {
		if f.ID == id {
			return f, true
		}
	}
	return Format{}, false
}

// Detect returns the first format whose magic string occurs in prefix.
// Returns ErrFormatNotDetected if none does.
func (r Registry) Detect(prefix string) (Format, error) {
	for _, f := range r {
		if f.Magic != "" && strings.Contains(prefix, f.Magic) {
			return f, nil
		}
	}
	return Format{}, ErrFormatNotDetected
}

// Resolve selects the format for src.
//
// A non-empty id is looked up directly and detection is skipped, whatever
// the content looks like. Otherwise the first n lines of src are sniffed and
// matched with Detect. The returned LineSource must be used instead of src:
// it replays the sniffed lines.
func (r Registry) Resolve(ctx context.Context, src LineSource, id string, n int) (Format, LineSource, error) {
	if id != "" {
		f, ok := r.Lookup(id)
		if !ok {
			return Format{}, src, &UnknownFormatError{ID: id, Known: r.IDs()}
		}
		return f, src, nil
	}

	prefix, replay, err := Sniff(ctx, src, n)
	if err != nil {
		return Format{}, replay, err
	}
	f, err := r.Detect(prefix)
	if err != nil {
		return Format{}, replay, err
	}
	return f, replay, nil
}

// Sniff reads up to n lines from src and returns them concatenated, along
// with a LineSource that yields those lines again before the rest of src.
// A stream shorter than n lines is not an error.
func Sniff(ctx context.Context, src LineSource, n int) (string, LineSource, error) {
	var lines []string
	for len(lines) < n {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", &replaySource{lines: lines, src: src}, err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, ""), &replaySource{lines: lines, src: src}, nil
}
