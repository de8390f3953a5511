package nlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stats counts what happened during one run.
type Stats struct {
	// Records is the number of non-blank records handed to the converter.
	Records int
	// Converted is the number of lines written to the output.
	Converted int
	// Failed is the number of records reported to diagnostics.
	Failed int
	// Skipped is the number of whitespace-only records ignored.
	Skipped int
}

// Driver converts one input stream with a fixed format.
type Driver struct {
	format Format
	cfg    *config
}

// NewDriver creates a Driver for f.
// WithFormat, WithRegistry and WithDetectLines are ignored.
func NewDriver(f Format, opts ...Option) *Driver {
	return &Driver{format: f, cfg: applyOptions(opts)}
}

// Format returns the format the driver converts.
func (d *Driver) Format() Format {
	return d.format
}

type flusher interface {
	Flush() error
}

// Run reads src to the end, converting every record and writing one
// normalized line per successful conversion to dst.
//
// A record that fails to convert goes to the diagnostics function and the
// run continues with the next record. Errors reading src, writing dst or
// writing diagnostics are returned immediately along with the statistics
// gathered so far.
func (d *Driver) Run(ctx context.Context, src LineSource, dst io.Writer) (Stats, error) {
	if d.format.NewSegmenter == nil || d.format.Converter == nil {
		return Stats{}, fmt.Errorf("format %q is incomplete", d.format.ID)
	}

	var stats Stats
	seg := d.format.NewSegmenter()
	emit := func(raw string) error {
		return d.handle(raw, dst, &stats)
	}

	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read input: %w", err)
		}
		if err := seg.Push(line, emit); err != nil {
			return stats, err
		}
	}
	if err := seg.Close(emit); err != nil {
		return stats, err
	}

	d.cfg.logger.Debug("conversion finished",
		"format", d.format.ID,
		"records", stats.Records,
		"converted", stats.Converted,
		"failed", stats.Failed)
	return stats, nil
}

func (d *Driver) handle(raw string, dst io.Writer, stats *Stats) error {
	if strings.TrimSpace(raw) == "" {
		stats.Skipped++
		return nil
	}
	stats.Records++

	res := ConvertRecord(d.format.Converter, raw)
	if !res.OK() {
		stats.Failed++
		d.cfg.logger.Debug("record rejected", "format", d.format.ID, "record", stats.Records, "error", res.Err)
		if err := d.cfg.diagnostics(res); err != nil {
			return fmt.Errorf("write diagnostics: %w", err)
		}
		return nil
	}

	if _, err := io.WriteString(dst, res.Record.String()+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if d.cfg.flushEachRecord {
		if f, ok := dst.(flusher); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
	stats.Converted++
	return nil
}

// Convert detects the format of r (unless WithFormat is given) and writes
// the normalized lines to w.
//
// Returns ErrFormatNotDetected, or an *UnknownFormatError for WithFormat,
// before anything is written.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (Format, Stats, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return Format{}, Stats{}, fmt.Errorf("invalid options: %w", err)
	}

	f, src, err := cfg.registry.Resolve(ctx, NewReaderSource(r), cfg.formatID, cfg.detectLines)
	if err != nil {
		return Format{}, Stats{}, err
	}
	d := &Driver{format: f, cfg: cfg}
	stats, err := d.Run(ctx, src, w)
	return f, stats, err
}
