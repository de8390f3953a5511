package nlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Option configures a Driver or a Convert call using the functional options pattern.
type Option func(*config)

// config holds internal configuration shared by Driver and Convert.
type config struct {
	logger          *slog.Logger
	diagnostics     DiagnosticFunc
	flushEachRecord bool

	// Used by Convert only.
	formatID    string
	registry    Registry
	detectLines int
}

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// defaultConfig returns a config with sensible defaults.
func defaultConfig() *config {
	return &config{
		logger:      discardLogger,
		diagnostics: WriteDiagnostic(os.Stderr),
		registry:    DefaultRegistry(),
		detectLines: DefaultDetectLines,
	}
}

// applyOptions applies functional options to a config.
func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// validate checks for invalid option values.
func (c *config) validate() error {
	if c.detectLines <= 0 {
		return fmt.Errorf("detect lines must be positive, got %d", c.detectLines)
	}
	if len(c.registry) == 0 {
		return fmt.Errorf("registry must contain at least one format")
	}
	return nil
}

// WithLogger sets the logger for debug output.
// Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDiagnostics sets the function receiving every record that failed to convert.
// Default: WriteDiagnostic(os.Stderr).
func WithDiagnostics(fn DiagnosticFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.diagnostics = fn
		}
	}
}

// WithFlushEachRecord flushes the output after every written line when the
// output has a Flush() error method (for example *bufio.Writer).
// Useful when following a file so readers see records as they arrive.
// Default: false.
func WithFlushEachRecord(flush bool) Option {
	return func(c *config) {
		c.flushEachRecord = flush
	}
}

// WithFormat forces the format with the given identifier and skips detection.
// Only used by Convert.
func WithFormat(id string) Option {
	return func(c *config) {
		c.formatID = id
	}
}

// WithRegistry replaces the registry used for detection and lookup.
// Only used by Convert. Default: DefaultRegistry().
func WithRegistry(r Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithDetectLines sets how many leading lines are inspected by detection.
// Only used by Convert. Default: DefaultDetectLines.
func WithDetectLines(n int) Option {
	return func(c *config) {
		c.detectLines = n
	}
}
