// Package config loads the optional nlogconv configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nlogconv/nlogconv-go/pkg/nlog"
)

const (
	// SupportedVersion is the only accepted value of the version key.
	SupportedVersion = 1

	// DefaultOutputSuffix replaces the input extension when no output path is given.
	DefaultOutputSuffix = "_nlog.log"
)

// Color modes for diagnostics written to a terminal.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings that command-line flags may override.
type Config struct {
	Version      int    `yaml:"version"`
	Format       string `yaml:"format"`        // empty means detect
	DetectLines  int    `yaml:"detect_lines"`  // leading lines inspected by detection
	OutputSuffix string `yaml:"output_suffix"` // appended to the input name without extension
	Diagnostics  string `yaml:"diagnostics"`   // file path; empty means stderr
	Color        string `yaml:"color"`         // auto, always or never
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Version:      SupportedVersion,
		DetectLines:  nlog.DefaultDetectLines,
		OutputSuffix: DefaultOutputSuffix,
		Color:        ColorAuto,
	}
}

// Validate checks every field against the formats of the default registry.
func (c *Config) Validate() error {
	if c.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", c.Version, SupportedVersion),
		}
	}

	if c.Format != "" {
		if _, ok := nlog.DefaultRegistry().Lookup(c.Format); !ok {
			return &ValidationError{
				Field:   "format",
				Message: fmt.Sprintf("unknown format %q (known: %s)", c.Format, strings.Join(nlog.DefaultRegistry().IDs(), ", ")),
			}
		}
	}

	if c.DetectLines <= 0 {
		return &ValidationError{
			Field:   "detect_lines",
			Message: fmt.Sprintf("must be positive, got %d", c.DetectLines),
		}
	}

	if c.OutputSuffix == "" {
		return &ValidationError{Field: "output_suffix", Message: "must not be empty"}
	}
	if strings.ContainsAny(c.OutputSuffix, `/\`) {
		return &ValidationError{Field: "output_suffix", Message: "must not contain path separators"}
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("must be one of auto, always, never; got %q", c.Color),
		}
	}

	return nil
}

// ValidationError reports a configuration value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// sanitizePathError strips the path from an *os.PathError; callers add the
// path themselves where it is useful.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}
