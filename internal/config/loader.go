package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nlogconv/nlogconv-go/internal/safefile"
)

// MaxFileSize is the largest configuration file accepted (64 KiB).
const MaxFileSize = 64 * 1024

// Load reads, parses and validates the configuration file at path.
//
// The file must be a regular file, not a symlink, FIFO or device. Keys
// missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	f, info, err := safefile.OpenRegular(path)
	if err != nil {
		if errors.Is(err, safefile.ErrNotRegularFile) {
			return nil, errors.New("config file must be a regular file (not a symlink, FIFO, device, or directory)")
		}
		return nil, fmt.Errorf("failed to open config file: %w", sanitizePathError(err))
	}
	defer f.Close()

	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), MaxFileSize)
	}

	// One extra byte detects a file that grew after Stat.
	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", sanitizePathError(err))
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates a configuration document.
// Unknown keys are rejected. An empty document yields Default().
func LoadBytes(data []byte) (*Config, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", len(data), MaxFileSize)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
