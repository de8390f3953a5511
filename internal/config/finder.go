package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfig is the environment variable naming a configuration file.
const EnvConfig = "NLOGCONV_CONFIG"

// ErrNotFound is returned when no configuration file exists.
var ErrNotFound = errors.New("config file not found")

// DefaultPaths returns candidate configuration files in priority order.
func DefaultPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(dir, "nlogconv", "config.yaml"),
		filepath.Join(dir, "nlogconv", "config.yml"),
	}
}

// Find returns the configuration file to load.
//
// Priority:
//  1. explicit (if non-empty)
//  2. NLOGCONV_CONFIG environment variable
//  3. the first existing entry of DefaultPaths()
//
// An explicit or environment path that does not exist is an error wrapping
// ErrNotFound. Otherwise ErrNotFound alone means no file is present.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if exists(explicit) {
			return explicit, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, explicit)
	}

	if env := os.Getenv(EnvConfig); env != "" {
		if exists(env) {
			return env, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to a missing file", ErrNotFound, EnvConfig)
	}

	for _, p := range DefaultPaths() {
		if exists(p) {
			return p, nil
		}
	}
	return "", ErrNotFound
}

// Resolve finds and loads the configuration. When nothing is configured
// and no default file exists it returns Default() and an empty path.
func Resolve(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if errors.Is(err, ErrNotFound) && explicit == "" && os.Getenv(EnvConfig) == "" {
		return Default(), "", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
