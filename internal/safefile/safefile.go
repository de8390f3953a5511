// Package safefile opens the files handled by the converter with the checks
// a command-line tool needs before reading or truncating anything.
package safefile

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotRegularFile is returned for symlinks, FIFOs, devices, sockets
	// and directories where a regular file is required.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrIsDirectory is returned when an input path names a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrSameFile is returned when a file to be written resolves to a file
	// that must not be overwritten, such as the input.
	ErrSameFile = errors.New("output is the same file as input")
)

// OpenRegular opens path only if it is a regular file and not a symlink.
//
// The path is checked with Lstat before opening and the descriptor is
// checked again after, which narrows the window for swapping the file
// with a symlink or special file. Used for configuration files.
//
// The caller must close the returned file.
func OpenRegular(path string) (*os.File, os.FileInfo, error) {
	linkInfo, err := os.Lstat(path)
	if err != nil {
		return nil, nil, err
	}
	if !linkInfo.Mode().IsRegular() {
		return nil, nil, ErrNotRegularFile
	}

	f, info, err := open(path)
	if err != nil {
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, ErrNotRegularFile
	}
	return f, info, nil
}

// OpenInput opens a log file for conversion. Symlinks are followed and
// FIFOs are accepted so that shell process substitution works; directories
// are rejected with ErrIsDirectory.
//
// The caller must close the returned file.
func OpenInput(path string) (*os.File, os.FileInfo, error) {
	f, info, err := open(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	return f, info, nil
}

// CreateOutput creates or truncates path for writing.
//
// When path already exists as the same file as one of protected (also
// through a hard link or symlink), nothing is truncated and ErrSameFile is
// returned. Nil entries in protected are ignored.
func CreateOutput(path string, protected ...os.FileInfo) (*os.File, error) {
	existing, err := os.Stat(path)
	switch {
	case err == nil:
		for _, p := range protected {
			if p != nil && os.SameFile(p, existing) {
				return nil, fmt.Errorf("%s: %w", path, ErrSameFile)
			}
		}
		if existing.IsDir() {
			return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}
	return os.Create(path)
}

func open(path string) (*os.File, os.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, info, nil
}
