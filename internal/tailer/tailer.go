// Package tailer follows a growing log file line by line.
package tailer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nxadm/tail"
)

// Config controls how a file is followed.
type Config struct {
	// FromStart reads the existing content before waiting for new lines.
	// When false, only lines appended after New returns are delivered.
	FromStart bool

	// Poll uses stat polling instead of filesystem notifications, for
	// network shares and other filesystems without inotify support.
	Poll bool

	// Logger receives the tail library's diagnostics at debug level.
	Logger *slog.Logger
}

// DefaultConfig returns a Config that reads the whole file and then follows it.
func DefaultConfig() Config {
	return Config{FromStart: true}
}

// Tailer delivers the lines of a followed file.
type Tailer struct {
	t *tail.Tail
}

// New starts following path. The file must exist.
// The caller must call Close when done.
func New(path string, cfg Config) (*Tailer, error) {
	tc := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Poll:      cfg.Poll,
		Logger:    tail.DiscardingLogger,
	}
	if !cfg.FromStart {
		tc.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}
	if cfg.Logger != nil {
		tc.Logger = slog.NewLogLogger(cfg.Logger.Handler(), slog.LevelDebug)
	}

	t, err := tail.TailFile(path, tc)
	if err != nil {
		return nil, fmt.Errorf("follow file: %w", err)
	}
	return &Tailer{t: t}, nil
}

// Next blocks until a line is available and returns it with a trailing
// newline. Returns ctx.Err() when ctx is cancelled and io.EOF if the
// tail stops on its own.
func (t *Tailer) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-t.t.Lines:
		if !ok {
			if err := t.t.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		if line.Err != nil {
			return "", line.Err
		}
		return line.Text + "\n", nil
	}
}

// Close stops following the file and releases its watches.
func (t *Tailer) Close() error {
	err := t.t.Stop()
	t.t.Cleanup()
	return err
}
