package nlog

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/nlogconv/nlogconv-go/internal/tailer"
)

// FollowSource reads a file from the start and keeps waiting for appended
// lines, like tail -f.
//
// Cancelling the context passed to Next ends the stream: Next returns io.EOF
// so a Driver flushes the last buffered record before returning.
type FollowSource struct {
	t *tailer.Tailer
}

// NewFollowSource starts following path. The caller must call Close.
func NewFollowSource(path string, logger *slog.Logger) (*FollowSource, error) {
	cfg := tailer.DefaultConfig()
	cfg.Logger = logger
	t, err := tailer.New(path, cfg)
	if err != nil {
		return nil, err
	}
	return &FollowSource{t: t}, nil
}

// Next implements the LineSource interface.
func (s *FollowSource) Next(ctx context.Context) (string, error) {
	line, err := s.t.Next(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "", io.EOF
	}
	return line, err
}

// Close stops following the file.
func (s *FollowSource) Close() error {
	return s.t.Close()
}
