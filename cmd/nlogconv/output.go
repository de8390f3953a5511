package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/nlogconv/nlogconv-go/internal/config"
	"github.com/nlogconv/nlogconv-go/internal/safefile"
	"github.com/nlogconv/nlogconv-go/pkg/nlog"
)

// defaultOutputPath replaces the extension of input with suffix:
// "logs/app.txt" becomes "logs/app_nlog.log". A leading dot does not start
// an extension, so ".app" becomes ".app_nlog.log".
func defaultOutputPath(input, suffix string) string {
	dir, base := filepath.Split(input)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	return dir + strings.TrimSuffix(base, ext) + suffix
}

// openDiagnostics returns where failed records are reported: the file named
// in cfg, or stderr. A diagnostics file that is the same file as one of
// protected is refused with safefile.ErrSameFile. The returned file is nil
// when writing to stderr; otherwise the caller must close it.
func openDiagnostics(stderr io.Writer, cfg *config.Config, protected ...os.FileInfo) (nlog.DiagnosticFunc, *os.File, error) {
	w := stderr

	var f *os.File
	if cfg.Diagnostics != "" {
		var err error
		f, err = safefile.CreateOutput(cfg.Diagnostics, protected...)
		if err != nil {
			return nil, nil, fmt.Errorf("diagnostics: %w", err)
		}
		w = f
	}

	d := nlog.DiagnosticWriter{W: w}
	if useColor(cfg.Color, w) {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		d.Header = func(s string) string { return c.Sprint(s) }
	}
	return d.Write, f, nil
}

// useColor reports whether diagnostics written to w get colored headers.
// In auto mode only terminals qualify, and NO_COLOR turns color off.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
