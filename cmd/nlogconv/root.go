package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nlogconv/nlogconv-go/internal/config"
	"github.com/nlogconv/nlogconv-go/internal/safefile"
	"github.com/nlogconv/nlogconv-go/pkg/nlog"
)

// stdio is the INPUT or OUTPUT argument naming stdin or stdout.
const stdio = "-"

var rootCmd = newRootCmd()

// convertOptions holds the flags of the root command.
type convertOptions struct {
	format      string
	follow      bool
	detectLines int
	configPath  string
	diagnostics string
	noColor     bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "nlogconv [flags] INPUT [OUTPUT]",
		Short: "Convert log files to NLog viewer format",
		Long: `Convert plain text, Windows Event XML and WCF trace logs into
pipe-delimited lines (timestamp|level|source|message) for NLog-style viewers.

The source format is detected from the first lines of INPUT unless --format
is given. Records that cannot be converted are reported on stderr and skipped.

OUTPUT defaults to INPUT with its extension replaced by "_nlog.log".
Use "-" for INPUT to read stdin and for OUTPUT to write stdout.

Examples:
  # Convert with detection, writing logs/app_nlog.log
  nlogconv logs/app.txt

  # Force the format and write to stdout
  nlogconv --format wcf service.svclog - | less

  # Keep converting while the service writes
  nlogconv --follow logs/app.txt

  # Collect failed records in a file
  nlogconv --diagnostics failed.txt events.xml events.log`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "",
		"Source format: wcf, windows, plain (detected if not specified)")
	f.BoolVar(&opts.follow, "follow", false,
		"Keep reading INPUT as it grows until interrupted")
	f.IntVar(&opts.detectLines, "detect-lines", nlog.DefaultDetectLines,
		"Number of leading lines inspected by format detection")
	f.StringVar(&opts.configPath, "config", "",
		"Configuration file (default: $NLOGCONV_CONFIG or <user config dir>/nlogconv/config.yaml)")
	f.StringVar(&opts.diagnostics, "diagnostics", "",
		"Write failed records to this file instead of stderr")
	f.BoolVar(&opts.noColor, "no-color", false,
		"Disable colored diagnostics")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nlog.DefaultRegistry().IDs(), cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(newFormatsCmd(), newCompletionCmd())
	return cmd
}

// settings merges the configuration file with the flags set on cmd.
func (o *convertOptions) settings(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, path, err := config.Resolve(o.configPath)
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		if _, ok := nlog.DefaultRegistry().Lookup(o.format); !ok {
			return nil, "", &nlog.UnknownFormatError{ID: o.format, Known: nlog.DefaultRegistry().IDs()}
		}
		cfg.Format = o.format
	}
	if flags.Changed("detect-lines") {
		cfg.DetectLines = o.detectLines
	}
	if flags.Changed("diagnostics") {
		cfg.Diagnostics = o.diagnostics
	}
	if o.noColor {
		cfg.Color = config.ColorNever
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid options: %w", err)
	}
	return cfg, path, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}

func runConvert(cmd *cobra.Command, opts *convertOptions, args []string) (err error) {
	cfg, cfgPath, err := opts.settings(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	if cfgPath != "" {
		logger.Debug("configuration loaded", "path", cfgPath)
	}

	inPath := args[0]
	outPath := stdio
	if len(args) == 2 {
		outPath = args[1]
	} else if inPath != stdio {
		outPath = defaultOutputPath(inPath, cfg.OutputSuffix)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, inInfo, closeIn, err := openInput(cmd, inPath, opts.follow, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeIn())
	}()

	// Detection runs before any output is created.
	format, src, err := nlog.DefaultRegistry().Resolve(ctx, src, cfg.Format, cfg.DetectLines)
	if err != nil {
		return err
	}

	msgOut := cmd.OutOrStdout()
	if outPath == stdio {
		msgOut = cmd.ErrOrStderr()
	}
	fmt.Fprintf(msgOut, "%s log converter is used\n", format.ID)

	// Neither sink may overwrite the input, and they may not share a file.
	protected := []os.FileInfo{inInfo}
	if outPath != stdio {
		if info, statErr := os.Stat(outPath); statErr == nil {
			protected = append(protected, info)
		}
	}

	// Diagnostics open first so a failure leaves an existing output untouched.
	diag, diagFile, err := openDiagnostics(cmd.ErrOrStderr(), cfg, protected...)
	if err != nil {
		return err
	}
	if diagFile != nil {
		defer func() {
			err = errors.Join(err, diagFile.Close())
		}()
		info, statErr := diagFile.Stat()
		if statErr != nil {
			return statErr
		}
		protected = append(protected, info)
	}

	var out io.Writer = cmd.OutOrStdout()
	if outPath != stdio {
		f, createErr := safefile.CreateOutput(outPath, protected...)
		if createErr != nil {
			return createErr
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		out = f
	}

	w := bufio.NewWriter(out)
	driver := nlog.NewDriver(format,
		nlog.WithLogger(logger),
		nlog.WithDiagnostics(diag),
		nlog.WithFlushEachRecord(opts.follow),
	)
	stats, runErr := driver.Run(ctx, src, w)
	if err := errors.Join(runErr, w.Flush()); err != nil {
		return err
	}

	logger.Info("conversion finished",
		"format", format.ID,
		"input", inPath,
		"output", outPath,
		"converted", stats.Converted,
		"failed", stats.Failed)
	return nil
}

// openInput returns the line source for path and, for files, its FileInfo
// used to refuse writing over the input.
func openInput(cmd *cobra.Command, path string, follow bool, logger *slog.Logger) (nlog.LineSource, os.FileInfo, func() error, error) {
	noop := func() error { return nil }

	if path == stdio {
		if follow {
			return nil, nil, noop, errors.New("--follow cannot be used with stdin")
		}
		return nlog.NewReaderSource(cmd.InOrStdin()), nil, noop, nil
	}

	if follow {
		info, err := os.Stat(path)
		if err != nil {
			return nil, nil, noop, err
		}
		if info.IsDir() {
			return nil, nil, noop, fmt.Errorf("%s: %w", path, safefile.ErrIsDirectory)
		}
		fs, err := nlog.NewFollowSource(path, logger)
		if err != nil {
			return nil, nil, noop, err
		}
		return fs, info, fs.Close, nil
	}

	f, info, err := safefile.OpenInput(path)
	if err != nil {
		return nil, nil, noop, err
	}
	return nlog.NewReaderSource(f), info, f.Close, nil
}
