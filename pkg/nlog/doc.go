// Package nlog converts heterogeneous log files into the pipe-delimited
// line format read by NLog-style log viewers:
//
//	timestamp|level|source|message
//
// This package allows you to:
//   - Detect the source format from the first lines of a file
//   - Split a stream into records without loading it into memory
//   - Normalize each record, skipping and reporting the malformed ones
//
// # Supported Formats
//
// Formats are checked in this order during detection:
//
//	wcf      WCF trace XML (<E2ETraceEvent> ... </E2ETraceEvent>)
//	windows  Windows Event XML export (<Events><Event> ... </Event>)
//	plain    text blocks separated by a line of 40 dashes
//
// # Basic Usage
//
// To convert a file in one call:
//
//	in, _ := os.Open("service.svclog")
//	defer in.Close()
//
//	format, stats, err := nlog.Convert(ctx, in, os.Stdout)
//	if errors.Is(err, nlog.ErrFormatNotDetected) {
//	    // retry with nlog.WithFormat(...)
//	}
//	fmt.Printf("%s: %d converted, %d failed\n", format.ID, stats.Converted, stats.Failed)
//
// # Step by Step
//
// The pieces can be used separately, for example to report the selected
// format before converting:
//
//	reg := nlog.DefaultRegistry()
//	format, src, err := reg.Resolve(ctx, nlog.NewReaderSource(in), "", nlog.DefaultDetectLines)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(format.ID, "log converter is used")
//	stats, err := nlog.NewDriver(format, nlog.WithLogger(logger)).Run(ctx, src, out)
//
// # Failed Records
//
// A record missing a required field is passed to the diagnostics function
// (see [WithDiagnostics]) and never written to the output; the run goes on
// with the next record. Only I/O errors stop a run.
//
// The message field is written as-is. A '|' inside a message is not
// escaped, so such lines are ambiguous for readers splitting on '|'.
package nlog
