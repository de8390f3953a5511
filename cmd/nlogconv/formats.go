package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nlogconv/nlogconv-go/pkg/nlog"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported source formats",
		Long: `List the supported source formats in detection order.

Detection picks the first format whose magic string appears in the first
lines of the input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFormats(cmd, nlog.DefaultRegistry())
		},
	}
}

func printFormats(cmd *cobra.Command, reg nlog.Registry) error {
	out := cmd.OutOrStdout()
	for _, f := range reg {
		if _, err := fmt.Fprintf(out, "%-8s %s\n", f.ID, f.Magic); err != nil {
			return err
		}
	}
	return nil
}
