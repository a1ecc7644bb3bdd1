package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	compact bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lookctl",
		Short:         "lookctl runs LookCircuit face analysis and styling from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&flags.compact, "compact", false, "Print JSON on a single line")

	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newRecommendCmd(flags))
	cmd.AddCommand(newOutfitCmd(flags))
	cmd.AddCommand(newDiscoverCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))

	return cmd
}

func writeJSON(w io.Writer, flags *rootFlags, v any) error {
	enc := json.NewEncoder(w)
	if !flags.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
