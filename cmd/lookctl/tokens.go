package main

import (
	"github.com/spf13/cobra"

	"lookcircuit-backend/internal/design"
)

func newTokensCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "Print the design tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := design.Default()
			if err := tokens.Validate(); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), flags, tokens)
		},
	}
}
