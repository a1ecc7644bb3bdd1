package main

import (
	"github.com/spf13/cobra"

	"lookcircuit-backend/internal/catalog"
	"lookcircuit-backend/internal/recommendations"
)

func newOutfitCmd(flags *rootFlags) *cobra.Command {
	var (
		gender   string
		palette  []string
		products bool
	)

	cmd := &cobra.Command{
		Use:       "outfit <occasion>",
		Short:     "Suggest an outfit for an occasion",
		Args:      cobra.ExactArgs(1),
		ValidArgs: recommendations.Occasions(),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := palette
			if len(colors) == 0 {
				colors = recommendations.DefaultPalette
			}
			outfit := recommendations.OutfitFor(args[0], gender, colors)
			if !products {
				return writeJSON(cmd.OutOrStdout(), flags, outfit)
			}
			c, err := catalog.New()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), flags, map[string]any{
				"outfit":   outfit,
				"products": c.OutfitProducts(outfit, colors),
			})
		},
	}

	cmd.Flags().StringVar(&gender, "gender", "male", "Gender of the outfit templates")
	cmd.Flags().StringSliceVar(&palette, "palette", nil, "Palette hex colors, comma separated")
	cmd.Flags().BoolVar(&products, "products", false, "Include matching catalog products")
	return cmd
}
