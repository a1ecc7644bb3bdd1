package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lookcircuit-backend/internal/catalog"
)

func newDiscoverCmd(flags *rootFlags) *cobra.Command {
	var (
		palette    []string
		categories []string
		occasion   string
		maxResults int
		hex        string
		tolerance  float64
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find catalog products matching a palette or a single color",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.New()
			if err != nil {
				return err
			}
			if hex != "" {
				products, err := c.ByColor(hex, tolerance)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), flags, map[string]any{"products": products, "count": len(products)})
			}
			if len(palette) == 0 {
				return fmt.Errorf("--palette or --hex is required")
			}
			groups := c.Discover(palette, categories, occasion, maxResults)
			return writeJSON(cmd.OutOrStdout(), flags, map[string]any{"products": groups, "count": catalog.Count(groups)})
		},
	}

	cmd.Flags().StringSliceVar(&palette, "palette", nil, "Palette hex colors, comma separated")
	cmd.Flags().StringSliceVar(&categories, "category", []string{"shirts", "trousers", "footwear"}, "Categories to search")
	cmd.Flags().StringVar(&occasion, "occasion", "", "Occasion hint")
	cmd.Flags().IntVar(&maxResults, "max", 20, "Maximum products per category")
	cmd.Flags().StringVar(&hex, "hex", "", "Find products near this color instead of a palette")
	cmd.Flags().Float64Var(&tolerance, "tolerance", catalog.DefaultTolerance, "RGB distance for --hex")
	return cmd
}
