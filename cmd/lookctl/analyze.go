package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lookcircuit-backend/internal/face"
)

var errNoFace = errors.New("no face detected")

func newAnalyzeCmd(flags *rootFlags) *cobra.Command {
	var analyzer string

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze skin tone, face shape and hair coverage in a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := analyzeFile(cmd.Context(), analyzer, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), flags, res)
		},
	}

	cmd.Flags().StringVar(&analyzer, "analyzer", face.KindPipeline, "Analyzer to run (pipeline or fixed)")
	return cmd
}

func analyzeFile(ctx context.Context, kind, path string) (face.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := os.Open(path)
	if err != nil {
		return face.Result{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := face.Decode(f)
	if err != nil {
		return face.Result{}, err
	}
	res, err := face.NewAnalyzer(kind).Analyze(ctx, img)
	if err != nil {
		return face.Result{}, err
	}
	if !res.Detected {
		return face.Result{}, errNoFace
	}
	return res, nil
}
