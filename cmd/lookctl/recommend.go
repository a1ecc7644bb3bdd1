package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"lookcircuit-backend/internal/face"
	"lookcircuit-backend/internal/recommendations"
)

type recommendFlags struct {
	image     string
	analyzer  string
	skinType  int
	undertone string
	faceShape string
	bodyType  string
	hair      string
	gender    string
}

func newRecommendCmd(flags *rootFlags) *cobra.Command {
	rf := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate color, style and grooming recommendations",
		Long:  "Generate recommendations from explicit traits, or from a photo with --image.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := rf.input(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), flags, recommendations.Generate(in))
		},
	}

	cmd.Flags().StringVar(&rf.image, "image", "", "Analyze this photo instead of using trait flags")
	cmd.Flags().StringVar(&rf.analyzer, "analyzer", face.KindPipeline, "Analyzer for --image (pipeline or fixed)")
	cmd.Flags().IntVar(&rf.skinType, "skin-type", 0, "Fitzpatrick skin type (1-6)")
	cmd.Flags().StringVar(&rf.undertone, "undertone", "", "Skin undertone (warm, cool, neutral)")
	cmd.Flags().StringVar(&rf.faceShape, "face-shape", "", "Face shape (oval, round, square, heart, oblong, diamond, triangle)")
	cmd.Flags().StringVar(&rf.bodyType, "body-type", "", "Body type (ectomorph, mesomorph, endomorph)")
	cmd.Flags().StringVar(&rf.hair, "hair", "", "Hair coverage (full, thinning, bald)")
	cmd.Flags().StringVar(&rf.gender, "gender", "male", "Gender used for grooming advice")
	return cmd
}

func (rf *recommendFlags) input(cmd *cobra.Command) (recommendations.Input, error) {
	if rf.image != "" {
		res, err := analyzeFile(cmd.Context(), rf.analyzer, rf.image)
		if err != nil {
			return recommendations.Input{}, err
		}
		return recommendations.InputFromAnalysis(res, rf.bodyType, rf.gender), nil
	}
	in := recommendations.Input{
		FitzpatrickType: rf.skinType,
		Undertone:       face.Undertone(rf.undertone),
		FaceShape:       rf.faceShape,
		BodyType:        rf.bodyType,
		HairCoverage:    face.HairLevel(rf.hair),
		Gender:          rf.gender,
	}
	if err := inputValidator().Struct(in); err != nil {
		return recommendations.Input{}, fmt.Errorf("invalid traits: %w", err)
	}
	return in, nil
}

// inputValidator reads the same binding tags the HTTP handler enforces.
func inputValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}
