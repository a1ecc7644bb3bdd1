package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookcircuit-backend/internal/design"
	"lookcircuit-backend/internal/face"
	"lookcircuit-backend/internal/recommendations"
)

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.Bytes(), err
}

func writePNG(t *testing.T, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestTokensCommand(t *testing.T) {
	out, err := run(t, "tokens", "--compact")
	require.NoError(t, err)
	var got design.Tokens
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, design.Default(), got)
}

func TestRecommendFromTraits(t *testing.T) {
	out, err := run(t, "recommend", "--skin-type", "2", "--undertone", "cool", "--face-shape", "round", "--hair", "bald")
	require.NoError(t, err)
	var got recommendations.Result
	require.NoError(t, json.Unmarshal(out, &got))
	want := recommendations.Generate(recommendations.Input{
		FitzpatrickType: 2,
		Undertone:       face.UndertoneCool,
		FaceShape:       "round",
		HairCoverage:    face.HairBald,
		Gender:          "male",
	})
	assert.Equal(t, want.ColorAnalysis.Season, got.ColorAnalysis.Season)
	assert.NotNil(t, got.AlternativeStyling)
}

func TestRecommendRejectsMissingTraits(t *testing.T) {
	_, err := run(t, "recommend", "--undertone", "cool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid traits")

	_, err = run(t, "recommend", "--skin-type", "9", "--undertone", "cool", "--face-shape", "oval")
	assert.Error(t, err)
}

func TestRecommendFromImage(t *testing.T) {
	path := writePNG(t, color.White)
	out, err := run(t, "recommend", "--image", path, "--analyzer", "fixed")
	require.NoError(t, err)
	var got recommendations.Result
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, face.SeasonAutumn, got.ColorAnalysis.Season)
}

func TestAnalyzeCommand(t *testing.T) {
	path := writePNG(t, color.Gray{Y: 128})

	out, err := run(t, "analyze", path, "--analyzer", "fixed")
	require.NoError(t, err)
	var got face.Result
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, face.Fixed(), got)

	_, err = run(t, "analyze", path)
	assert.ErrorIs(t, err, errNoFace)

	_, err = run(t, "analyze", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestOutfitCommand(t *testing.T) {
	out, err := run(t, "outfit", "formal", "--palette", "#1C1C1C,#FFFFFF")
	require.NoError(t, err)
	var got recommendations.Outfit
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, recommendations.OutfitFor("formal", "male", []string{"#1C1C1C", "#FFFFFF"}), got)

	out, err = run(t, "outfit", "casual", "--products")
	require.NoError(t, err)
	var withProducts map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &withProducts))
	assert.Contains(t, withProducts, "products")
}

func TestDiscoverCommand(t *testing.T) {
	_, err := run(t, "discover")
	require.Error(t, err)

	out, err := run(t, "discover", "--palette", "#FFFFFF", "--category", "shirts")
	require.NoError(t, err)
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(out, &body))
	assert.Positive(t, body.Count)

	_, err = run(t, "discover", "--hex", "nothex")
	assert.Error(t, err)
}
