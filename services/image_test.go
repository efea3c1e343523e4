package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agri-quest/agriquest_api/shared"
)

// solidImage encodes a single-color PNG of the given size.
func solidImage(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestProcessImage_ScalesDownLargeImage(t *testing.T) {
	svc := &ImageService{}
	data := solidImage(t, 1600, 1200, color.RGBA{50, 180, 60, 255})

	out, err := svc.ProcessImage(data)
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestProcessImage_PreservesAspectRatio(t *testing.T) {
	svc := &ImageService{}

	// width-bound: 2000x500 scales by 0.4 to 800x200
	data := solidImage(t, 2000, 500, color.RGBA{50, 180, 60, 255})
	out, err := svc.ProcessImage(data)
	require.NoError(t, err)
	w, h := decodeDims(t, out)
	assert.Equal(t, 800, w)
	assert.Equal(t, 200, h)

	// height-bound: 400x1200 scales by 0.5 to 200x600
	data = solidImage(t, 400, 1200, color.RGBA{50, 180, 60, 255})
	out, err = svc.ProcessImage(data)
	require.NoError(t, err)
	w, h = decodeDims(t, out)
	assert.Equal(t, 200, w)
	assert.Equal(t, 600, h)
}

func TestProcessImage_NeverEnlarges(t *testing.T) {
	svc := &ImageService{}
	data := solidImage(t, 320, 240, color.RGBA{50, 180, 60, 255})

	out, err := svc.ProcessImage(data)
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestProcessImage_RejectsCorruptData(t *testing.T) {
	svc := &ImageService{}

	_, err := svc.ProcessImage([]byte("not an image"))
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestCreateThumbnail_FixedDimensions(t *testing.T) {
	svc := &ImageService{}

	for _, dims := range [][2]int{{1600, 1200}, {500, 1000}, {100, 100}} {
		data := solidImage(t, dims[0], dims[1], color.RGBA{50, 180, 60, 255})
		out, err := svc.CreateThumbnail(data)
		require.NoError(t, err)

		w, h := decodeDims(t, out)
		assert.Equal(t, 200, w)
		assert.Equal(t, 150, h)
	}
}

func TestAnalyzeImageFallback_HealthyGreenCrop(t *testing.T) {
	svc := &ImageService{}
	data := solidImage(t, 64, 64, color.RGBA{40, 180, 50, 255})

	result := svc.AnalyzeImageFallback(data)

	// full green coverage: 50 + capped 40 bonus
	assert.Equal(t, 90, result.EcoScore)
	assert.Equal(t, 0.6, result.Confidence)
	assert.Equal(t, shared.AnalysisSourceFallback, result.Source)
	assert.NotContains(t, result.Issues, "low-vegetation-health")
	assert.NotContains(t, result.Issues, "nitrogen-deficiency")
	assert.Empty(t, result.Recommendations)
}

func TestAnalyzeImageFallback_YellowingFlagsNitrogen(t *testing.T) {
	svc := &ImageService{}
	data := solidImage(t, 64, 64, color.RGBA{200, 200, 40, 255})

	result := svc.AnalyzeImageFallback(data)

	assert.Contains(t, result.Issues, "nitrogen-deficiency")
	assert.Contains(t, result.Issues, "low-vegetation-health")
	// 50 - 1.0*60 floors at 0 before the vegetation check
	assert.Equal(t, 0, result.EcoScore)

	// low scores also get the generic soil advice
	assert.Contains(t, result.Recommendations, "Rotate crops each season to keep the soil balanced")
	assert.Contains(t, result.Recommendations, "Add organic matter such as green manure or crop residue")
}

func TestAnalyzeImageFallback_BrownFlagsStress(t *testing.T) {
	svc := &ImageService{}
	data := solidImage(t, 64, 64, color.RGBA{140, 90, 40, 255})

	result := svc.AnalyzeImageFallback(data)

	assert.Contains(t, result.Issues, "plant-stress")
	assert.Equal(t, 0, result.EcoScore) // 50 - 1.0*80 clamped
}

func TestAnalyzeImageFallback_DarkImageFlagsLighting(t *testing.T) {
	svc := &ImageService{}
	data := solidImage(t, 64, 64, color.RGBA{20, 20, 20, 255})

	result := svc.AnalyzeImageFallback(data)

	assert.Contains(t, result.Issues, "poor-lighting-conditions")
	assert.Contains(t, result.Issues, "low-vegetation-health")
}

func TestAnalyzeImageFallback_RoundsFractionalScore(t *testing.T) {
	svc := &ImageService{}

	// 3 of 8 pixels green: greenRatio 0.375 gives 50 + 37.5 = 87.5,
	// which rounds up rather than truncating to 87
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for i := 0; i < 8; i++ {
		c := color.RGBA{120, 120, 120, 255}
		if i < 3 {
			c = color.RGBA{40, 180, 50, 255}
		}
		img.Set(i%4, i/4, c)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	result := svc.AnalyzeImageFallback(buf.Bytes())

	assert.Equal(t, 88, result.EcoScore)
}

func TestAnalyzeImageFallback_Deterministic(t *testing.T) {
	svc := &ImageService{}
	data := solidImage(t, 64, 64, color.RGBA{40, 180, 50, 255})

	first := svc.AnalyzeImageFallback(data)
	second := svc.AnalyzeImageFallback(data)

	assert.Equal(t, first, second)
}

func TestAnalyzeImageFallback_CorruptImageNeutralResult(t *testing.T) {
	svc := &ImageService{}

	result := svc.AnalyzeImageFallback([]byte{0xde, 0xad, 0xbe, 0xef})

	assert.Equal(t, 50, result.EcoScore)
	assert.Equal(t, []string{"analysis-error"}, result.Issues)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 0.1, result.Confidence)
	assert.Equal(t, shared.AnalysisSourceFallback, result.Source)
}
