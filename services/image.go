package services

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"
	"math"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/shared"
)

type ImageService struct {
	context.DefaultService
}

const IMAGE_SVC = "image_svc"

const (
	maxImageWidth  = 800
	maxImageHeight = 600
	thumbWidth     = 200
	thumbHeight    = 150

	processedJpegQuality = 85
	thumbJpegQuality     = 70
)

// Id returns Service ID
func (svc ImageService) Id() string {
	return IMAGE_SVC
}

// Configure the service
func (svc *ImageService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

// Start the service
func (svc *ImageService) Start() error {
	return nil
}

// ProcessImage normalizes an uploaded photo for storage. The image is scaled
// to fit inside 800x600 preserving aspect ratio, never enlarged, and
// re-encoded as JPEG.
func (svc *ImageService) ProcessImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Unsupported or corrupt image")
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := 1.0
	if w > maxImageWidth {
		scale = float64(maxImageWidth) / float64(w)
	}
	if sh := float64(maxImageHeight) / float64(h); h > maxImageHeight && sh < scale {
		scale = sh
	}

	if scale < 1.0 {
		img = scaleImage(img, int(float64(w)*scale), int(float64(h)*scale))
	}

	return encodeJpeg(img, processedJpegQuality)
}

// CreateThumbnail produces a 200x150 cover-cropped JPEG preview.
func (svc *ImageService) CreateThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Unsupported or corrupt image")
	}

	return encodeJpeg(coverCrop(img, thumbWidth, thumbHeight), thumbJpegQuality)
}

// AnalyzeImageFallback scores a crop photo locally from pixel color ratios.
// It is deterministic and used whenever the AI analyzer is unavailable or
// fails; a corrupt image yields a neutral low-confidence result rather than
// an error so the scan flow still completes.
func (svc *ImageService) AnalyzeImageFallback(data []byte) dto.CropAnalysisResult {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.WithError(err).Warn("fallback analysis on undecodable image")
		return dto.CropAnalysisResult{
			EcoScore:        50,
			Issues:          []string{"analysis-error"},
			Recommendations: []string{},
			Confidence:      0.1,
			Source:          shared.AnalysisSourceFallback,
		}
	}

	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return dto.CropAnalysisResult{
			EcoScore:        50,
			Issues:          []string{"analysis-error"},
			Recommendations: []string{},
			Confidence:      0.1,
			Source:          shared.AnalysisSourceFallback,
		}
	}

	var greenPx, yellowPx, brownPx int
	var brightnessSum float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r := int(cr >> 8)
			g := int(cg >> 8)
			b := int(cb >> 8)

			brightnessSum += float64(r+g+b) / 3

			switch {
			case g > r && g > b && g > 80:
				greenPx++
			case r > 150 && g > 150 && b < 100:
				yellowPx++
			case r > 100 && g > 60 && b < 80 && r > g && r > b:
				brownPx++
			}
		}
	}

	greenRatio := float64(greenPx) / float64(total)
	yellowRatio := float64(yellowPx) / float64(total)
	brownRatio := float64(brownPx) / float64(total)
	avgBrightness := brightnessSum / float64(total)

	greenBonus := greenRatio * 100
	if greenBonus > 40 {
		greenBonus = 40
	}
	score := 50 + greenBonus - yellowRatio*60 - brownRatio*80
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	issues := []string{}
	recommendations := []string{}

	if yellowRatio > 0.15 {
		issues = append(issues, "nitrogen-deficiency")
		recommendations = append(recommendations, "Apply compost or vermicompost to restore soil nitrogen")
	}
	if brownRatio > 0.2 {
		issues = append(issues, "plant-stress")
		recommendations = append(recommendations, "Check irrigation schedule and inspect for pest damage")
	}
	if greenRatio < 0.3 {
		issues = append(issues, "low-vegetation-health")
		recommendations = append(recommendations, "Consider mulching and organic soil amendments")
	}
	if avgBrightness < 80 {
		issues = append(issues, "poor-lighting-conditions")
		recommendations = append(recommendations, "Retake the photo in daylight for a more reliable reading")
	}
	if score < 70 {
		recommendations = append(recommendations,
			"Rotate crops each season to keep the soil balanced",
			"Add organic matter such as green manure or crop residue")
	}

	return dto.CropAnalysisResult{
		EcoScore:        int(math.Round(score)),
		Issues:          issues,
		Recommendations: recommendations,
		Confidence:      0.6,
		Source:          shared.AnalysisSourceFallback,
	}
}

// Shutdown the service
func (svc *ImageService) Shutdown() {
}

func scaleImage(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// coverCrop scales the source so it fully covers w x h, then crops the
// overflow around the center.
func coverCrop(src image.Image, w, h int) image.Image {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()

	scale := float64(w) / float64(sw)
	if s := float64(h) / float64(sh); s > scale {
		scale = s
	}

	scaledW := int(float64(sw) * scale)
	scaledH := int(float64(sh) * scale)
	scaled := scaleImage(src, scaledW, scaledH)

	offX := (scaledW - w) / 2
	offY := (scaledH - h) / 2

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), scaled, image.Pt(offX, offY), draw.Src)
	return dst
}

func encodeJpeg(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, shared.NewInternalError(err, "Failed to encode image")
	}
	return buf.Bytes(), nil
}
