package services

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	appcontext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/shared"
)

// GeminiService talks to the Gemini vision model to score crop photos. When
// no API key is configured the service still starts and every analysis falls
// through to the local pixel heuristic.
type GeminiService struct {
	appcontext.DefaultService

	imageSvc *ImageService

	client  *genai.Client
	model   string
	timeout time.Duration
}

const GEMINI_SVC = "gemini_svc"

const analysisPrompt = `You are an agronomy assistant scoring a photo of a farm crop for sustainable farming health.
Respond with ONLY a JSON object in this exact shape:
{"ecoScore": <0-100 integer>, "issues": ["<kebab-case-issue>", ...], "recommendations": ["<short actionable tip>", ...], "confidence": <0.0-1.0>}
Score higher for dense healthy green vegetation, visible mulching, drip irrigation or intercropping.
Score lower for yellowing leaves, bare or cracked soil, visible pest damage or chemical burn.`

var jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)
var scoreRe = regexp.MustCompile(`(?i)(?:eco[\s_-]?score|score)\D{0,10}(\d{1,3})`)

// Id returns Service ID
func (svc GeminiService) Id() string {
	return GEMINI_SVC
}

// Configure the service
func (svc *GeminiService) Configure(ctx *appcontext.Context) error {
	svc.model = os.Getenv("GEMINI_MODEL")
	if svc.model == "" {
		svc.model = "gemini-2.0-flash"
	}

	svc.timeout = 25 * time.Second
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			svc.timeout = time.Duration(secs) * time.Second
		}
	}

	return svc.DefaultService.Configure(ctx)
}

// Start the service
func (svc *GeminiService) Start() error {
	svc.imageSvc = svc.Service(IMAGE_SVC).(*ImageService)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY not set, crop analysis will use the local fallback only")
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create genai client: %v", err)
	}

	svc.client = client
	log.Infof("Gemini analyzer ready (model: %s)", svc.model)
	return nil
}

// IsAvailable reports whether AI-backed analysis is configured.
func (svc *GeminiService) IsAvailable() bool {
	return svc.client != nil
}

// AnalyzeCropImage scores a crop photo. It tries the Gemini model first,
// salvages a score from free-text replies that fail JSON parsing, and drops
// to the deterministic pixel heuristic when the model is unavailable or
// errors. The caller always gets a usable result.
func (svc *GeminiService) AnalyzeCropImage(imageData []byte) dto.CropAnalysisResult {
	if svc.client == nil {
		return svc.imageSvc.AnalyzeImageFallback(imageData)
	}

	ctx, cancel := context.WithTimeout(context.Background(), svc.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(analysisPrompt),
			genai.NewPartFromBytes(imageData, "image/jpeg"),
		}, genai.RoleUser),
	}

	resp, err := svc.client.Models.GenerateContent(ctx, svc.model, contents, nil)
	if err != nil {
		log.WithError(err).Warn("gemini analysis failed, using local fallback")
		return svc.imageSvc.AnalyzeImageFallback(imageData)
	}

	text := resp.Text()
	if text == "" {
		log.Warn("gemini returned an empty response, using local fallback")
		return svc.imageSvc.AnalyzeImageFallback(imageData)
	}

	if result, ok := svc.parseJSONResponse(text); ok {
		return result
	}

	log.Debug("gemini response was not valid JSON, salvaging from text")
	return svc.parseTextResponse(text)
}

// parseJSONResponse extracts the structured result from a model reply,
// tolerating markdown fences and surrounding prose.
func (svc *GeminiService) parseJSONResponse(text string) (dto.CropAnalysisResult, bool) {
	block := jsonBlockRe.FindString(text)
	if block == "" {
		return dto.CropAnalysisResult{}, false
	}

	var parsed struct {
		EcoScore        float64  `json:"ecoScore"`
		Issues          []string `json:"issues"`
		Recommendations []string `json:"recommendations"`
		Confidence      float64  `json:"confidence"`
	}
	if err := sonic.Unmarshal([]byte(block), &parsed); err != nil {
		return dto.CropAnalysisResult{}, false
	}

	score := int(parsed.EcoScore)
	if score == 0 {
		// a reply that omits the score still needs a usable midpoint
		score = 50
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	confidence := parsed.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = 0.8
	}

	issues := parsed.Issues
	if issues == nil {
		issues = []string{}
	}
	recommendations := parsed.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	raw := map[string]interface{}{}
	_ = sonic.Unmarshal([]byte(block), &raw)

	return dto.CropAnalysisResult{
		EcoScore:        score,
		Issues:          issues,
		Recommendations: recommendations,
		Confidence:      confidence,
		Source:          shared.AnalysisSourceAI,
		RawAnalysis:     raw,
	}, true
}

// parseTextResponse salvages an analysis from a free-text model reply.
func (svc *GeminiService) parseTextResponse(text string) dto.CropAnalysisResult {
	score := 60
	if m := scoreRe.FindStringSubmatch(text); len(m) == 2 {
		if v, err := strconv.Atoi(m[1]); err == nil && v >= 0 && v <= 100 {
			score = v
		}
	}

	lower := strings.ToLower(text)

	// ordered so identical replies salvage identical issue lists
	issues := []string{}
	for _, p := range []struct{ keyword, issue string }{
		{"pest", "pest-damage"},
		{"fungal", "fungal-disease"},
		{"yellow", "nitrogen-deficiency"},
		{"nitrogen", "nitrogen-deficiency"},
		{"disease", "disease-risk"},
		{"water", "water-stress"},
		{"dry", "water-stress"},
		{"wilt", "water-stress"},
		{"bare soil", "soil-exposure"},
		{"chemical", "chemical-overuse"},
		{"fertilizer", "chemical-overuse"},
	} {
		if strings.Contains(lower, p.keyword) && !containsStr(issues, p.issue) {
			issues = append(issues, p.issue)
		}
	}

	recommendations := []string{}
	if strings.Contains(lower, "compost") {
		recommendations = append(recommendations, "Apply compost to improve soil health")
	}
	if strings.Contains(lower, "irrigation") || strings.Contains(lower, "water") {
		recommendations = append(recommendations, "Review irrigation practices for water efficiency")
	}
	if strings.Contains(lower, "organic") {
		recommendations = append(recommendations, "Switch to organic inputs where possible")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Maintain regular crop monitoring",
			"Consider mulching to retain soil moisture",
		)
	}

	return dto.CropAnalysisResult{
		EcoScore:        score,
		Issues:          issues,
		Recommendations: recommendations,
		Confidence:      0.7,
		Source:          shared.AnalysisSourceAI,
		RawAnalysis:     map[string]interface{}{"text": text},
	}
}

// Shutdown the service
func (svc *GeminiService) Shutdown() {
}

func containsStr(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}
