package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agri-quest/agriquest_api/shared"
)

func TestParseJSONResponse_CleanJSON(t *testing.T) {
	svc := &GeminiService{}

	result, ok := svc.parseJSONResponse(`{"ecoScore": 82, "issues": ["nitrogen-deficiency"], "recommendations": ["Apply compost"], "confidence": 0.85}`)

	require.True(t, ok)
	assert.Equal(t, 82, result.EcoScore)
	assert.Equal(t, []string{"nitrogen-deficiency"}, result.Issues)
	assert.Equal(t, []string{"Apply compost"}, result.Recommendations)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, shared.AnalysisSourceAI, result.Source)
	assert.NotNil(t, result.RawAnalysis)
}

func TestParseJSONResponse_MarkdownFenced(t *testing.T) {
	svc := &GeminiService{}

	text := "Here is the analysis:\n```json\n{\"ecoScore\": 64, \"issues\": [], \"recommendations\": [], \"confidence\": 0.9}\n```\nLet me know if you need more detail."

	result, ok := svc.parseJSONResponse(text)

	require.True(t, ok)
	assert.Equal(t, 64, result.EcoScore)
	assert.Empty(t, result.Issues)
}

func TestParseJSONResponse_ClampsScoreAndConfidence(t *testing.T) {
	svc := &GeminiService{}

	result, ok := svc.parseJSONResponse(`{"ecoScore": 150, "confidence": 3.5}`)
	require.True(t, ok)
	assert.Equal(t, 100, result.EcoScore)
	assert.Equal(t, 0.8, result.Confidence)

	result, ok = svc.parseJSONResponse(`{"ecoScore": -10, "confidence": 0}`)
	require.True(t, ok)
	assert.Equal(t, 0, result.EcoScore)
	assert.Equal(t, 0.8, result.Confidence)
}

func TestParseJSONResponse_MissingScoreDefaultsToMidpoint(t *testing.T) {
	svc := &GeminiService{}

	result, ok := svc.parseJSONResponse(`{"issues": ["pest-damage"], "confidence": 0.95}`)

	require.True(t, ok)
	assert.Equal(t, 50, result.EcoScore)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestParseJSONResponse_MissingArraysDefaultEmpty(t *testing.T) {
	svc := &GeminiService{}

	result, ok := svc.parseJSONResponse(`{"ecoScore": 70, "confidence": 0.8}`)

	require.True(t, ok)
	assert.NotNil(t, result.Issues)
	assert.Empty(t, result.Issues)
	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
}

func TestParseJSONResponse_RejectsNonJSON(t *testing.T) {
	svc := &GeminiService{}

	_, ok := svc.parseJSONResponse("The crop looks healthy overall.")
	assert.False(t, ok)
}

func TestParseTextResponse_SalvagesScore(t *testing.T) {
	svc := &GeminiService{}

	result := svc.parseTextResponse("The field looks decent, eco score: 72 out of 100.")

	assert.Equal(t, 72, result.EcoScore)
	assert.Equal(t, 0.7, result.Confidence)
	assert.Equal(t, shared.AnalysisSourceAI, result.Source)
}

func TestParseTextResponse_DefaultScoreWhenAbsent(t *testing.T) {
	svc := &GeminiService{}

	result := svc.parseTextResponse("The field looks generally healthy.")

	assert.Equal(t, 60, result.EcoScore)
}

func TestParseTextResponse_KeywordIssues(t *testing.T) {
	svc := &GeminiService{}

	result := svc.parseTextResponse("Several leaves are yellowing and there are signs of pest activity on dry patches.")

	assert.Contains(t, result.Issues, "nitrogen-deficiency")
	assert.Contains(t, result.Issues, "pest-damage")
	assert.Contains(t, result.Issues, "water-stress")
}

func TestParseTextResponse_DiseaseAndNutrientKeywords(t *testing.T) {
	svc := &GeminiService{}

	result := svc.parseTextResponse("There is fungal growth and nitrogen deficiency with water shortage.")

	assert.Contains(t, result.Issues, "fungal-disease")
	assert.Contains(t, result.Issues, "nitrogen-deficiency")
	assert.Contains(t, result.Issues, "water-stress")
}

func TestParseTextResponse_StableIssueOrder(t *testing.T) {
	svc := &GeminiService{}
	text := "Pest damage, fungal spots, yellowing leaves and dry cracked soil throughout."

	first := svc.parseTextResponse(text)
	second := svc.parseTextResponse(text)

	assert.Equal(t, first.Issues, second.Issues)
	assert.Equal(t, []string{"pest-damage", "fungal-disease", "nitrogen-deficiency", "water-stress"}, first.Issues)
}

func TestParseTextResponse_DeduplicatesIssues(t *testing.T) {
	svc := &GeminiService{}

	// both "chemical" and "fertilizer" map to the same issue
	result := svc.parseTextResponse("Heavy chemical fertilizer residue is visible.")

	count := 0
	for _, issue := range result.Issues {
		if issue == "chemical-overuse" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestParseTextResponse_RecommendationTriggers(t *testing.T) {
	svc := &GeminiService{}

	result := svc.parseTextResponse("Consider compost and better irrigation; organic inputs would help.")

	assert.Contains(t, result.Recommendations, "Apply compost to improve soil health")
	assert.Contains(t, result.Recommendations, "Review irrigation practices for water efficiency")
	assert.Contains(t, result.Recommendations, "Switch to organic inputs where possible")
}

func TestParseTextResponse_DefaultRecommendations(t *testing.T) {
	svc := &GeminiService{}

	result := svc.parseTextResponse("Nothing notable in this image.")

	assert.Len(t, result.Recommendations, 2)
}
