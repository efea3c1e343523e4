package dto

import "time"

// Shared pagination shapes

type PaginationQuery struct {
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Sort  string `query:"sort" validate:"omitempty,max=50"`
	Order string `query:"order" validate:"omitempty,oneof=asc desc"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Challenge DTOs

type ChallengeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	XPReward    int       `json:"xp_reward"`
	Difficulty  string    `json:"difficulty"`
	Criteria    string    `json:"criteria"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChallengeListResponse struct {
	Challenges []ChallengeResponse `json:"challenges"`
	Pagination Pagination          `json:"pagination"`
}

type CreateChallengeRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	XPReward    int    `json:"xp_reward" validate:"required,min=1,max=1000"`
	Difficulty  string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Criteria    string `json:"criteria" validate:"required"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type CompleteChallengeRequest struct {
	FarmerID string `json:"farmer_id" form:"farmer_id" validate:"required"`
	Notes    string `json:"notes" form:"notes" validate:"omitempty,max=500"`
}

type ChallengeCompletionResponse struct {
	ID           string    `json:"id"`
	ChallengeID  string    `json:"challenge_id"`
	FarmerID     string    `json:"farmer_id"`
	ImageURL     string    `json:"image_url,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	XPAwarded    int       `json:"xp_awarded"`
	CreatedAt    time.Time `json:"created_at"`

	Challenge *ChallengeResponse `json:"challenge,omitempty"`
}

type CompletionListResponse struct {
	Completions []ChallengeCompletionResponse `json:"completions"`
	Pagination  Pagination                    `json:"pagination"`
}

type FarmerSummary struct {
	XP       int      `json:"xp"`
	EcoScore int      `json:"eco_score"`
	Badges   []string `json:"badges"`
	Level    int      `json:"level"`
}

type CompleteChallengeResponse struct {
	Completion ChallengeCompletionResponse `json:"completion"`
	Farmer     FarmerSummary               `json:"farmer"`
	XPGained   int                         `json:"xp_gained"`
	NewBadges  []string                    `json:"new_badges"`
}

// Mission DTOs

type MissionChoiceResponse struct {
	Text        string  `json:"text"`
	ScoreImpact float64 `json:"score_impact"`
	Desc        string  `json:"desc"`
}

type MissionNodeResponse struct {
	Text    string                  `json:"text"`
	Choices []MissionChoiceResponse `json:"choices"`
}

type MissionResponse struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Nodes     []MissionNodeResponse `json:"nodes"`
	XPReward  int                   `json:"xp_reward"`
	CreatedAt time.Time             `json:"created_at"`
}

type MissionListResponse struct {
	Missions   []MissionResponse `json:"missions"`
	Pagination Pagination        `json:"pagination"`
}

type MissionChoiceRequest struct {
	Text        string  `json:"text" validate:"required"`
	ScoreImpact float64 `json:"score_impact" validate:"min=-20,max=20"`
	Desc        string  `json:"desc" validate:"omitempty,max=500"`
}

type MissionNodeRequest struct {
	Text    string                 `json:"text" validate:"required"`
	Choices []MissionChoiceRequest `json:"choices" validate:"required,min=2,dive"`
}

type CreateMissionRequest struct {
	Title    string               `json:"title" validate:"required,max=200"`
	XPReward int                  `json:"xp_reward" validate:"required,min=10,max=500"`
	Nodes    []MissionNodeRequest `json:"nodes" validate:"required,min=1,dive"`
}

type CompleteMissionRequest struct {
	FarmerID         string  `json:"farmer_id" validate:"required"`
	Choices          []int   `json:"choices" validate:"required"`
	TotalScoreImpact float64 `json:"total_score_impact"`
}

type ChoiceSummary struct {
	NodeIndex   int     `json:"node_index"`
	ChoiceIndex int     `json:"choice_index"`
	ChoiceText  string  `json:"choice_text"`
	ScoreImpact float64 `json:"score_impact"`
	Description string  `json:"description"`
}

type MissionResult struct {
	XPGained         int             `json:"xp_gained"`
	EcoScoreChange   int             `json:"eco_score_change"`
	NewBadges        []string        `json:"new_badges"`
	OutcomeMessage   string          `json:"outcome_message"`
	OutcomeType      string          `json:"outcome_type"`
	TotalScoreImpact float64         `json:"total_score_impact"`
	ChoicesSummary   []ChoiceSummary `json:"choices_summary"`
}

type CompleteMissionResponse struct {
	Farmer        FarmerSummary `json:"farmer"`
	MissionResult MissionResult `json:"mission_result"`
}

type MissionStatsResponse struct {
	TotalMissions int64          `json:"total_missions"`
	AvgXPReward   int            `json:"avg_xp_reward"`
	Difficulty    map[string]int `json:"difficulty"`
}

// Crop scan DTOs

// CropAnalysisResult is the analyzer output, independent of persistence.
type CropAnalysisResult struct {
	EcoScore        int                    `json:"eco_score"`
	Issues          []string               `json:"issues"`
	Recommendations []string               `json:"recommendations"`
	Confidence      float64                `json:"confidence"`
	Source          string                 `json:"source"`
	RawAnalysis     map[string]interface{} `json:"raw_analysis,omitempty"`
}

type CropAnalysisResponse struct {
	CropAnalysisResult
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	ScanID       string `json:"scan_id,omitempty"`
}

type CropScanResponse struct {
	ID              string    `json:"id"`
	FarmerID        string    `json:"farmer_id"`
	ImageURL        string    `json:"image_url"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	EcoScore        int       `json:"eco_score"`
	Issues          []string  `json:"issues"`
	Recommendations []string  `json:"recommendations"`
	Confidence      float64   `json:"confidence"`
	Source          string    `json:"source"`
	CreatedAt       time.Time `json:"created_at"`
}

type CropScanListResponse struct {
	Scans      []CropScanResponse `json:"scans"`
	Pagination Pagination         `json:"pagination"`
}
