package dto

import "time"

type FarmerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Village   string    `json:"village"`
	Region    string    `json:"region"`
	XP        int       `json:"xp"`
	EcoScore  int       `json:"eco_score"`
	Level     int       `json:"level"`
	Badges    []string  `json:"badges"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateFarmerRequest struct {
	Name    string `json:"name" validate:"omitempty,max=100"`
	Village string `json:"village" validate:"omitempty,max=100"`
	Region  string `json:"region" validate:"omitempty,max=100"`
}

type LeaderboardQuery struct {
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	Region  string `query:"region" validate:"omitempty,max=100"`
	Village string `query:"village" validate:"omitempty,max=100"`
}

type LeaderboardEntry struct {
	Farmer   FarmerResponse `json:"farmer"`
	Rank     int            `json:"rank"`
	XP       int            `json:"xp"`
	EcoScore int            `json:"eco_score"`
	Badges   []string       `json:"badges"`
}

type LeaderboardResponse struct {
	Entries    []LeaderboardEntry `json:"entries"`
	Pagination Pagination         `json:"pagination"`
}

type ProgressMetrics struct {
	CurrentLevel         int `json:"current_level"`
	XPForNextLevel       int `json:"xp_for_next_level"`
	ProgressToNextLevel  int `json:"progress_to_next_level"` // percent
	TotalScans           int `json:"total_scans"`
	TotalCompletions     int `json:"total_completions"`
	AvgEcoScore          int `json:"avg_eco_score"`
	OverallRank          int `json:"overall_rank"`
	WaterUsageEfficiency int `json:"water_usage_efficiency"`
	SoilHealthScore      int `json:"soil_health_score"`
}

type FarmerProgressResponse struct {
	Farmer        FarmerResponse                `json:"farmer"`
	Metrics       ProgressMetrics               `json:"metrics"`
	RecentScans   []CropScanResponse            `json:"recent_scans"`
	RecentResults []ChallengeCompletionResponse `json:"recent_completions"`
	Badges        []string                      `json:"badges"`
	BadgeCatalog  map[string]string             `json:"badge_descriptions"`
}
