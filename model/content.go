// model/content.go
package model

import (
	"encoding/json"
	"time"
)

// Challenge is a static sustainable-farming task definition (seed/admin data).
type Challenge struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	XPReward    int    `json:"xp_reward" gorm:"not null;index"` // 1-1000
	Difficulty  string `json:"difficulty" gorm:"not null;index"`
	Criteria    string `json:"criteria" gorm:"not null"`
	ImageURL    string `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChallengeCompletion joins one farmer and one challenge. The unique index on
// (farmer_id, challenge_id) is the store-side duplicate guard.
type ChallengeCompletion struct {
	ID           string `json:"id" gorm:"primaryKey"`
	ChallengeID  string `json:"challenge_id" gorm:"not null;uniqueIndex:idx_completion_farmer_challenge"`
	FarmerID     string `json:"farmer_id" gorm:"not null;uniqueIndex:idx_completion_farmer_challenge"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Notes        string `json:"notes"`
	Status       string `json:"status" gorm:"default:approved;index"`
	XPAwarded    int    `json:"xp_awarded" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Challenge Challenge `json:"challenge" gorm:"foreignKey:ChallengeID"`
}

// MissionChoice is one selectable option within a mission node.
type MissionChoice struct {
	Text        string  `json:"text"`
	ScoreImpact float64 `json:"score_impact"` // bounded -20..20
	Desc        string  `json:"desc"`
}

// MissionNode is one step of the branching narrative.
type MissionNode struct {
	Text    string          `json:"text"`
	Choices []MissionChoice `json:"choices"`
}

// Mission is a static branching narrative. Nodes are embedded as a JSON
// document column, same shape the client plays through.
type Mission struct {
	ID       string          `json:"id" gorm:"primaryKey"`
	Title    string          `json:"title" gorm:"not null"`
	Nodes    json.RawMessage `json:"nodes" gorm:"type:text"` // JSON array of MissionNode
	XPReward int             `json:"xp_reward" gorm:"not null;index"` // 10-500

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NodeList decodes the embedded node document.
func (m *Mission) NodeList() ([]MissionNode, error) {
	var nodes []MissionNode
	if err := json.Unmarshal(m.Nodes, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (m *Mission) SetNodeList(nodes []MissionNode) error {
	raw, err := json.Marshal(nodes)
	if err != nil {
		return err
	}
	m.Nodes = raw
	return nil
}

// CropScan is one analyzed image. Append-only history per farmer.
type CropScan struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	FarmerID        string          `json:"farmer_id" gorm:"not null;index:idx_scans_farmer_created"`
	ImageURL        string          `json:"image_url" gorm:"not null"`
	ThumbnailURL    string          `json:"thumbnail_url"`
	EcoScore        int             `json:"eco_score" gorm:"not null;index"` // 0-100
	Issues          json.RawMessage `json:"issues" gorm:"type:text"`
	Recommendations json.RawMessage `json:"recommendations" gorm:"type:text"`
	RawAnalysis     json.RawMessage `json:"raw_analysis" gorm:"type:text"`
	Confidence      float64         `json:"confidence" gorm:"default:0.5"` // 0-1
	Source          string          `json:"source" gorm:"not null;index"`  // ai or fallback

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_scans_farmer_created"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *CropScan) IssueList() []string {
	var issues []string
	if err := json.Unmarshal(s.Issues, &issues); err != nil {
		return []string{}
	}
	return issues
}

func (s *CropScan) RecommendationList() []string {
	var recs []string
	if err := json.Unmarshal(s.Recommendations, &recs); err != nil {
		return []string{}
	}
	return recs
}

// MediaAsset tracks one object stored in MinIO.
type MediaAsset struct {
	ID           string `json:"id" gorm:"primaryKey"`
	FileName     string `json:"file_name" gorm:"not null"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type" gorm:"index"` // scan, thumbnail, proof
	MimeType     string `json:"mime_type"`
	FileSize     int64  `json:"file_size"`
	URL          string `json:"url"`
	StoragePath  string `json:"storage_path" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
