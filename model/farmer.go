package model

import (
	"encoding/json"
	"time"
)

// Farmer is the player profile. Level is derived from XP and never stored.
type Farmer struct {
	ID       string          `json:"id" gorm:"primaryKey"`
	Name     string          `json:"name" gorm:"not null"`
	Village  string          `json:"village" gorm:"not null;index:idx_farmers_region_village"`
	Region   string          `json:"region" gorm:"not null;index:idx_farmers_region_village"`
	XP       int             `json:"xp" gorm:"default:0;index"`
	EcoScore int             `json:"eco_score" gorm:"default:50;index"`
	Badges   json.RawMessage `json:"badges" gorm:"type:text"` // JSON array of badge ids

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Level derives the farmer tier from cumulative XP: floor(xp/100)+1.
func (f *Farmer) Level() int {
	return f.XP/100 + 1
}

// BadgeList decodes the badge column; a malformed column reads as empty.
func (f *Farmer) BadgeList() []string {
	var badges []string
	if err := json.Unmarshal(f.Badges, &badges); err != nil {
		return []string{}
	}
	return badges
}

func (f *Farmer) SetBadgeList(badges []string) {
	if badges == nil {
		badges = []string{}
	}
	raw, err := json.Marshal(badges)
	if err != nil {
		return
	}
	f.Badges = raw
}

// HasBadge reports whether the badge id is already held.
func (f *Farmer) HasBadge(id string) bool {
	for _, b := range f.BadgeList() {
		if b == id {
			return true
		}
	}
	return false
}
