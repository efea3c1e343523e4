package services

import (
	"math"
	"strings"

	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

// LevelBadgeRule awards a badge once the derived level reaches MinLevel.
type LevelBadgeRule struct {
	ID       string
	MinLevel int
}

// ScoreBadgeRule awards a badge once a mission's total score impact reaches
// MinScore.
type ScoreBadgeRule struct {
	ID       string
	MinScore float64
}

// ProgressionRules is the static configuration driving badge unlocks. It is
// injected at construction so tests can run with alternate thresholds.
type ProgressionRules struct {
	LevelBadges   []LevelBadgeRule
	MissionBadges []ScoreBadgeRule

	// WaterBadge is granted when any chosen option's description mentions
	// one of WaterKeywords.
	WaterBadge    string
	WaterKeywords []string
}

func DefaultProgressionRules() ProgressionRules {
	return ProgressionRules{
		LevelBadges: []LevelBadgeRule{
			{ID: shared.BadgeEcoWarrior, MinLevel: 5},
			{ID: shared.BadgeSustainabilityChampion, MinLevel: 10},
			{ID: shared.BadgeGreenMaster, MinLevel: 20},
		},
		MissionBadges: []ScoreBadgeRule{
			{ID: shared.BadgeEcoChampion, MinScore: 15},
			{ID: shared.BadgeWiseFarmer, MinScore: 10},
		},
		WaterBadge:    shared.BadgeWaterSaver,
		WaterKeywords: []string{"water", "drip"},
	}
}

// MissionOutcome is the engine's verdict on a completed mission, consumed by
// the API layer; only the farmer state is persisted.
type MissionOutcome struct {
	XPGained       int
	EcoScoreChange int
	NewBadges      []string
	OutcomeType    string
	OutcomeMessage string
}

// ProgressionEngine applies completion events to a farmer's state. It is pure:
// it mutates nothing it is given and returns an updated copy.
type ProgressionEngine struct {
	rules ProgressionRules
}

func NewProgressionEngine(rules ProgressionRules) *ProgressionEngine {
	return &ProgressionEngine{rules: rules}
}

// ApplyChallengeCompletion awards the challenge XP, nudges the eco score up
// (capped at 100) and unlocks any level badges the new level qualifies for.
// The caller is responsible for the duplicate-completion guard; the engine
// assumes a consistent pre-state.
func (e *ProgressionEngine) ApplyChallengeCompletion(farmer model.Farmer, challenge model.Challenge) (model.Farmer, []string) {
	previousLevel := farmer.XP / 100

	farmer.XP += challenge.XPReward
	farmer.EcoScore = clampScore(farmer.EcoScore + challenge.XPReward/20)

	currentLevel := farmer.XP / 100

	newBadges := []string{}
	if currentLevel > previousLevel {
		badges := farmer.BadgeList()
		for _, rule := range e.rules.LevelBadges {
			if currentLevel >= rule.MinLevel && !contains(badges, rule.ID) {
				badges = append(badges, rule.ID)
				newBadges = append(newBadges, rule.ID)
			}
		}
		farmer.SetBadgeList(badges)
	}

	return farmer, newBadges
}

// ApplyMissionCompletion awards the flat mission XP and applies the signed,
// clamped eco-score change. scoreImpact must be the server-recomputed value,
// never the client-submitted one.
func (e *ProgressionEngine) ApplyMissionCompletion(farmer model.Farmer, mission model.Mission, scoreImpact float64, choiceDescriptions []string) (model.Farmer, MissionOutcome) {
	farmer.XP += mission.XPReward

	ecoScoreChange := int(math.Round(scoreImpact))
	farmer.EcoScore = clampScore(farmer.EcoScore + ecoScoreChange)

	badges := farmer.BadgeList()
	newBadges := []string{}

	for _, rule := range e.rules.MissionBadges {
		if scoreImpact >= rule.MinScore && !contains(badges, rule.ID) {
			badges = append(badges, rule.ID)
			newBadges = append(newBadges, rule.ID)
		}
	}

	if e.rules.WaterBadge != "" && !contains(badges, e.rules.WaterBadge) {
		for _, desc := range choiceDescriptions {
			if e.matchesWaterKeyword(desc) {
				badges = append(badges, e.rules.WaterBadge)
				newBadges = append(newBadges, e.rules.WaterBadge)
				break
			}
		}
	}

	farmer.SetBadgeList(badges)

	outcomeType, outcomeMessage := classifyOutcome(scoreImpact)

	return farmer, MissionOutcome{
		XPGained:       mission.XPReward,
		EcoScoreChange: ecoScoreChange,
		NewBadges:      newBadges,
		OutcomeType:    outcomeType,
		OutcomeMessage: outcomeMessage,
	}
}

func (e *ProgressionEngine) matchesWaterKeyword(desc string) bool {
	lower := strings.ToLower(desc)
	for _, kw := range e.rules.WaterKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func classifyOutcome(scoreImpact float64) (string, string) {
	switch {
	case scoreImpact >= 15:
		return shared.OutcomeExcellent, "Excellent choices! You demonstrated outstanding sustainable farming practices."
	case scoreImpact >= 8:
		return shared.OutcomeGood, "Good job! Your choices show strong environmental awareness."
	case scoreImpact >= 0:
		return shared.OutcomeOkay, "Not bad, but there's room for improvement in sustainable practices."
	default:
		return shared.OutcomePoor, "Your choices could be more environmentally friendly. Consider sustainable alternatives."
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
