package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

func newTestFarmer(xp, ecoScore int, badges []string) model.Farmer {
	farmer := model.Farmer{
		ID:       "farmer-1",
		Name:     "Test Farmer",
		XP:       xp,
		EcoScore: ecoScore,
	}
	farmer.SetBadgeList(badges)
	return farmer
}

func TestApplyChallengeCompletion_AwardsXPAndEcoScore(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())
	farmer := newTestFarmer(120, 60, []string{})
	challenge := model.Challenge{ID: "c1", XPReward: 75}

	updated, newBadges := engine.ApplyChallengeCompletion(farmer, challenge)

	assert.Equal(t, 195, updated.XP)
	assert.Equal(t, 63, updated.EcoScore) // 60 + 75/20
	assert.Empty(t, newBadges)

	// input untouched
	assert.Equal(t, 120, farmer.XP)
	assert.Equal(t, 60, farmer.EcoScore)
}

func TestApplyChallengeCompletion_EcoScoreCappedAt100(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())
	farmer := newTestFarmer(0, 98, []string{})
	challenge := model.Challenge{ID: "c1", XPReward: 100}

	updated, _ := engine.ApplyChallengeCompletion(farmer, challenge)

	assert.Equal(t, 100, updated.EcoScore)
}

func TestApplyChallengeCompletion_LevelBadgeUnlock(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())

	// 450 XP = level 5 after a 50 XP challenge
	farmer := newTestFarmer(450, 50, []string{})
	challenge := model.Challenge{ID: "c1", XPReward: 50}

	updated, newBadges := engine.ApplyChallengeCompletion(farmer, challenge)

	assert.Equal(t, 500, updated.XP)
	assert.Equal(t, 6, updated.Level())
	assert.Equal(t, []string{shared.BadgeEcoWarrior}, newBadges)
	assert.True(t, updated.HasBadge(shared.BadgeEcoWarrior))
}

func TestApplyChallengeCompletion_MultipleThresholdsInOneJump(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())

	// a big reward crossing both the level-5 and level-10 thresholds at once
	farmer := newTestFarmer(450, 50, []string{})
	challenge := model.Challenge{ID: "c1", XPReward: 600}

	_, newBadges := engine.ApplyChallengeCompletion(farmer, challenge)

	assert.ElementsMatch(t, []string{shared.BadgeEcoWarrior, shared.BadgeSustainabilityChampion}, newBadges)
}

func TestApplyChallengeCompletion_NoDuplicateBadges(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())

	farmer := newTestFarmer(450, 50, []string{shared.BadgeEcoWarrior})
	challenge := model.Challenge{ID: "c1", XPReward: 50}

	updated, newBadges := engine.ApplyChallengeCompletion(farmer, challenge)

	assert.Empty(t, newBadges)
	assert.Equal(t, []string{shared.BadgeEcoWarrior}, updated.BadgeList())
}

func TestApplyChallengeCompletion_NoLevelUpNoBadgeCheck(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())

	// already level 6, small reward keeps the level unchanged
	farmer := newTestFarmer(600, 50, []string{})
	challenge := model.Challenge{ID: "c1", XPReward: 20}

	_, newBadges := engine.ApplyChallengeCompletion(farmer, challenge)

	assert.Empty(t, newBadges)
}

func TestApplyMissionCompletion_PositiveImpact(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())
	farmer := newTestFarmer(100, 50, []string{})
	mission := model.Mission{ID: "m1", XPReward: 150}

	updated, outcome := engine.ApplyMissionCompletion(farmer, mission, 12.0, []string{
		"Slower initial growth but healthier soil",
	})

	assert.Equal(t, 250, updated.XP)
	assert.Equal(t, 62, updated.EcoScore)
	assert.Equal(t, 150, outcome.XPGained)
	assert.Equal(t, 12, outcome.EcoScoreChange)
	assert.Equal(t, shared.OutcomeGood, outcome.OutcomeType)
	assert.Equal(t, []string{shared.BadgeWiseFarmer}, outcome.NewBadges)
}

func TestApplyMissionCompletion_NegativeImpactClampsAtZero(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())
	farmer := newTestFarmer(100, 5, []string{})
	mission := model.Mission{ID: "m1", XPReward: 150}

	updated, outcome := engine.ApplyMissionCompletion(farmer, mission, -12.0, nil)

	assert.Equal(t, 0, updated.EcoScore)
	assert.Equal(t, -12, outcome.EcoScoreChange)
	assert.Equal(t, shared.OutcomePoor, outcome.OutcomeType)
	assert.Empty(t, outcome.NewBadges)
	// XP is never reduced by a poor playthrough
	assert.Equal(t, 250, updated.XP)
}

func TestApplyMissionCompletion_ExcellentUnlocksBothScoreBadges(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())
	farmer := newTestFarmer(100, 50, []string{})
	mission := model.Mission{ID: "m1", XPReward: 200}

	_, outcome := engine.ApplyMissionCompletion(farmer, mission, 18.0, nil)

	assert.Equal(t, shared.OutcomeExcellent, outcome.OutcomeType)
	assert.ElementsMatch(t, []string{shared.BadgeEcoChampion, shared.BadgeWiseFarmer}, outcome.NewBadges)
}

func TestApplyMissionCompletion_WaterBadgeFromChoiceDescription(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())
	farmer := newTestFarmer(100, 50, []string{})
	mission := model.Mission{ID: "m1", XPReward: 200}

	_, outcome := engine.ApplyMissionCompletion(farmer, mission, 5.0, []string{
		"Highly efficient water use with minimal waste",
	})

	assert.Contains(t, outcome.NewBadges, shared.BadgeWaterSaver)
}

func TestApplyMissionCompletion_WaterBadgeNotReawarded(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())
	farmer := newTestFarmer(100, 50, []string{shared.BadgeWaterSaver})
	mission := model.Mission{ID: "m1", XPReward: 200}

	updated, outcome := engine.ApplyMissionCompletion(farmer, mission, 5.0, []string{
		"Install drip irrigation system",
	})

	assert.NotContains(t, outcome.NewBadges, shared.BadgeWaterSaver)
	assert.Equal(t, []string{shared.BadgeWaterSaver}, updated.BadgeList())
}

func TestApplyMissionCompletion_RoundsScoreImpact(t *testing.T) {
	engine := NewProgressionEngine(DefaultProgressionRules())
	farmer := newTestFarmer(100, 50, []string{})
	mission := model.Mission{ID: "m1", XPReward: 100}

	_, outcome := engine.ApplyMissionCompletion(farmer, mission, 7.5, nil)

	require.Equal(t, 8, outcome.EcoScoreChange)
	assert.Equal(t, shared.OutcomeOkay, outcome.OutcomeType) // 7.5 < 8 boundary uses the raw float
}

func TestClassifyOutcome_Boundaries(t *testing.T) {
	cases := []struct {
		impact   float64
		expected string
	}{
		{20, shared.OutcomeExcellent},
		{15, shared.OutcomeExcellent},
		{14.9, shared.OutcomeGood},
		{8, shared.OutcomeGood},
		{7.9, shared.OutcomeOkay},
		{0, shared.OutcomeOkay},
		{-0.1, shared.OutcomePoor},
		{-20, shared.OutcomePoor},
	}

	for _, tc := range cases {
		outcomeType, message := classifyOutcome(tc.impact)
		assert.Equalf(t, tc.expected, outcomeType, "impact %v", tc.impact)
		assert.NotEmpty(t, message)
	}
}
