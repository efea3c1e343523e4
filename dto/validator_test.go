package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CompleteMissionRequest(t *testing.T) {
	errs := Validate(CompleteMissionRequest{
		FarmerID:         "farmer-1",
		Choices:          []int{0, 1, 2},
		TotalScoreImpact: 12,
	})
	assert.Nil(t, errs)

	errs = Validate(CompleteMissionRequest{Choices: []int{0}})
	require.Len(t, errs, 1)
	assert.Equal(t, "FarmerID", errs[0].Field)
	assert.Contains(t, errs[0].Message, "required")
}

func TestValidate_CompleteChallengeRequest(t *testing.T) {
	errs := Validate(CompleteChallengeRequest{FarmerID: "farmer-1"})
	assert.Nil(t, errs)

	errs = Validate(CompleteChallengeRequest{
		FarmerID: "farmer-1",
		Notes:    strings.Repeat("x", 501),
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Notes", errs[0].Field)
	assert.Contains(t, errs[0].Message, "at most 500")
}

func TestValidate_LeaderboardQuery(t *testing.T) {
	// zero values pass through omitempty
	assert.Nil(t, Validate(LeaderboardQuery{}))

	errs := Validate(LeaderboardQuery{Limit: 500, Page: 0})
	require.Len(t, errs, 1)
	assert.Equal(t, "Limit", errs[0].Field)
}

func TestValidate_CreateChallengeRequest(t *testing.T) {
	valid := CreateChallengeRequest{
		Title:       "Mulch Your Beds",
		Description: "Cover exposed soil with organic mulch",
		XPReward:    120,
		Difficulty:  "easy",
		Criteria:    "Photo of mulched beds",
	}
	assert.Nil(t, Validate(valid))

	invalid := valid
	invalid.Difficulty = "brutal"
	errs := Validate(invalid)
	require.Len(t, errs, 1)
	assert.Equal(t, "Difficulty", errs[0].Field)
	assert.Contains(t, errs[0].Message, "one of")

	invalid = valid
	invalid.XPReward = 5000
	errs = Validate(invalid)
	require.Len(t, errs, 1)
	assert.Equal(t, "XPReward", errs[0].Field)
}

func TestValidate_CreateMissionRequest(t *testing.T) {
	valid := CreateMissionRequest{
		Title:    "The Cover Crop Question",
		XPReward: 150,
		Nodes: []MissionNodeRequest{
			{
				Text: "Your field is bare after harvest. What do you do?",
				Choices: []MissionChoiceRequest{
					{Text: "Sow a cover crop", ScoreImpact: 12, Desc: "Protects and feeds the soil"},
					{Text: "Leave it bare", ScoreImpact: -6, Desc: "Topsoil erodes over winter"},
				},
			},
		},
	}
	assert.Nil(t, Validate(valid))

	errs := Validate(CreateMissionRequest{Title: "No Nodes", XPReward: 100})
	require.Len(t, errs, 1)
	assert.Equal(t, "Nodes", errs[0].Field)

	// a node with a single choice is not a branching decision
	invalid := valid
	invalid.Nodes = []MissionNodeRequest{
		{
			Text:    "Only one way forward",
			Choices: []MissionChoiceRequest{{Text: "Proceed", ScoreImpact: 1}},
		},
	}
	errs = Validate(invalid)
	require.Len(t, errs, 1)
	assert.Equal(t, "Choices", errs[0].Field)
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	errs := Validate(CompleteMissionRequest{})
	assert.Len(t, errs, 2) // FarmerID and Choices both required
}
