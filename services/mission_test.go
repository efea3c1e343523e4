package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

func testMissionNodes() []model.MissionNode {
	return []model.MissionNode{
		{
			Text: "Your crops are showing slow growth. What do you choose?",
			Choices: []model.MissionChoice{
				{Text: "Use chemical fertilizers", ScoreImpact: -5, Desc: "Short-term gains"},
				{Text: "Apply organic compost", ScoreImpact: 10, Desc: "Healthier soil"},
				{Text: "Mix both", ScoreImpact: 2, Desc: "Compromise approach"},
			},
		},
		{
			Text: "Your neighbor is struggling. How do you help?",
			Choices: []model.MissionChoice{
				{Text: "Share composting knowledge", ScoreImpact: 8, Desc: "Spread sustainable practices"},
				{Text: "Recommend the chemical supplier", ScoreImpact: -3, Desc: "Perpetuate bad habits"},
			},
		},
	}
}

func TestValidatePlaythrough_ValidRun(t *testing.T) {
	nodes := testMissionNodes()

	calculated, summary, err := ValidatePlaythrough(nodes, []int{1, 0}, 18)

	require.NoError(t, err)
	assert.Equal(t, 18.0, calculated)
	require.Len(t, summary, 2)

	assert.Equal(t, 0, summary[0].NodeIndex)
	assert.Equal(t, 1, summary[0].ChoiceIndex)
	assert.Equal(t, "Apply organic compost", summary[0].ChoiceText)
	assert.Equal(t, 10.0, summary[0].ScoreImpact)
	assert.Equal(t, "Healthier soil", summary[0].Description)

	assert.Equal(t, 1, summary[1].NodeIndex)
	assert.Equal(t, "Share composting knowledge", summary[1].ChoiceText)
}

func TestValidatePlaythrough_NegativeTotal(t *testing.T) {
	nodes := testMissionNodes()

	calculated, _, err := ValidatePlaythrough(nodes, []int{0, 1}, -8)

	require.NoError(t, err)
	assert.Equal(t, -8.0, calculated)
}

func TestValidatePlaythrough_WrongChoiceCount(t *testing.T) {
	nodes := testMissionNodes()

	_, _, err := ValidatePlaythrough(nodes, []int{1}, 10)

	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestValidatePlaythrough_ChoiceIndexOutOfRange(t *testing.T) {
	nodes := testMissionNodes()

	// node 1 has only two choices
	_, _, err := ValidatePlaythrough(nodes, []int{0, 2}, 0)
	require.Error(t, err)

	_, _, err = ValidatePlaythrough(nodes, []int{-1, 0}, 0)
	require.Error(t, err)
}

func TestValidatePlaythrough_ClaimedTotalMismatch(t *testing.T) {
	nodes := testMissionNodes()

	// actual total for these choices is 18 but the client claims 25
	_, _, err := ValidatePlaythrough(nodes, []int{1, 0}, 25)

	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestValidatePlaythrough_ToleratesSmallDrift(t *testing.T) {
	nodes := testMissionNodes()

	calculated, _, err := ValidatePlaythrough(nodes, []int{1, 0}, 18.05)

	require.NoError(t, err)
	// recomputed value is authoritative, not the claimed one
	assert.Equal(t, 18.0, calculated)
}

func TestValidatePlaythrough_EmptyMission(t *testing.T) {
	calculated, summary, err := ValidatePlaythrough([]model.MissionNode{}, []int{}, 0)

	require.NoError(t, err)
	assert.Equal(t, 0.0, calculated)
	assert.Empty(t, summary)
}

func TestNormalizePagination_Defaults(t *testing.T) {
	page, limit, sortField, order := normalizePagination(dto.PaginationQuery{})

	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, "created_at", sortField)
	assert.Equal(t, "DESC", order)
}

func TestNormalizePagination_RejectsUnknownSortColumn(t *testing.T) {
	_, _, sortField, _ := normalizePagination(dto.PaginationQuery{Sort: "xp_reward; DROP TABLE farmers"})
	assert.Equal(t, "created_at", sortField)

	_, _, sortField, _ = normalizePagination(dto.PaginationQuery{Sort: "xp_reward"})
	assert.Equal(t, "xp_reward", sortField)
}

func TestNormalizePagination_ClampsLimit(t *testing.T) {
	_, limit, _, _ := normalizePagination(dto.PaginationQuery{Limit: 500})
	assert.Equal(t, 20, limit)

	_, limit, _, _ = normalizePagination(dto.PaginationQuery{Page: 2, Limit: 50, Order: "asc"})
	assert.Equal(t, 50, limit)
}
