package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agri-quest/agriquest_api/dto"
)

func TestMissionNodesFromRequest(t *testing.T) {
	nodes := missionNodesFromRequest([]dto.MissionNodeRequest{
		{
			Text: "Aphids are spreading across your beans. How do you respond?",
			Choices: []dto.MissionChoiceRequest{
				{Text: "Release ladybugs", ScoreImpact: 10, Desc: "Natural predators handle the outbreak"},
				{Text: "Spray broad-spectrum pesticide", ScoreImpact: -8, Desc: "Kills pollinators along with the aphids"},
			},
		},
		{
			Text: "The outbreak is contained. What next?",
			Choices: []dto.MissionChoiceRequest{
				{Text: "Plant companion flowers", ScoreImpact: 6, Desc: "Keeps predator insects around"},
				{Text: "Do nothing", ScoreImpact: 0, Desc: "The next outbreak starts from scratch"},
			},
		},
	})

	require.Len(t, nodes, 2)
	require.Len(t, nodes[0].Choices, 2)
	assert.Equal(t, "Release ladybugs", nodes[0].Choices[0].Text)
	assert.Equal(t, 10.0, nodes[0].Choices[0].ScoreImpact)
	assert.Equal(t, -8.0, nodes[0].Choices[1].ScoreImpact)
	assert.Equal(t, "The outbreak is contained. What next?", nodes[1].Text)
}

func TestMissionNodesFromRequest_Empty(t *testing.T) {
	nodes := missionNodesFromRequest(nil)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}
