package services

import (
	"fmt"
	"math"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

// scoreTolerance is the allowed drift between the client-submitted total and
// the recomputed sum before a submission is treated as tampered.
const scoreTolerance = 0.1

// ValidatePlaythrough checks a submitted choice sequence against the mission
// node graph, fail-fast. On success it returns the authoritative recomputed
// score impact and a per-node summary; the client-submitted total is only
// ever used for the mismatch check.
func ValidatePlaythrough(nodes []model.MissionNode, choices []int, claimedTotal float64) (float64, []dto.ChoiceSummary, error) {
	if len(choices) != len(nodes) {
		return 0, nil, shared.NewBadRequestError(nil, "Invalid number of choices for this mission")
	}

	calculated := 0.0
	summary := make([]dto.ChoiceSummary, 0, len(choices))

	for i, choiceIndex := range choices {
		node := nodes[i]
		if choiceIndex < 0 || choiceIndex >= len(node.Choices) {
			return 0, nil, shared.NewBadRequestError(nil,
				fmt.Sprintf("Invalid choice %d for node %d", choiceIndex, i))
		}

		choice := node.Choices[choiceIndex]
		calculated += choice.ScoreImpact
		summary = append(summary, dto.ChoiceSummary{
			NodeIndex:   i,
			ChoiceIndex: choiceIndex,
			ChoiceText:  choice.Text,
			ScoreImpact: choice.ScoreImpact,
			Description: choice.Desc,
		})
	}

	if math.Abs(calculated-claimedTotal) > scoreTolerance {
		return 0, nil, shared.NewBadRequestError(nil, "Score impact calculation mismatch")
	}

	return calculated, summary, nil
}

type MissionService struct {
	context.DefaultService

	sqlSvc        *SqlService
	farmerSvc     *FarmerService
	monitoringSvc *MonitoringService
	engine        *ProgressionEngine
}

const MISSION_SVC = "mission_svc"

func (svc MissionService) Id() string {
	return MISSION_SVC
}

func (svc *MissionService) Configure(ctx *context.Context) error {
	svc.engine = NewProgressionEngine(DefaultProgressionRules())
	return svc.DefaultService.Configure(ctx)
}

func (svc *MissionService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.farmerSvc = svc.Service(FARMER_SVC).(*FarmerService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

func (svc *MissionService) GetMissions(query dto.PaginationQuery) (*dto.MissionListResponse, error) {
	page, limit, sortField, order := normalizePagination(query)

	missions, total, err := svc.sqlSvc.Content().ListMissions(sortField, order, limit, (page-1)*limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	responses := make([]dto.MissionResponse, 0, len(missions))
	for i := range missions {
		resp, err := svc.mapMission(&missions[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return &dto.MissionListResponse{
		Missions:   responses,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

func (svc *MissionService) GetMission(id string) (*dto.MissionResponse, error) {
	mission, err := svc.sqlSvc.Content().GetMission(id)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Mission not found")
	}
	return svc.mapMission(mission)
}

// CompleteMission validates the playthrough, applies progression with the
// recomputed score and persists farmer state. Validation failures leave the
// farmer untouched.
func (svc *MissionService) CompleteMission(missionID string, req dto.CompleteMissionRequest) (*dto.CompleteMissionResponse, error) {
	mission, err := svc.sqlSvc.Content().GetMission(missionID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Mission not found")
	}

	farmer, err := svc.sqlSvc.Farmers().ByID(req.FarmerID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Farmer not found")
	}

	nodes, err := mission.NodeList()
	if err != nil {
		return nil, shared.NewInternalError(err, "Malformed mission definition")
	}

	calculated, summary, err := ValidatePlaythrough(nodes, req.Choices, req.TotalScoreImpact)
	if err != nil {
		return nil, err
	}

	descriptions := make([]string, 0, len(summary))
	for _, s := range summary {
		descriptions = append(descriptions, s.Description)
	}

	updated, outcome := svc.engine.ApplyMissionCompletion(*farmer, *mission, calculated, descriptions)
	updated.UpdatedAt = time.Now()

	if err := svc.sqlSvc.Farmers().Update(&updated); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.farmerSvc.invalidateLeaderboard()
	svc.monitoringSvc.RecordMissionCompletion(outcome.OutcomeType)

	log.WithFields(log.Fields{
		"mission_id":   missionID,
		"farmer_id":    req.FarmerID,
		"score_impact": calculated,
		"xp":           mission.XPReward,
	}).Info("Mission completed")

	return &dto.CompleteMissionResponse{
		Farmer: dto.FarmerSummary{
			XP:       updated.XP,
			EcoScore: updated.EcoScore,
			Badges:   updated.BadgeList(),
			Level:    updated.Level(),
		},
		MissionResult: dto.MissionResult{
			XPGained:         outcome.XPGained,
			EcoScoreChange:   outcome.EcoScoreChange,
			NewBadges:        outcome.NewBadges,
			OutcomeMessage:   outcome.OutcomeMessage,
			OutcomeType:      outcome.OutcomeType,
			TotalScoreImpact: calculated,
			ChoicesSummary:   summary,
		},
	}, nil
}

func (svc *MissionService) GetMissionStats() (*dto.MissionStatsResponse, error) {
	total, avgXP, easy, medium, hard, err := svc.sqlSvc.Content().MissionStats()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.MissionStatsResponse{
		TotalMissions: total,
		AvgXPReward:   int(math.Round(avgXP)),
		Difficulty: map[string]int{
			shared.DifficultyEasy:   int(easy),
			shared.DifficultyMedium: int(medium),
			shared.DifficultyHard:   int(hard),
		},
	}, nil
}

func (svc *MissionService) CreateMission(title string, nodes []model.MissionNode, xpReward int) (*dto.MissionResponse, error) {
	id, _ := uuid.NewV7()
	mission := &model.Mission{
		ID:        id.String(),
		Title:     title,
		XPReward:  xpReward,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := mission.SetNodeList(nodes); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid mission nodes")
	}

	if err := svc.sqlSvc.Content().CreateMission(mission); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return svc.mapMission(mission)
}

func (svc *MissionService) mapMission(mission *model.Mission) (*dto.MissionResponse, error) {
	nodes, err := mission.NodeList()
	if err != nil {
		return nil, shared.NewInternalError(err, "Malformed mission definition")
	}

	nodeResponses := make([]dto.MissionNodeResponse, 0, len(nodes))
	for _, node := range nodes {
		choices := make([]dto.MissionChoiceResponse, 0, len(node.Choices))
		for _, choice := range node.Choices {
			choices = append(choices, dto.MissionChoiceResponse{
				Text:        choice.Text,
				ScoreImpact: choice.ScoreImpact,
				Desc:        choice.Desc,
			})
		}
		nodeResponses = append(nodeResponses, dto.MissionNodeResponse{
			Text:    node.Text,
			Choices: choices,
		})
	}

	return &dto.MissionResponse{
		ID:        mission.ID,
		Title:     mission.Title,
		Nodes:     nodeResponses,
		XPReward:  mission.XPReward,
		CreatedAt: mission.CreatedAt,
	}, nil
}

// normalizePagination applies defaults and whitelists the sort column so the
// value is safe to interpolate into the ORDER BY clause.
func normalizePagination(query dto.PaginationQuery) (page, limit int, sortField, order string) {
	page = query.Page
	if page < 1 {
		page = 1
	}
	limit = query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	sortField = "created_at"
	switch query.Sort {
	case "xp_reward", "title", "created_at":
		sortField = query.Sort
	}

	order = "DESC"
	if query.Order == "asc" {
		order = "ASC"
	}
	return
}

func buildPagination(page, limit int, total int64) dto.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return dto.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
