package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

// AdminHandler exposes the content authoring surface. Challenge and mission
// definitions are otherwise read-only through the public routes.
type AdminHandler struct {
	challengeSvc ChallengeServiceInterface
	missionSvc   MissionServiceInterface
}

func NewAdminHandler(challengeSvc ChallengeServiceInterface, missionSvc MissionServiceInterface) *AdminHandler {
	return &AdminHandler{
		challengeSvc: challengeSvc,
		missionSvc:   missionSvc,
	}
}

// @Summary Create Challenge (Admin)
// @Description Create a new sustainable-farming challenge
// @Tags admin
// @Accept json
// @Produce json
// @Param challenge body dto.CreateChallengeRequest true "Challenge data"
// @Success 201 {object} shared.Response{data=dto.ChallengeResponse}
// @Failure 400 {object} shared.Response
// @Router /api/v1/admin/challenges [post]
func (h *AdminHandler) CreateChallenge(c *fiber.Ctx) error {
	var req dto.CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid challenge data")
	}

	if errs := dto.Validate(req); errs != nil {
		return shared.NewValidationError("Validation failed", errs)
	}

	created, err := h.challengeSvc.CreateChallenge(&model.Challenge{
		Title:       req.Title,
		Description: req.Description,
		XPReward:    req.XPReward,
		Difficulty:  req.Difficulty,
		Criteria:    req.Criteria,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Challenge created successfully", created)
}

// @Summary Create Mission (Admin)
// @Description Create a new branching narrative mission
// @Tags admin
// @Accept json
// @Produce json
// @Param mission body dto.CreateMissionRequest true "Mission data"
// @Success 201 {object} shared.Response{data=dto.MissionResponse}
// @Failure 400 {object} shared.Response
// @Router /api/v1/admin/missions [post]
func (h *AdminHandler) CreateMission(c *fiber.Ctx) error {
	var req dto.CreateMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid mission data")
	}

	if errs := dto.Validate(req); errs != nil {
		return shared.NewValidationError("Validation failed", errs)
	}

	created, err := h.missionSvc.CreateMission(req.Title, missionNodesFromRequest(req.Nodes), req.XPReward)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Mission created successfully", created)
}

func missionNodesFromRequest(reqNodes []dto.MissionNodeRequest) []model.MissionNode {
	nodes := make([]model.MissionNode, 0, len(reqNodes))
	for _, n := range reqNodes {
		choices := make([]model.MissionChoice, 0, len(n.Choices))
		for _, ch := range n.Choices {
			choices = append(choices, model.MissionChoice{
				Text:        ch.Text,
				ScoreImpact: ch.ScoreImpact,
				Desc:        ch.Desc,
			})
		}
		nodes = append(nodes, model.MissionNode{
			Text:    n.Text,
			Choices: choices,
		})
	}
	return nodes
}
