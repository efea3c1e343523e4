package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/shared"
)

type MissionHandler struct {
	missionSvc MissionServiceInterface
}

func NewMissionHandler(missionSvc MissionServiceInterface) *MissionHandler {
	return &MissionHandler{
		missionSvc: missionSvc,
	}
}

// @Summary List Missions
// @Description Get the mission catalog with their full narrative trees
// @Tags missions
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Param sort query string false "Sort field: xp_reward, title, created_at"
// @Param order query string false "Sort order: asc or desc"
// @Success 200 {object} shared.Response{data=dto.MissionListResponse}
// @Router /api/v1/missions [get]
func (h *MissionHandler) GetMissions(c *fiber.Ctx) error {
	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return shared.NewBadRequestError(err, "Invalid query parameters")
	}

	missions, err := h.missionSvc.GetMissions(query)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", missions)
}

// @Summary Get Mission Stats
// @Description Get aggregate mission statistics
// @Tags missions
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.MissionStatsResponse}
// @Router /api/v1/missions/stats [get]
func (h *MissionHandler) GetMissionStats(c *fiber.Ctx) error {
	stats, err := h.missionSvc.GetMissionStats()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", stats)
}

// @Summary Get Mission
// @Description Get one mission by id
// @Tags missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} shared.Response{data=dto.MissionResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/missions/{id} [get]
func (h *MissionHandler) GetMission(c *fiber.Ctx) error {
	mission, err := h.missionSvc.GetMission(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", mission)
}

// @Summary Complete Mission
// @Description Submit a mission playthrough. The choice sequence is validated
// @Description against the narrative tree and the score is recomputed server-side
// @Tags missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Param request body dto.CompleteMissionRequest true "Playthrough"
// @Success 200 {object} shared.Response{data=dto.CompleteMissionResponse}
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Router /api/v1/missions/{id}/complete [post]
func (h *MissionHandler) CompleteMission(c *fiber.Ctx) error {
	var req dto.CompleteMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if errs := dto.Validate(req); errs != nil {
		return shared.NewValidationError("Validation failed", errs)
	}

	result, err := h.missionSvc.CompleteMission(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
