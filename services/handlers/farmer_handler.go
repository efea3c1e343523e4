package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/shared"
)

type FarmerHandler struct {
	farmerSvc FarmerServiceInterface
}

func NewFarmerHandler(farmerSvc FarmerServiceInterface) *FarmerHandler {
	return &FarmerHandler{
		farmerSvc: farmerSvc,
	}
}

// @Summary Get Demo Farmer
// @Description Get the shared demo farmer profile, creating it if needed
// @Tags farmers
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.FarmerResponse}
// @Router /api/v1/farmers/demo [get]
func (h *FarmerHandler) GetDemoFarmer(c *fiber.Ctx) error {
	farmer, err := h.farmerSvc.GetDemoFarmer()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", farmer)
}

// @Summary Get Farmer
// @Description Get a farmer profile by id
// @Tags farmers
// @Accept json
// @Produce json
// @Param id path string true "Farmer ID"
// @Success 200 {object} shared.Response{data=dto.FarmerResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/farmers/{id} [get]
func (h *FarmerHandler) GetFarmer(c *fiber.Ctx) error {
	farmer, err := h.farmerSvc.GetFarmer(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", farmer)
}

// @Summary Update Farmer
// @Description Update farmer profile fields. Progression fields are read-only
// @Tags farmers
// @Accept json
// @Produce json
// @Param id path string true "Farmer ID"
// @Param request body dto.UpdateFarmerRequest true "Profile fields"
// @Success 200 {object} shared.Response{data=dto.FarmerResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} shared.Response
// @Router /api/v1/farmers/{id} [put]
func (h *FarmerHandler) UpdateFarmer(c *fiber.Ctx) error {
	var req dto.UpdateFarmerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if errs := dto.Validate(req); errs != nil {
		return shared.NewValidationError("Validation failed", errs)
	}

	farmer, err := h.farmerSvc.UpdateFarmer(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", farmer)
}

// @Summary Get Farmer Progress
// @Description Get progress metrics, recent scans and completions for a farmer
// @Tags farmers
// @Accept json
// @Produce json
// @Param id path string true "Farmer ID"
// @Success 200 {object} shared.Response{data=dto.FarmerProgressResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/farmers/{id}/progress [get]
func (h *FarmerHandler) GetFarmerProgress(c *fiber.Ctx) error {
	progress, err := h.farmerSvc.GetFarmerProgress(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Get Leaderboard
// @Description Get farmer rankings by XP, optionally filtered by region or village
// @Tags farmers
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param region query string false "Filter by region"
// @Param village query string false "Filter by village"
// @Success 200 {object} shared.Response{data=dto.LeaderboardResponse}
// @Router /api/v1/farmers/leaderboard [get]
func (h *FarmerHandler) GetLeaderboard(c *fiber.Ctx) error {
	var query dto.LeaderboardQuery
	if err := c.QueryParser(&query); err != nil {
		return shared.NewBadRequestError(err, "Invalid query parameters")
	}

	if errs := dto.Validate(query); errs != nil {
		return shared.NewValidationError("Validation failed", errs)
	}

	leaderboard, err := h.farmerSvc.GetLeaderboard(query)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}

// @Summary Get Regions
// @Description List regions that have registered farmers
// @Tags farmers
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]string}
// @Router /api/v1/farmers/regions [get]
func (h *FarmerHandler) GetRegions(c *fiber.Ctx) error {
	regions, err := h.farmerSvc.GetRegions()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", regions)
}

// @Summary Get Villages
// @Description List villages within a region
// @Tags farmers
// @Accept json
// @Produce json
// @Param region path string true "Region name"
// @Success 200 {object} shared.Response{data=[]string}
// @Router /api/v1/farmers/regions/{region}/villages [get]
func (h *FarmerHandler) GetVillages(c *fiber.Ctx) error {
	villages, err := h.farmerSvc.GetVillages(c.Params("region"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", villages)
}
