package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/shared"
)

type ChallengeHandler struct {
	challengeSvc ChallengeServiceInterface
}

func NewChallengeHandler(challengeSvc ChallengeServiceInterface) *ChallengeHandler {
	return &ChallengeHandler{
		challengeSvc: challengeSvc,
	}
}

// @Summary List Challenges
// @Description Get the challenge catalog with pagination
// @Tags challenges
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Param sort query string false "Sort field: xp_reward, title, created_at"
// @Param order query string false "Sort order: asc or desc"
// @Success 200 {object} shared.Response{data=dto.ChallengeListResponse}
// @Router /api/v1/challenges [get]
func (h *ChallengeHandler) GetChallenges(c *fiber.Ctx) error {
	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return shared.NewBadRequestError(err, "Invalid query parameters")
	}

	challenges, err := h.challengeSvc.GetChallenges(query)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", challenges)
}

// @Summary Get Challenge
// @Description Get one challenge by id
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} shared.Response{data=dto.ChallengeResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/challenges/{id} [get]
func (h *ChallengeHandler) GetChallenge(c *fiber.Ctx) error {
	challenge, err := h.challengeSvc.GetChallenge(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", challenge)
}

// @Summary Complete Challenge
// @Description Submit a challenge completion with an optional proof photo. Each farmer can complete a challenge once
// @Tags challenges
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Challenge ID"
// @Param farmer_id formData string true "Farmer ID"
// @Param notes formData string false "Completion notes"
// @Param image formData file false "Proof photo"
// @Success 200 {object} shared.Response{data=dto.CompleteChallengeResponse}
// @Failure 404 {object} shared.Response
// @Failure 409 {object} shared.Response
// @Router /api/v1/challenges/{id}/complete [post]
func (h *ChallengeHandler) CompleteChallenge(c *fiber.Ctx) error {
	var req dto.CompleteChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if errs := dto.Validate(req); errs != nil {
		return shared.NewValidationError("Validation failed", errs)
	}

	// Proof photo is optional; a missing file is not an error.
	proof, err := c.FormFile("image")
	if err != nil {
		proof = nil
	}

	result, err := h.challengeSvc.CompleteChallenge(c.Params("id"), req, proof)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Get Farmer Completions
// @Description List a farmer's challenge completions
// @Tags challenges
// @Accept json
// @Produce json
// @Param farmerId path string true "Farmer ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} shared.Response{data=dto.CompletionListResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/challenges/completions/farmer/{farmerId} [get]
func (h *ChallengeHandler) GetFarmerCompletions(c *fiber.Ctx) error {
	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return shared.NewBadRequestError(err, "Invalid query parameters")
	}

	completions, err := h.challengeSvc.GetFarmerCompletions(c.Params("farmerId"), query)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", completions)
}

// @Summary Get Completion
// @Description Get one challenge completion record
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path string true "Completion ID"
// @Success 200 {object} shared.Response{data=dto.ChallengeCompletionResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/challenges/completions/{id} [get]
func (h *ChallengeHandler) GetCompletion(c *fiber.Ctx) error {
	completion, err := h.challengeSvc.GetCompletion(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", completion)
}
