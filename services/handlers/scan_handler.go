package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/shared"
)

type ScanHandler struct {
	scanSvc CropScanServiceInterface
}

func NewScanHandler(scanSvc CropScanServiceInterface) *ScanHandler {
	return &ScanHandler{
		scanSvc: scanSvc,
	}
}

// @Summary Analyze Crop Photo
// @Description Upload a crop photo for sustainability analysis. With a
// @Description farmer_id the scan is recorded and the farmer's eco-score updates
// @Tags scans
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Crop photo (JPG, PNG or WEBP, max 10MB)"
// @Param farmer_id formData string false "Farmer ID to record the scan against"
// @Success 200 {object} shared.Response{data=dto.CropAnalysisResponse}
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Router /api/v1/scans/analyze [post]
func (h *ScanHandler) AnalyzeCrop(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return shared.NewBadRequestError(err, "Image file is required")
	}

	result, err := h.scanSvc.AnalyzeCrop(file, c.FormValue(shared.FarmerID))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary List Crop Scans
// @Description List scan history, optionally filtered to one farmer
// @Tags scans
// @Accept json
// @Produce json
// @Param farmer_id query string false "Filter by farmer"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} shared.Response{data=dto.CropScanListResponse}
// @Router /api/v1/scans [get]
func (h *ScanHandler) GetCropScans(c *fiber.Ctx) error {
	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return shared.NewBadRequestError(err, "Invalid query parameters")
	}

	scans, err := h.scanSvc.GetCropScans(c.Query(shared.FarmerID), query)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", scans)
}

// @Summary Get Crop Scan
// @Description Get one scan by id
// @Tags scans
// @Accept json
// @Produce json
// @Param id path string true "Scan ID"
// @Success 200 {object} shared.Response{data=dto.CropScanResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/scans/{id} [get]
func (h *ScanHandler) GetCropScan(c *fiber.Ctx) error {
	scan, err := h.scanSvc.GetCropScan(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", scan)
}

// @Summary Delete Crop Scan
// @Description Delete a scan and its stored images
// @Tags scans
// @Accept json
// @Produce json
// @Param id path string true "Scan ID"
// @Success 200 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Router /api/v1/scans/{id} [delete]
func (h *ScanHandler) DeleteCropScan(c *fiber.Ctx) error {
	if err := h.scanSvc.DeleteCropScan(c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}
