package services

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

// CropScanService runs the photo analysis pipeline and keeps the per-farmer
// scan history.
type CropScanService struct {
	context.DefaultService

	sqlSvc        *SqlService
	imageSvc      *ImageService
	geminiSvc     *GeminiService
	mediaSvc      *MediaService
	farmerSvc     *FarmerService
	monitoringSvc *MonitoringService
}

const CROP_SCAN_SVC = "crop_scan_svc"

// ecoScoreWindow is how many recent scans feed the farmer's rolling average.
const ecoScoreWindow = 5

func (svc CropScanService) Id() string {
	return CROP_SCAN_SVC
}

func (svc *CropScanService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *CropScanService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.imageSvc = svc.Service(IMAGE_SVC).(*ImageService)
	svc.geminiSvc = svc.Service(GEMINI_SVC).(*GeminiService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.farmerSvc = svc.Service(FARMER_SVC).(*FarmerService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// AnalyzeCrop runs the full pipeline for one uploaded photo: normalize,
// thumbnail, store, analyze. When a farmer id is supplied the result is also
// persisted as a scan and the farmer's eco-score moves to the rolling average
// of their recent scans. Anonymous scans return the analysis only.
func (svc *CropScanService) AnalyzeCrop(file *multipart.FileHeader, farmerID string) (*dto.CropAnalysisResponse, error) {
	if err := svc.mediaSvc.ValidateUpload(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to read uploaded file")
	}

	processed, err := svc.imageSvc.ProcessImage(data)
	if err != nil {
		return nil, err
	}
	thumbnail, err := svc.imageSvc.CreateThumbnail(data)
	if err != nil {
		return nil, err
	}

	scanID, _ := uuid.NewV7()
	imageURL, thumbURL, err := svc.mediaSvc.StoreScanImages(scanID.String(), file.Filename, processed, thumbnail)
	if err != nil {
		return nil, err
	}

	// Analysis runs on the normalized rendition so AI and fallback see the
	// same pixels.
	result := svc.geminiSvc.AnalyzeCropImage(processed)
	svc.monitoringSvc.RecordCropScan(result.Source)

	resp := &dto.CropAnalysisResponse{
		CropAnalysisResult: result,
		ImageURL:           imageURL,
		ThumbnailURL:       thumbURL,
	}

	if farmerID == "" {
		return resp, nil
	}

	farmer, err := svc.sqlSvc.Farmers().ByID(farmerID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Farmer not found")
	}

	scan, err := svc.persistScan(scanID.String(), farmer, imageURL, thumbURL, result)
	if err != nil {
		return nil, err
	}

	resp.ScanID = scan.ID
	return resp, nil
}

// persistScan writes the scan row and re-derives the farmer's eco-score from
// the rolling window in one transaction.
func (svc *CropScanService) persistScan(scanID string, farmer *model.Farmer, imageURL, thumbURL string, result dto.CropAnalysisResult) (*model.CropScan, error) {
	issues, _ := sonic.Marshal(result.Issues)
	recommendations, _ := sonic.Marshal(result.Recommendations)

	var rawAnalysis json.RawMessage
	if result.RawAnalysis != nil {
		rawAnalysis, _ = sonic.Marshal(result.RawAnalysis)
	}

	scan := &model.CropScan{
		ID:              scanID,
		FarmerID:        farmer.ID,
		ImageURL:        imageURL,
		ThumbnailURL:    thumbURL,
		EcoScore:        result.EcoScore,
		Issues:          issues,
		Recommendations: recommendations,
		RawAnalysis:     rawAnalysis,
		Confidence:      result.Confidence,
		Source:          result.Source,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	err := svc.sqlSvc.Db().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(scan).Error; err != nil {
			return err
		}

		var recent []model.CropScan
		if err := tx.Where("farmer_id = ?", farmer.ID).
			Order("created_at DESC").
			Limit(ecoScoreWindow).
			Find(&recent).Error; err != nil {
			return err
		}

		sum := 0
		for i := range recent {
			sum += recent[i].EcoScore
		}
		if len(recent) > 0 {
			farmer.EcoScore = sum / len(recent)
		}
		farmer.UpdatedAt = time.Now()

		return tx.Save(farmer).Error
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.farmerSvc.invalidateLeaderboard()

	log.WithFields(log.Fields{
		"scan_id":   scan.ID,
		"farmer_id": farmer.ID,
		"eco_score": result.EcoScore,
		"source":    result.Source,
	}).Info("Crop scan recorded")

	return scan, nil
}

func (svc *CropScanService) GetCropScans(farmerID string, query dto.PaginationQuery) (*dto.CropScanListResponse, error) {
	page, limit, _, _ := normalizePagination(query)

	scans, total, err := svc.sqlSvc.Scans().List(farmerID, limit, (page-1)*limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	responses := make([]dto.CropScanResponse, 0, len(scans))
	for i := range scans {
		responses = append(responses, mapCropScan(&scans[i]))
	}

	return &dto.CropScanListResponse{
		Scans:      responses,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

func (svc *CropScanService) GetCropScan(id string) (*dto.CropScanResponse, error) {
	scan, err := svc.sqlSvc.Scans().ByID(id)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Scan not found")
	}

	resp := mapCropScan(scan)
	return &resp, nil
}

// DeleteCropScan removes the scan row and its stored objects. The farmer's
// eco-score is left as-is; history edits do not retroactively re-score.
func (svc *CropScanService) DeleteCropScan(id string) error {
	scan, err := svc.sqlSvc.Scans().ByID(id)
	if err != nil {
		return shared.NewNotFoundError(err, "Scan not found")
	}

	if err := svc.sqlSvc.Scans().Delete(scan.ID); err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	svc.mediaSvc.DeleteScanImages(scan.ID)
	return nil
}

// Shutdown the service
func (svc *CropScanService) Shutdown() {
}

func mapCropScan(scan *model.CropScan) dto.CropScanResponse {
	return dto.CropScanResponse{
		ID:              scan.ID,
		FarmerID:        scan.FarmerID,
		ImageURL:        scan.ImageURL,
		ThumbnailURL:    scan.ThumbnailURL,
		EcoScore:        scan.EcoScore,
		Issues:          scan.IssueList(),
		Recommendations: scan.RecommendationList(),
		Confidence:      scan.Confidence,
		Source:          scan.Source,
		CreatedAt:       scan.CreatedAt,
	}
}
