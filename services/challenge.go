package services

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

type ChallengeService struct {
	context.DefaultService

	sqlSvc        *SqlService
	imageSvc      *ImageService
	mediaSvc      *MediaService
	farmerSvc     *FarmerService
	monitoringSvc *MonitoringService
	engine        *ProgressionEngine
}

const CHALLENGE_SVC = "challenge_svc"

func (svc ChallengeService) Id() string {
	return CHALLENGE_SVC
}

func (svc *ChallengeService) Configure(ctx *context.Context) error {
	svc.engine = NewProgressionEngine(DefaultProgressionRules())
	return svc.DefaultService.Configure(ctx)
}

func (svc *ChallengeService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.imageSvc = svc.Service(IMAGE_SVC).(*ImageService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.farmerSvc = svc.Service(FARMER_SVC).(*FarmerService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

func (svc *ChallengeService) GetChallenges(query dto.PaginationQuery) (*dto.ChallengeListResponse, error) {
	page, limit, sortField, order := normalizePagination(query)

	challenges, total, err := svc.sqlSvc.Content().ListChallenges(sortField, order, limit, (page-1)*limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	responses := make([]dto.ChallengeResponse, 0, len(challenges))
	for i := range challenges {
		responses = append(responses, mapChallenge(&challenges[i]))
	}

	return &dto.ChallengeListResponse{
		Challenges: responses,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

func (svc *ChallengeService) GetChallenge(id string) (*dto.ChallengeResponse, error) {
	challenge, err := svc.sqlSvc.Content().GetChallenge(id)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Challenge not found")
	}

	resp := mapChallenge(challenge)
	return &resp, nil
}

// CompleteChallenge records a one-time completion and advances the farmer.
// The completion row and the farmer mutation commit in one transaction so a
// crash cannot award XP without the matching completion record. An optional
// proof photo is stored before progression runs; an unreadable photo rejects
// the whole submission.
func (svc *ChallengeService) CompleteChallenge(challengeID string, req dto.CompleteChallengeRequest, proof *multipart.FileHeader) (*dto.CompleteChallengeResponse, error) {
	challenge, err := svc.sqlSvc.Content().GetChallenge(challengeID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Challenge not found")
	}

	farmer, err := svc.sqlSvc.Farmers().ByID(req.FarmerID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Farmer not found")
	}

	if existing, _ := svc.sqlSvc.Content().FindCompletion(req.FarmerID, challengeID); existing != nil {
		return nil, shared.NewConflictError(nil, "Challenge already completed by this farmer")
	}

	var proofURL, thumbURL string
	if proof != nil {
		proofURL, thumbURL, err = svc.storeProof(proof)
		if err != nil {
			return nil, err
		}
	}

	updated, newBadges := svc.engine.ApplyChallengeCompletion(*farmer, *challenge)
	updated.UpdatedAt = time.Now()

	id, _ := uuid.NewV7()
	completion := &model.ChallengeCompletion{
		ID:           id.String(),
		ChallengeID:  challengeID,
		FarmerID:     req.FarmerID,
		ImageURL:     proofURL,
		ThumbnailURL: thumbURL,
		Notes:        req.Notes,
		Status:       shared.CompletionStatusApproved,
		XPAwarded:    challenge.XPReward,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err = svc.sqlSvc.Db().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(completion).Error; err != nil {
			return err
		}
		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.farmerSvc.invalidateLeaderboard()
	svc.monitoringSvc.RecordChallengeCompletion()

	log.WithFields(log.Fields{
		"challenge_id": challengeID,
		"farmer_id":    req.FarmerID,
		"xp":           challenge.XPReward,
		"new_badges":   newBadges,
	}).Info("Challenge completed")

	completionResp := mapCompletion(completion)
	challengeResp := mapChallenge(challenge)
	completionResp.Challenge = &challengeResp

	return &dto.CompleteChallengeResponse{
		Completion: completionResp,
		Farmer: dto.FarmerSummary{
			XP:       updated.XP,
			EcoScore: updated.EcoScore,
			Badges:   updated.BadgeList(),
			Level:    updated.Level(),
		},
		XPGained:  challenge.XPReward,
		NewBadges: newBadges,
	}, nil
}

func (svc *ChallengeService) GetFarmerCompletions(farmerID string, query dto.PaginationQuery) (*dto.CompletionListResponse, error) {
	if _, err := svc.sqlSvc.Farmers().ByID(farmerID); err != nil {
		return nil, shared.NewNotFoundError(err, "Farmer not found")
	}

	page, limit, _, _ := normalizePagination(query)

	completions, total, err := svc.sqlSvc.Content().ListCompletionsByFarmer(farmerID, limit, (page-1)*limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	responses := make([]dto.ChallengeCompletionResponse, 0, len(completions))
	for i := range completions {
		resp := mapCompletion(&completions[i])
		if completions[i].Challenge.ID != "" {
			challengeResp := mapChallenge(&completions[i].Challenge)
			resp.Challenge = &challengeResp
		}
		responses = append(responses, resp)
	}

	return &dto.CompletionListResponse{
		Completions: responses,
		Pagination:  buildPagination(page, limit, total),
	}, nil
}

func (svc *ChallengeService) GetCompletion(id string) (*dto.ChallengeCompletionResponse, error) {
	completion, err := svc.sqlSvc.Content().GetCompletion(id)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Completion not found")
	}

	resp := mapCompletion(completion)
	if completion.Challenge.ID != "" {
		challengeResp := mapChallenge(&completion.Challenge)
		resp.Challenge = &challengeResp
	}
	return &resp, nil
}

func (svc *ChallengeService) CreateChallenge(challenge *model.Challenge) (*dto.ChallengeResponse, error) {
	id, _ := uuid.NewV7()
	challenge.ID = id.String()
	challenge.CreatedAt = time.Now()
	challenge.UpdatedAt = time.Now()

	if err := svc.sqlSvc.Content().CreateChallenge(challenge); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := mapChallenge(challenge)
	return &resp, nil
}

// storeProof runs the proof photo through the image pipeline and stores both
// renditions under a fresh id.
func (svc *ChallengeService) storeProof(proof *multipart.FileHeader) (string, string, error) {
	if err := svc.mediaSvc.ValidateUpload(proof); err != nil {
		return "", "", err
	}

	src, err := proof.Open()
	if err != nil {
		return "", "", shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", "", shared.NewInternalError(err, "Failed to read uploaded file")
	}

	processed, err := svc.imageSvc.ProcessImage(data)
	if err != nil {
		return "", "", err
	}
	thumbnail, err := svc.imageSvc.CreateThumbnail(data)
	if err != nil {
		return "", "", err
	}

	id, _ := uuid.NewV7()
	return svc.mediaSvc.StoreScanImages(id.String(), proof.Filename, processed, thumbnail)
}

// Shutdown the service
func (svc *ChallengeService) Shutdown() {
}

func mapChallenge(c *model.Challenge) dto.ChallengeResponse {
	return dto.ChallengeResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		XPReward:    c.XPReward,
		Difficulty:  c.Difficulty,
		Criteria:    c.Criteria,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
	}
}

func mapCompletion(c *model.ChallengeCompletion) dto.ChallengeCompletionResponse {
	return dto.ChallengeCompletionResponse{
		ID:           c.ID,
		ChallengeID:  c.ChallengeID,
		FarmerID:     c.FarmerID,
		ImageURL:     c.ImageURL,
		ThumbnailURL: c.ThumbnailURL,
		Notes:        c.Notes,
		Status:       c.Status,
		XPAwarded:    c.XPAwarded,
		CreatedAt:    c.CreatedAt,
	}
}
