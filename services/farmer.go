package services

import (
	"context"
	"fmt"
	"time"

	appcontext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/model"
	"github.com/agri-quest/agriquest_api/shared"
)

type FarmerService struct {
	appcontext.DefaultService

	sqlSvc   *SqlService
	redisSvc *RedisService
}

const FARMER_SVC = "farmer_svc"

const (
	demoFarmerName = "Demo Farmer"

	leaderboardCacheTTL = 60 * time.Second
	recentScanWindow    = 5
)

func (svc FarmerService) Id() string {
	return FARMER_SVC
}

func (svc *FarmerService) Configure(ctx *appcontext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *FarmerService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// GetDemoFarmer returns the shared demo profile, creating it on first use so
// a fresh install works without any seed step.
func (svc *FarmerService) GetDemoFarmer() (*dto.FarmerResponse, error) {
	farmer, err := svc.sqlSvc.Farmers().ByName(demoFarmerName)
	if err == nil {
		return svc.mapFarmer(farmer), nil
	}

	id, _ := uuid.NewV7()
	farmer = &model.Farmer{
		ID:        id.String(),
		Name:      demoFarmerName,
		Village:   "Green Valley",
		Region:    "Maharashtra",
		XP:        150,
		EcoScore:  75,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	farmer.SetBadgeList([]string{"eco-newcomer", "first-scan"})

	if err := svc.sqlSvc.Farmers().Create(farmer); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.Info("Created demo farmer profile")
	return svc.mapFarmer(farmer), nil
}

func (svc *FarmerService) GetFarmer(id string) (*dto.FarmerResponse, error) {
	farmer, err := svc.sqlSvc.Farmers().ByID(id)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Farmer not found")
	}
	return svc.mapFarmer(farmer), nil
}

// UpdateFarmer mutates profile fields only. XP, eco-score and badges are
// progression outputs and have no write path here.
func (svc *FarmerService) UpdateFarmer(id string, req dto.UpdateFarmerRequest) (*dto.FarmerResponse, error) {
	farmer, err := svc.sqlSvc.Farmers().ByID(id)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Farmer not found")
	}

	if req.Name != "" {
		farmer.Name = req.Name
	}
	if req.Village != "" {
		farmer.Village = req.Village
	}
	if req.Region != "" {
		farmer.Region = req.Region
	}
	farmer.UpdatedAt = time.Now()

	if err := svc.sqlSvc.Farmers().Update(farmer); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.invalidateLeaderboard()
	return svc.mapFarmer(farmer), nil
}

// GetFarmerProgress assembles the dashboard view: derived metrics, the most
// recent scans and completions, and the badge catalog for display.
func (svc *FarmerService) GetFarmerProgress(id string) (*dto.FarmerProgressResponse, error) {
	farmer, err := svc.sqlSvc.Farmers().ByID(id)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Farmer not found")
	}

	totalScans, err := svc.sqlSvc.Scans().CountByFarmer(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	totalCompletions, err := svc.sqlSvc.Content().CountCompletionsByFarmer(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	recentScans, err := svc.sqlSvc.Scans().Recent(id, recentScanWindow)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	recentCompletions, _, err := svc.sqlSvc.Content().ListCompletionsByFarmer(id, recentScanWindow, 0)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	rank, err := svc.sqlSvc.Farmers().Rank(farmer)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	avgEcoScore := farmer.EcoScore
	if len(recentScans) > 0 {
		sum := 0
		for i := range recentScans {
			sum += recentScans[i].EcoScore
		}
		avgEcoScore = sum / len(recentScans)
	}

	badges := farmer.BadgeList()

	metrics := dto.ProgressMetrics{
		CurrentLevel:         farmer.Level(),
		XPForNextLevel:       farmer.Level() * 100,
		ProgressToNextLevel:  farmer.XP % 100,
		TotalScans:           int(totalScans),
		TotalCompletions:     int(totalCompletions),
		AvgEcoScore:          avgEcoScore,
		OverallRank:          rank,
		WaterUsageEfficiency: capAt100(farmer.EcoScore + int(totalCompletions)*2),
		SoilHealthScore:      capAt100(avgEcoScore + len(badges)*5),
	}

	scanResponses := make([]dto.CropScanResponse, 0, len(recentScans))
	for i := range recentScans {
		scanResponses = append(scanResponses, mapCropScan(&recentScans[i]))
	}

	completionResponses := make([]dto.ChallengeCompletionResponse, 0, len(recentCompletions))
	for i := range recentCompletions {
		resp := mapCompletion(&recentCompletions[i])
		if recentCompletions[i].Challenge.ID != "" {
			challengeResp := mapChallenge(&recentCompletions[i].Challenge)
			resp.Challenge = &challengeResp
		}
		completionResponses = append(completionResponses, resp)
	}

	catalog := make(map[string]string, len(badges))
	for _, b := range badges {
		if desc, ok := shared.BadgeCatalog[b]; ok {
			catalog[b] = desc
		}
	}

	return &dto.FarmerProgressResponse{
		Farmer:        *svc.mapFarmer(farmer),
		Metrics:       metrics,
		RecentScans:   scanResponses,
		RecentResults: completionResponses,
		Badges:        badges,
		BadgeCatalog:  catalog,
	}, nil
}

// GetLeaderboard ranks farmers by XP with eco-score as tiebreak, optionally
// scoped to a region or village. Results are cached for a minute; ranks are
// absolute positions within the filtered ordering.
func (svc *FarmerService) GetLeaderboard(query dto.LeaderboardQuery) (*dto.LeaderboardResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("leaderboard:%s:%s:%d:%d", query.Region, query.Village, page, limit)

	var cached dto.LeaderboardResponse
	if hit, err := svc.redisSvc.GetJSON(context.Background(), cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	offset := (page - 1) * limit
	farmers, total, err := svc.sqlSvc.Farmers().Leaderboard(query.Region, query.Village, limit, offset)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	entries := make([]dto.LeaderboardEntry, 0, len(farmers))
	for i := range farmers {
		entries = append(entries, dto.LeaderboardEntry{
			Farmer:   *svc.mapFarmer(&farmers[i]),
			Rank:     offset + i + 1,
			XP:       farmers[i].XP,
			EcoScore: farmers[i].EcoScore,
			Badges:   farmers[i].BadgeList(),
		})
	}

	resp := &dto.LeaderboardResponse{
		Entries:    entries,
		Pagination: buildPagination(page, limit, total),
	}

	if err := svc.redisSvc.SetJSON(context.Background(), cacheKey, resp, leaderboardCacheTTL); err != nil {
		log.WithError(err).Debug("failed to cache leaderboard")
	}

	return resp, nil
}

func (svc *FarmerService) GetRegions() ([]string, error) {
	regions, err := svc.sqlSvc.Farmers().Regions()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return regions, nil
}

func (svc *FarmerService) GetVillages(region string) ([]string, error) {
	villages, err := svc.sqlSvc.Farmers().VillagesByRegion(region)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return villages, nil
}

// invalidateLeaderboard drops cached pages after any ranking-relevant write.
func (svc *FarmerService) invalidateLeaderboard() {
	if err := svc.redisSvc.DeleteByPattern(context.Background(), "leaderboard:*"); err != nil {
		log.WithError(err).Debug("failed to invalidate leaderboard cache")
	}
}

// Shutdown the service
func (svc *FarmerService) Shutdown() {
}

func (svc *FarmerService) mapFarmer(farmer *model.Farmer) *dto.FarmerResponse {
	return &dto.FarmerResponse{
		ID:        farmer.ID,
		Name:      farmer.Name,
		Village:   farmer.Village,
		Region:    farmer.Region,
		XP:        farmer.XP,
		EcoScore:  farmer.EcoScore,
		Level:     farmer.Level(),
		Badges:    farmer.BadgeList(),
		CreatedAt: farmer.CreatedAt,
	}
}

func capAt100(v int) int {
	if v > 100 {
		return 100
	}
	return v
}
