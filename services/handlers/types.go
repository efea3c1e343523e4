package handlers

import (
	"mime/multipart"

	"github.com/agri-quest/agriquest_api/dto"
	"github.com/agri-quest/agriquest_api/model"
)

type FarmerServiceInterface interface {
	GetDemoFarmer() (*dto.FarmerResponse, error)
	GetFarmer(id string) (*dto.FarmerResponse, error)
	UpdateFarmer(id string, req dto.UpdateFarmerRequest) (*dto.FarmerResponse, error)
	GetFarmerProgress(id string) (*dto.FarmerProgressResponse, error)
	GetLeaderboard(query dto.LeaderboardQuery) (*dto.LeaderboardResponse, error)
	GetRegions() ([]string, error)
	GetVillages(region string) ([]string, error)
}

type ChallengeServiceInterface interface {
	GetChallenges(query dto.PaginationQuery) (*dto.ChallengeListResponse, error)
	GetChallenge(id string) (*dto.ChallengeResponse, error)
	CompleteChallenge(challengeID string, req dto.CompleteChallengeRequest, proof *multipart.FileHeader) (*dto.CompleteChallengeResponse, error)
	GetFarmerCompletions(farmerID string, query dto.PaginationQuery) (*dto.CompletionListResponse, error)
	GetCompletion(id string) (*dto.ChallengeCompletionResponse, error)
	CreateChallenge(challenge *model.Challenge) (*dto.ChallengeResponse, error)
}

type MissionServiceInterface interface {
	GetMissions(query dto.PaginationQuery) (*dto.MissionListResponse, error)
	GetMission(id string) (*dto.MissionResponse, error)
	CompleteMission(missionID string, req dto.CompleteMissionRequest) (*dto.CompleteMissionResponse, error)
	GetMissionStats() (*dto.MissionStatsResponse, error)
	CreateMission(title string, nodes []model.MissionNode, xpReward int) (*dto.MissionResponse, error)
}

type CropScanServiceInterface interface {
	AnalyzeCrop(file *multipart.FileHeader, farmerID string) (*dto.CropAnalysisResponse, error)
	GetCropScans(farmerID string, query dto.PaginationQuery) (*dto.CropScanListResponse, error)
	GetCropScan(id string) (*dto.CropScanResponse, error)
	DeleteCropScan(id string) error
}
