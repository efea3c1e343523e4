package repositories

import (
	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/model"
)

// ContentRepository covers the static game content: challenges, missions and
// the completion join rows.
type ContentRepository struct {
	BaseRepository
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ==================== CHALLENGE METHODS ====================

func (r *ContentRepository) GetChallenge(id string) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := r.db.First(&challenge, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *ContentRepository) ListChallenges(sortField, order string, limit, offset int) ([]model.Challenge, int64, error) {
	var total int64
	if err := r.db.Model(&model.Challenge{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var challenges []model.Challenge
	if err := r.db.Order(sortField + " " + order).
		Limit(limit).Offset(offset).Find(&challenges).Error; err != nil {
		return nil, 0, err
	}
	return challenges, total, nil
}

func (r *ContentRepository) CreateChallenge(challenge *model.Challenge) error {
	return r.db.Create(challenge).Error
}

// ==================== COMPLETION METHODS ====================

func (r *ContentRepository) GetCompletion(id string) (*model.ChallengeCompletion, error) {
	var completion model.ChallengeCompletion
	if err := r.db.Preload("Challenge").First(&completion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &completion, nil
}

// FindCompletion looks up the (farmer, challenge) join row; the caller treats
// gorm.ErrRecordNotFound as "not yet completed".
func (r *ContentRepository) FindCompletion(farmerID, challengeID string) (*model.ChallengeCompletion, error) {
	var completion model.ChallengeCompletion
	if err := r.db.First(&completion,
		"farmer_id = ? AND challenge_id = ?", farmerID, challengeID).Error; err != nil {
		return nil, err
	}
	return &completion, nil
}

func (r *ContentRepository) ListCompletionsByFarmer(farmerID string, limit, offset int) ([]model.ChallengeCompletion, int64, error) {
	var total int64
	if err := r.db.Model(&model.ChallengeCompletion{}).
		Where("farmer_id = ?", farmerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var completions []model.ChallengeCompletion
	if err := r.db.Preload("Challenge").Where("farmer_id = ?", farmerID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&completions).Error; err != nil {
		return nil, 0, err
	}
	return completions, total, nil
}

func (r *ContentRepository) CountCompletionsByFarmer(farmerID string) (int64, error) {
	var total int64
	err := r.db.Model(&model.ChallengeCompletion{}).
		Where("farmer_id = ?", farmerID).Count(&total).Error
	return total, err
}

// ==================== MISSION METHODS ====================

func (r *ContentRepository) GetMission(id string) (*model.Mission, error) {
	var mission model.Mission
	if err := r.db.First(&mission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mission, nil
}

func (r *ContentRepository) ListMissions(sortField, order string, limit, offset int) ([]model.Mission, int64, error) {
	var total int64
	if err := r.db.Model(&model.Mission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var missions []model.Mission
	if err := r.db.Order(sortField + " " + order).
		Limit(limit).Offset(offset).Find(&missions).Error; err != nil {
		return nil, 0, err
	}
	return missions, total, nil
}

func (r *ContentRepository) CreateMission(mission *model.Mission) error {
	return r.db.Create(mission).Error
}

// MissionStats buckets missions by XP reward ranges.
func (r *ContentRepository) MissionStats() (total int64, avgXP float64, easy, medium, hard int64, err error) {
	if err = r.db.Model(&model.Mission{}).Count(&total).Error; err != nil {
		return
	}
	if total > 0 {
		if err = r.db.Model(&model.Mission{}).
			Select("AVG(xp_reward)").Scan(&avgXP).Error; err != nil {
			return
		}
	}
	if err = r.db.Model(&model.Mission{}).Where("xp_reward <= 100").Count(&easy).Error; err != nil {
		return
	}
	if err = r.db.Model(&model.Mission{}).Where("xp_reward > 100 AND xp_reward <= 300").Count(&medium).Error; err != nil {
		return
	}
	err = r.db.Model(&model.Mission{}).Where("xp_reward > 300").Count(&hard).Error
	return
}
