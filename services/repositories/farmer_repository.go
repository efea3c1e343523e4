package repositories

import (
	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/model"
)

type FarmerRepository struct {
	BaseRepository
}

func NewFarmerRepository(db *gorm.DB) *FarmerRepository {
	return &FarmerRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *FarmerRepository) ByID(id string) (*model.Farmer, error) {
	var farmer model.Farmer
	if err := r.db.First(&farmer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *FarmerRepository) ByName(name string) (*model.Farmer, error) {
	var farmer model.Farmer
	if err := r.db.First(&farmer, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *FarmerRepository) Create(farmer *model.Farmer) error {
	return r.db.Create(farmer).Error
}

func (r *FarmerRepository) Update(farmer *model.Farmer) error {
	return r.db.Save(farmer).Error
}

// Leaderboard returns farmers ordered by XP then eco score, optionally
// filtered by region and village.
func (r *FarmerRepository) Leaderboard(region, village string, limit, offset int) ([]model.Farmer, int64, error) {
	query := r.db.Model(&model.Farmer{})
	if region != "" {
		query = query.Where("region = ?", region)
	}
	if village != "" {
		query = query.Where("village = ?", village)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var farmers []model.Farmer
	if err := query.Order("xp DESC").Order("eco_score DESC").
		Limit(limit).Offset(offset).Find(&farmers).Error; err != nil {
		return nil, 0, err
	}

	return farmers, total, nil
}

func (r *FarmerRepository) Regions() ([]string, error) {
	var regions []string
	if err := r.db.Model(&model.Farmer{}).Distinct("region").
		Order("region").Pluck("region", &regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *FarmerRepository) VillagesByRegion(region string) ([]string, error) {
	var villages []string
	if err := r.db.Model(&model.Farmer{}).Where("region = ?", region).
		Distinct("village").Order("village").Pluck("village", &villages).Error; err != nil {
		return nil, err
	}
	return villages, nil
}

// Rank counts farmers with strictly more XP than the given farmer.
func (r *FarmerRepository) Rank(farmer *model.Farmer) (int, error) {
	var ahead int64
	if err := r.db.Model(&model.Farmer{}).
		Where("xp > ?", farmer.XP).Count(&ahead).Error; err != nil {
		return 0, err
	}
	return int(ahead) + 1, nil
}
