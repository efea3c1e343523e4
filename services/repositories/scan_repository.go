package repositories

import (
	"gorm.io/gorm"

	"github.com/agri-quest/agriquest_api/model"
)

type ScanRepository struct {
	BaseRepository
}

func NewScanRepository(db *gorm.DB) *ScanRepository {
	return &ScanRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *ScanRepository) ByID(id string) (*model.CropScan, error) {
	var scan model.CropScan
	if err := r.db.First(&scan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *ScanRepository) Create(scan *model.CropScan) error {
	return r.db.Create(scan).Error
}

func (r *ScanRepository) Delete(id string) error {
	return r.db.Delete(&model.CropScan{}, "id = ?", id).Error
}

func (r *ScanRepository) List(farmerID string, limit, offset int) ([]model.CropScan, int64, error) {
	query := r.db.Model(&model.CropScan{})
	if farmerID != "" {
		query = query.Where("farmer_id = ?", farmerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var scans []model.CropScan
	if err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&scans).Error; err != nil {
		return nil, 0, err
	}
	return scans, total, nil
}

// Recent returns the newest scans for a farmer, used for the rolling
// eco-score average and the progress view.
func (r *ScanRepository) Recent(farmerID string, limit int) ([]model.CropScan, error) {
	var scans []model.CropScan
	if err := r.db.Where("farmer_id = ?", farmerID).
		Order("created_at DESC").Limit(limit).Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

func (r *ScanRepository) CountByFarmer(farmerID string) (int64, error) {
	var total int64
	err := r.db.Model(&model.CropScan{}).
		Where("farmer_id = ?", farmerID).Count(&total).Error
	return total, err
}

// CreateMediaAsset records one stored object.
func (r *ScanRepository) CreateMediaAsset(asset *model.MediaAsset) error {
	return r.db.Create(asset).Error
}
