package repositories

import (
	"gorm.io/gorm"
)

// BaseRepository holds the shared gorm handle embedded by the farmer,
// content and scan repositories. Transaction scopes are opened by the
// owning sql service, not here.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}
