package repository

import (
	"gorm.io/gorm"

	"github.com/servicepost/content-engine/internal/models"
)

// BusinessRepository manages business persistence
type BusinessRepository interface {
	Repository
	List(limit, offset int) ([]models.Business, error)
}

type businessRepository struct {
	*BaseRepository
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *businessRepository) List(limit, offset int) ([]models.Business, error) {
	var businesses []models.Business
	err := r.DB.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&businesses).Error
	return businesses, err
}
