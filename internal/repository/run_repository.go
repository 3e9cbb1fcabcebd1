package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/servicepost/content-engine/internal/models"
)

// RunRepository manages generation run audit records
type RunRepository interface {
	Repository
	FindByPostID(postID uuid.UUID) ([]models.GenerationRun, error)
}

type runRepository struct {
	*BaseRepository
}

// NewRunRepository creates a new generation run repository
func NewRunRepository(db *gorm.DB) RunRepository {
	return &runRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *runRepository) FindByPostID(postID uuid.UUID) ([]models.GenerationRun, error) {
	var runs []models.GenerationRun
	err := r.DB.Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&runs).Error
	return runs, err
}
