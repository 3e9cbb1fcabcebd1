package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/servicepost/content-engine/internal/models"
)

// PostRepository manages blog post persistence
type PostRepository interface {
	Repository
	FindBySlug(slug string, post *models.BlogPost) error
	FindByBusinessID(businessID uuid.UUID, limit, offset int) ([]models.BlogPost, error)
	List(limit, offset int) ([]models.BlogPost, error)
	UpdateStatus(id uuid.UUID, status string) error
}

type postRepository struct {
	*BaseRepository
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *postRepository) FindBySlug(slug string, post *models.BlogPost) error {
	return r.DB.Where("slug = ?", slug).First(post).Error
}

func (r *postRepository) FindByBusinessID(businessID uuid.UUID, limit, offset int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.DB.Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) List(limit, offset int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.DB.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.DB.Model(&models.BlogPost{}).
		Where("id = ?", id).
		Update("status", status).Error
}
