package repository

import (
	"gorm.io/gorm"
)

// Factory manages all repositories
type Factory struct {
	BusinessRepository BusinessRepository
	PostRepository     PostRepository
	RunRepository      RunRepository
}

// NewRepositoryFactory creates a repository factory with all repositories
func NewRepositoryFactory(db *gorm.DB) *Factory {
	return &Factory{
		BusinessRepository: NewBusinessRepository(db),
		PostRepository:     NewPostRepository(db),
		RunRepository:      NewRunRepository(db),
	}
}
