package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Business represents a service business publishing content
type Business struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string         `gorm:"type:varchar(255);not null;index"`
	ServiceName        string         `gorm:"type:varchar(255);not null"`
	ServiceDescription string         `gorm:"type:text"`
	City               string         `gorm:"type:varchar(255);not null;index"`
	Neighborhood       string         `gorm:"type:varchar(255)"`
	CreatedAt          time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
	// Relationships
	Posts []BlogPost  `gorm:"foreignKey:BusinessID"`
	Jobs  []JobRecord `gorm:"foreignKey:BusinessID"`
}

// JobRecord represents a completed job a post can showcase
type JobRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Business    Business       `gorm:"foreignKey:BusinessID"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Address     string         `gorm:"type:varchar(512)"`
	CompletedAt time.Time      `gorm:"index"`
	Notes       string         `gorm:"type:text"`
	ImageURLs   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

// BlogPost represents a generated blog post. Sections and the SEO checklist
// are stored as JSON in the shape the editor consumes.
type BlogPost struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Business        Business       `gorm:"foreignKey:BusinessID"`
	Title           string         `gorm:"type:text;not null"`
	MetaTitle       string         `gorm:"type:varchar(255)"`
	MetaDescription string         `gorm:"type:text"`
	Excerpt         string         `gorm:"type:text"`
	Slug            string         `gorm:"type:varchar(255);index"`
	Archetype       string         `gorm:"type:varchar(50);not null;index"`
	Sections        datatypes.JSON `gorm:"type:jsonb"`
	SEOScore        int            `gorm:"not null;default:0"`
	SEOChecklist    datatypes.JSON `gorm:"type:jsonb"`
	Status          string         `gorm:"type:varchar(50);not null;default:'generating';index"` // generating, draft, published, failed
	ProviderUsed    string         `gorm:"type:varchar(100)"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
	// Relationships
	Runs []GenerationRun `gorm:"foreignKey:PostID"`
}

// GenerationRun is the audit record of one generation or regeneration call
type GenerationRun struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Post         BlogPost  `gorm:"foreignKey:PostID"`
	Operation    string    `gorm:"type:varchar(50);not null;index"` // generate, regenerate_section
	Status       string    `gorm:"type:varchar(50);not null;index"` // succeeded, failed
	ProviderUsed string    `gorm:"type:varchar(100)"`
	SectionType  string    `gorm:"type:varchar(50)"`
	Error        string    `gorm:"type:text"`
	DurationMs   int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}
