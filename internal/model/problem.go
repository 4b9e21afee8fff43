package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProblemCategory classifies a problem post.
type ProblemCategory string

const (
	CategoryFinancial    ProblemCategory = "financial"
	CategoryRelationship ProblemCategory = "relationship"
	CategoryCareer       ProblemCategory = "career"
	CategoryDaily        ProblemCategory = "daily"
	CategoryOther        ProblemCategory = "other"
)

const (
	MaxTitleLength       = 80
	MaxDescriptionLength = 500
)

// Valid reports whether c is one of the known categories.
func (c ProblemCategory) Valid() bool {
	switch c {
	case CategoryFinancial, CategoryRelationship, CategoryCareer, CategoryDaily, CategoryOther:
		return true
	}
	return false
}

// ProblemPost is a problem shared by its owner. Closing only flips IsOpen;
// rows are removed solely by the user cascade.
type ProblemPost struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID     uuid.UUID       `json:"owner" gorm:"type:char(36);not null;index"`
	Title       string          `json:"title" gorm:"size:80;not null"`
	Description string          `json:"description" gorm:"size:500;not null"`
	Category    ProblemCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	IsOpen      bool            `json:"isOpen" gorm:"not null;default:true;index"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *ProblemPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = newID()
	}
	return nil
}
