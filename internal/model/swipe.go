package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwipeDirection is the decision a user made on a problem.
type SwipeDirection string

const (
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)

// Valid reports whether d is left or right.
func (d SwipeDirection) Valid() bool {
	return d == SwipeLeft || d == SwipeRight
}

// Swipe records the latest decision of a swiper on a problem.
// There is at most one row per (swiper, problem).
type Swipe struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	SwiperID  uuid.UUID      `json:"swiper" gorm:"type:char(36);not null;uniqueIndex:idx_swipe_pair,priority:1"`
	ProblemID uuid.UUID      `json:"problem" gorm:"type:char(36);not null;uniqueIndex:idx_swipe_pair,priority:2;index"`
	Direction SwipeDirection `json:"direction" gorm:"type:varchar(5);not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Swipe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = newID()
	}
	return nil
}
