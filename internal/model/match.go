package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match pairs a problem owner with a helper who swiped right on it.
// (problem, owner, helper) is unique for the lifetime of the triple,
// whether or not the match is still active.
type Match struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProblemID uuid.UUID `json:"problem" gorm:"type:char(36);not null;uniqueIndex:idx_match_triple,priority:1"`
	OwnerID   uuid.UUID `json:"owner" gorm:"type:char(36);not null;uniqueIndex:idx_match_triple,priority:2;index"`
	HelperID  uuid.UUID `json:"helper" gorm:"type:char(36);not null;uniqueIndex:idx_match_triple,priority:3;index"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations, preloaded on every read
	Problem *ProblemPost `json:"-" gorm:"foreignKey:ProblemID"`
	Owner   *User        `json:"-" gorm:"foreignKey:OwnerID"`
	Helper  *User        `json:"-" gorm:"foreignKey:HelperID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}
	return nil
}

// HasParticipant reports whether userID is the owner or the helper.
func (m *Match) HasParticipant(userID uuid.UUID) bool {
	return m.OwnerID == userID || m.HelperID == userID
}
