package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a chat line inside a match, written by one of its participants.
type Message struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	MatchID   uuid.UUID `json:"match" gorm:"type:char(36);not null;index"`
	SenderID  uuid.UUID `json:"sender" gorm:"type:char(36);not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`

	// Relations
	Sender *User `json:"-" gorm:"foreignKey:SenderID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}
	return nil
}
