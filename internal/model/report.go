package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportStatus represents the moderation state of a report.
type ReportStatus string

const (
	ReportStatusOpen     ReportStatus = "open"
	ReportStatusResolved ReportStatus = "resolved"
)

// Valid reports whether s is open or resolved.
func (s ReportStatus) Valid() bool {
	return s == ReportStatusOpen || s == ReportStatusResolved
}

// Report flags exactly one problem or one message for admin review.
type Report struct {
	ID              uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	ReporterID      uuid.UUID    `json:"reporter" gorm:"type:char(36);not null;index"`
	TargetProblemID *uuid.UUID   `json:"targetProblem,omitempty" gorm:"type:char(36);index"`
	TargetMessageID *uuid.UUID   `json:"targetMessage,omitempty" gorm:"type:char(36);index"`
	Reason          string       `json:"reason" gorm:"type:text;not null"`
	Status          ReportStatus `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	ResolutionNote  string       `json:"resolutionNote,omitempty" gorm:"type:text"`
	CreatedAt       time.Time    `json:"createdAt" gorm:"index"`
	UpdatedAt       time.Time    `json:"updatedAt"`

	// Relations
	Reporter      *User        `json:"-" gorm:"foreignKey:ReporterID"`
	TargetProblem *ProblemPost `json:"-" gorm:"foreignKey:TargetProblemID"`
	TargetMessage *Message     `json:"-" gorm:"foreignKey:TargetMessageID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = newID()
	}
	if r.Status == "" {
		r.Status = ReportStatusOpen
	}
	return nil
}
