package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"peerswipe/internal/model"
)

// ReportRepository defines moderation report persistence operations.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	Update(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	DeleteByReporterOrTargets(ctx context.Context, reporterID uuid.UUID, problemIDs, messageIDs []uuid.UUID) (int64, error)
	DeleteByTargetMessages(ctx context.Context, messageIDs []uuid.UUID) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) Update(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Model(report).Select("status", "resolution_note", "updated_at").Updates(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns all reports newest first, with reporter and targets loaded.
func (r *reportRepository) List(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.WithContext(ctx).
		Preload("Reporter").
		Preload("TargetProblem").
		Preload("TargetMessage.Sender").
		Order("created_at DESC").Order("id DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// DeleteByReporterOrTargets removes reports written by reporterID or aimed
// at any of the given problems or messages.
func (r *reportRepository) DeleteByReporterOrTargets(ctx context.Context, reporterID uuid.UUID, problemIDs, messageIDs []uuid.UUID) (int64, error) {
	q := r.db.WithContext(ctx).Where("reporter_id = ?", reporterID)
	if len(problemIDs) > 0 {
		q = q.Or("target_problem_id IN ?", problemIDs)
	}
	if len(messageIDs) > 0 {
		q = q.Or("target_message_id IN ?", messageIDs)
	}
	res := q.Delete(&model.Report{})
	return res.RowsAffected, res.Error
}

// DeleteByTargetMessages removes reports aimed at the given messages.
func (r *reportRepository) DeleteByTargetMessages(ctx context.Context, messageIDs []uuid.UUID) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("target_message_id IN ?", messageIDs).Delete(&model.Report{})
	return res.RowsAffected, res.Error
}
