package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"peerswipe/internal/model"
)

// ProblemRepository defines problem post persistence operations.
type ProblemRepository interface {
	Create(ctx context.Context, problem *model.ProblemPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProblemPost, error)
	Close(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ProblemPost, error)
	ListDeck(ctx context.Context, userID uuid.UUID, limit int) ([]model.ProblemPost, error)
	IDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type problemRepository struct {
	db *gorm.DB
}

// NewProblemRepository creates a new problem repository.
func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

// Create creates a new problem post.
func (r *problemRepository) Create(ctx context.Context, problem *model.ProblemPost) error {
	return r.db.WithContext(ctx).Create(problem).Error
}

// FindByID finds a problem post by ID.
func (r *problemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ProblemPost, error) {
	var problem model.ProblemPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&problem).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

// Close marks a problem post as closed to new matches.
func (r *problemRepository) Close(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ProblemPost{}).
		Where("id = ?", id).
		Update("is_open", false).Error
}

// ListByOwner lists the problems of one owner, newest first.
func (r *problemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ProblemPost, error) {
	var problems []model.ProblemPost
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").Order("id DESC").
		Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

// ListDeck lists open problems the user neither owns nor has swiped, newest first.
func (r *problemRepository) ListDeck(ctx context.Context, userID uuid.UUID, limit int) ([]model.ProblemPost, error) {
	tx := r.db.WithContext(ctx)
	swiped := tx.Model(&model.Swipe{}).Select("problem_id").Where("swiper_id = ?", userID)

	var problems []model.ProblemPost
	if err := tx.
		Where("is_open = ?", true).
		Where("owner_id <> ?", userID).
		Where("id NOT IN (?)", swiped).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

// IDsByOwner collects the ids of all problems owned by ownerID.
func (r *problemRepository) IDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.ProblemPost{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByIDs removes the given problem posts.
func (r *problemRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ProblemPost{})
	return res.RowsAffected, res.Error
}
