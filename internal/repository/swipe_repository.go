package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"peerswipe/internal/model"
)

// SwipeRepository defines swipe ledger persistence operations.
type SwipeRepository interface {
	Upsert(ctx context.Context, swipe *model.Swipe) (*model.Swipe, error)
	FindByPair(ctx context.Context, swiperID, problemID uuid.UUID) (*model.Swipe, error)
	DeleteBySwiperOrProblems(ctx context.Context, swiperID uuid.UUID, problemIDs []uuid.UUID) (int64, error)
}

type swipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new swipe repository.
func NewSwipeRepository(db *gorm.DB) SwipeRepository {
	return &swipeRepository{db: db}
}

// Upsert writes the swipe keyed on (swiper, problem). An existing row only
// has its direction replaced; the stored row is returned.
func (r *swipeRepository) Upsert(ctx context.Context, swipe *model.Swipe) (*model.Swipe, error) {
	swipe.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "problem_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"direction", "updated_at"}),
	}).Create(swipe).Error
	if err != nil {
		return nil, err
	}
	// On conflict the generated id was never stored.
	return r.FindByPair(ctx, swipe.SwiperID, swipe.ProblemID)
}

// FindByPair finds the swipe of swiperID on problemID.
func (r *swipeRepository) FindByPair(ctx context.Context, swiperID, problemID uuid.UUID) (*model.Swipe, error) {
	var swipe model.Swipe
	if err := r.db.WithContext(ctx).
		Where("swiper_id = ? AND problem_id = ?", swiperID, problemID).
		First(&swipe).Error; err != nil {
		return nil, err
	}
	return &swipe, nil
}

// DeleteBySwiperOrProblems removes the swipes made by swiperID and every
// swipe on the given problems.
func (r *swipeRepository) DeleteBySwiperOrProblems(ctx context.Context, swiperID uuid.UUID, problemIDs []uuid.UUID) (int64, error) {
	q := r.db.WithContext(ctx).Where("swiper_id = ?", swiperID)
	if len(problemIDs) > 0 {
		q = q.Or("problem_id IN ?", problemIDs)
	}
	res := q.Delete(&model.Swipe{})
	return res.RowsAffected, res.Error
}
