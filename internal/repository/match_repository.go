package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"peerswipe/internal/model"
)

// MatchRepository defines match persistence operations.
type MatchRepository interface {
	CreateIfAbsent(ctx context.Context, match *model.Match) (stored *model.Match, created bool, err error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Match, error)
	FindByTriple(ctx context.Context, problemID, ownerID, helperID uuid.UUID) (*model.Match, error)
	ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]model.Match, error)
	ListAll(ctx context.Context) ([]model.Match, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	IDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// CreateIfAbsent inserts match unless its (problem, owner, helper) triple is
// already stored. The unique index decides; on conflict the existing row is
// returned with created=false, whatever its active state. The returned match
// has its problem and both parties loaded.
func (r *matchRepository) CreateIfAbsent(ctx context.Context, match *model.Match) (*model.Match, bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "problem_id"}, {Name: "owner_id"}, {Name: "helper_id"}},
		DoNothing: true,
	}).Create(match)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 {
		stored, err := r.FindByID(ctx, match.ID)
		if err != nil {
			return nil, false, err
		}
		return stored, true, nil
	}

	existing, err := r.FindByTriple(ctx, match.ProblemID, match.OwnerID, match.HelperID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByID finds a match by ID with its problem and parties.
func (r *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Match, error) {
	var match model.Match
	if err := r.withParties(ctx).Where("id = ?", id).First(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// FindByTriple finds the match for a triple regardless of its active state.
func (r *matchRepository) FindByTriple(ctx context.Context, problemID, ownerID, helperID uuid.UUID) (*model.Match, error) {
	var match model.Match
	if err := r.withParties(ctx).
		Where("problem_id = ? AND owner_id = ? AND helper_id = ?", problemID, ownerID, helperID).
		First(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// ListActiveForUser lists active matches where userID is owner or helper,
// most recently updated first.
func (r *matchRepository) ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]model.Match, error) {
	var matches []model.Match
	if err := r.withParties(ctx).
		Where("is_active = ?", true).
		Where(r.db.Where("owner_id = ?", userID).Or("helper_id = ?", userID)).
		Order("updated_at DESC").Order("id DESC").
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// ListAll lists every match, newest first.
func (r *matchRepository) ListAll(ctx context.Context) ([]model.Match, error) {
	var matches []model.Match
	if err := r.withParties(ctx).
		Order("created_at DESC").Order("id DESC").
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// Deactivate sets is_active to false.
func (r *matchRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Match{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// IDsForUser collects the ids of matches where userID is owner or helper.
func (r *matchRepository) IDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Match{}).
		Where("owner_id = ? OR helper_id = ?", userID, userID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByIDs removes the given matches.
func (r *matchRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Match{})
	return res.RowsAffected, res.Error
}

func (r *matchRepository) withParties(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Problem").
		Preload("Owner").
		Preload("Helper")
}
