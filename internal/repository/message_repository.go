package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"peerswipe/internal/model"
)

// MessageRepository defines chat message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	ListByMatch(ctx context.Context, matchID uuid.UUID) ([]model.Message, error)
	IDsByMatches(ctx context.Context, matchIDs []uuid.UUID) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByMatch returns a match's messages oldest first. Ids are time ordered,
// so they break timestamp ties in insertion order.
func (r *messageRepository) ListByMatch(ctx context.Context, matchID uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("match_id = ?", matchID).
		Order("created_at ASC").Order("id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) IDsByMatches(ctx context.Context, matchIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(matchIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("match_id IN ?", matchIDs).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *messageRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Message{})
	return res.RowsAffected, res.Error
}
