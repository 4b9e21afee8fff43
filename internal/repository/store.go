package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories so that several of them can share one
// database transaction.
type Store interface {
	Users() UserRepository
	Problems() ProblemRepository
	Swipes() SwipeRepository
	Matches() MatchRepository
	Messages() MessageRepository
	Reports() ReportRepository
	// WithTransaction executes fn with a Store bound to a single transaction.
	// Returning an error from fn rolls everything back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type store struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed store.
func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Users() UserRepository       { return NewUserRepository(s.db) }
func (s *store) Problems() ProblemRepository { return NewProblemRepository(s.db) }
func (s *store) Swipes() SwipeRepository     { return NewSwipeRepository(s.db) }
func (s *store) Matches() MatchRepository    { return NewMatchRepository(s.db) }
func (s *store) Messages() MessageRepository { return NewMessageRepository(s.db) }
func (s *store) Reports() ReportRepository   { return NewReportRepository(s.db) }

// WithTransaction executes a function within a database transaction.
func (s *store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &store{db: tx})
	})
}
