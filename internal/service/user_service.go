package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"peerswipe/internal/cache"
	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes identity lookups backed by a read-through cache.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	Invalidate(ctx context.Context, id uuid.UUID)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// cachedUser keeps the fields the principal needs; the password hash is
// never written to redis.
type cachedUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Pseudonym string    `json:"pseudonym"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var cached cachedUser
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) && cached.ID == id {
		return &model.User{
			ID:        cached.ID,
			Email:     cached.Email,
			Pseudonym: cached.Pseudonym,
			IsAdmin:   cached.IsAdmin,
			CreatedAt: cached.CreatedAt,
		}, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "User not found", "load user")
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(id), cachedUser{
		ID:        user.ID,
		Email:     user.Email,
		Pseudonym: user.Pseudonym,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Unexpected("list users", err)
	}
	return users, nil
}

// Invalidate drops the cached copy after a user is changed or deleted.
func (s *userService) Invalidate(ctx context.Context, id uuid.UUID) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
}
