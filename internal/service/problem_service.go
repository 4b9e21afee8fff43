package service

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/repository"
)

// DeckSize caps the number of problems returned by the swipe deck.
const DeckSize = 20

// ProblemInput carries the fields of a new problem post.
type ProblemInput struct {
	Title       string
	Description string
	Category    model.ProblemCategory
}

// ProblemService handles problem posts and the swipe deck.
type ProblemService interface {
	Create(ctx context.Context, p model.Principal, in ProblemInput) (*model.ProblemPost, error)
	Close(ctx context.Context, p model.Principal, problemID uuid.UUID) (*model.ProblemPost, error)
	ListMine(ctx context.Context, p model.Principal) ([]model.ProblemPost, error)
	SwipeDeck(ctx context.Context, p model.Principal) ([]model.ProblemPost, error)
}

type problemService struct {
	problems repository.ProblemRepository
}

// NewProblemService creates a new problem service.
func NewProblemService(problems repository.ProblemRepository) ProblemService {
	return &problemService{problems: problems}
}

// Create validates and stores a new open problem owned by the caller.
func (s *problemService) Create(ctx context.Context, p model.Principal, in ProblemInput) (*model.ProblemPost, error) {
	title := cleanText(in.Title)
	description := cleanText(in.Description)

	if title == "" || description == "" || in.Category == "" {
		return nil, errors.Validation("Missing fields")
	}
	if !in.Category.Valid() {
		return nil, errors.Validation("Invalid category")
	}
	if utf8.RuneCountInString(title) > model.MaxTitleLength ||
		utf8.RuneCountInString(description) > model.MaxDescriptionLength {
		return nil, errors.Validation("Title or description exceeds allowed length")
	}

	problem := &model.ProblemPost{
		OwnerID:     p.UserID,
		Title:       title,
		Description: description,
		Category:    in.Category,
		IsOpen:      true,
	}
	if err := s.problems.Create(ctx, problem); err != nil {
		return nil, errors.Unexpected("create problem", err)
	}
	return problem, nil
}

// Close stops a problem from receiving new matches. Only the owner may close it.
func (s *problemService) Close(ctx context.Context, p model.Principal, problemID uuid.UUID) (*model.ProblemPost, error) {
	problem, err := s.problems.FindByID(ctx, problemID)
	if err != nil {
		return nil, storeError(err, "Problem not found", "load problem")
	}
	if problem.OwnerID != p.UserID {
		return nil, errors.Forbidden("Forbidden")
	}

	if problem.IsOpen {
		if err := s.problems.Close(ctx, problem.ID); err != nil {
			return nil, errors.Unexpected("close problem", err)
		}
		problem.IsOpen = false
	}
	return problem, nil
}

func (s *problemService) ListMine(ctx context.Context, p model.Principal) ([]model.ProblemPost, error) {
	problems, err := s.problems.ListByOwner(ctx, p.UserID)
	if err != nil {
		return nil, errors.Unexpected("list problems", err)
	}
	return problems, nil
}

// SwipeDeck returns open problems the caller neither owns nor has swiped.
func (s *problemService) SwipeDeck(ctx context.Context, p model.Principal) ([]model.ProblemPost, error) {
	problems, err := s.problems.ListDeck(ctx, p.UserID, DeckSize)
	if err != nil {
		return nil, errors.Unexpected("load swipe deck", err)
	}
	return problems, nil
}
