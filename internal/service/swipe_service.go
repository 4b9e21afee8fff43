package service

import (
	"context"

	"github.com/google/uuid"

	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/repository"
)

// SwipeOutcome is the result of a swipe. Match is set only for right swipes.
type SwipeOutcome struct {
	Swipe   *model.Swipe
	Match   *model.Match
	Created bool
}

// SwipeService is the swipe ledger. Right swipes on open problems are handed
// to the match engine.
type SwipeService interface {
	// RecordSwipe upserts the (swiper, problem) decision, last write wins.
	RecordSwipe(ctx context.Context, swiperID, problemID uuid.UUID, direction model.SwipeDirection) (*model.Swipe, *model.ProblemPost, error)
	// Swipe records the caller's decision and matches on a right swipe.
	Swipe(ctx context.Context, p model.Principal, problemID uuid.UUID, direction model.SwipeDirection) (*SwipeOutcome, error)
}

type swipeService struct {
	problems repository.ProblemRepository
	swipes   repository.SwipeRepository
	matches  MatchService
}

// NewSwipeService creates a new swipe service.
func NewSwipeService(problems repository.ProblemRepository, swipes repository.SwipeRepository, matches MatchService) SwipeService {
	return &swipeService{
		problems: problems,
		swipes:   swipes,
		matches:  matches,
	}
}

func (s *swipeService) RecordSwipe(ctx context.Context, swiperID, problemID uuid.UUID, direction model.SwipeDirection) (*model.Swipe, *model.ProblemPost, error) {
	if !direction.Valid() {
		return nil, nil, errors.Validation("Direction must be left or right")
	}

	problem, err := s.problems.FindByID(ctx, problemID)
	if err != nil {
		return nil, nil, storeError(err, "Problem not found", "load problem")
	}
	if problem.OwnerID == swiperID {
		return nil, nil, errors.InvalidOperation("Cannot swipe your own problem")
	}
	// Left swipes are accepted whatever the problem state.
	if direction == model.SwipeRight && !problem.IsOpen {
		return nil, nil, errors.InvalidOperation("Problem is closed to new matches")
	}

	swipe, err := s.swipes.Upsert(ctx, &model.Swipe{
		SwiperID:  swiperID,
		ProblemID: problem.ID,
		Direction: direction,
	})
	if err != nil {
		return nil, nil, errors.Unexpected("record swipe", err)
	}
	return swipe, problem, nil
}

func (s *swipeService) Swipe(ctx context.Context, p model.Principal, problemID uuid.UUID, direction model.SwipeDirection) (*SwipeOutcome, error) {
	swipe, problem, err := s.RecordSwipe(ctx, p.UserID, problemID, direction)
	if err != nil {
		return nil, err
	}

	out := &SwipeOutcome{Swipe: swipe}
	if direction != model.SwipeRight {
		return out, nil
	}

	result, err := s.matches.OnRightSwipe(ctx, problem, p.UserID)
	if err != nil {
		return nil, err
	}
	out.Match = result.Match
	out.Created = result.Created
	return out, nil
}
