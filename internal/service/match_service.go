package service

import (
	"context"

	"github.com/google/uuid"

	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/repository"
)

// MatchResult reports whether OnRightSwipe stored a new match.
type MatchResult struct {
	Match   *model.Match
	Created bool
}

// MatchService is the match engine plus the participant side of chat.
type MatchService interface {
	// OnRightSwipe returns the match for (problem, owner, helper), creating it
	// on first contact. A closed match for the same triple is returned as is.
	OnRightSwipe(ctx context.Context, problem *model.ProblemPost, helperID uuid.UUID) (*MatchResult, error)
	ListActive(ctx context.Context, p model.Principal) ([]model.Match, error)
	Close(ctx context.Context, p model.Principal, matchID uuid.UUID) (*model.Match, error)
	ListMessages(ctx context.Context, p model.Principal, matchID uuid.UUID) ([]model.Message, error)
	PostMessage(ctx context.Context, p model.Principal, matchID uuid.UUID, content string) (*model.Message, error)
}

type matchService struct {
	matches  repository.MatchRepository
	messages repository.MessageRepository
}

// NewMatchService creates a new match service.
func NewMatchService(matches repository.MatchRepository, messages repository.MessageRepository) MatchService {
	return &matchService{
		matches:  matches,
		messages: messages,
	}
}

func (s *matchService) OnRightSwipe(ctx context.Context, problem *model.ProblemPost, helperID uuid.UUID) (*MatchResult, error) {
	if problem.OwnerID == helperID {
		return nil, errors.InvalidOperation("Cannot match on your own problem")
	}
	if !problem.IsOpen {
		return nil, errors.InvalidOperation("Problem is closed to new matches")
	}

	match, created, err := s.matches.CreateIfAbsent(ctx, &model.Match{
		ProblemID: problem.ID,
		OwnerID:   problem.OwnerID,
		HelperID:  helperID,
		IsActive:  true,
	})
	if err != nil {
		return nil, errors.Unexpected("create match", err)
	}
	return &MatchResult{Match: match, Created: created}, nil
}

func (s *matchService) ListActive(ctx context.Context, p model.Principal) ([]model.Match, error) {
	matches, err := s.matches.ListActiveForUser(ctx, p.UserID)
	if err != nil {
		return nil, errors.Unexpected("list matches", err)
	}
	return matches, nil
}

// participantMatch loads a match the caller takes part in.
func (s *matchService) participantMatch(ctx context.Context, p model.Principal, matchID uuid.UUID) (*model.Match, error) {
	match, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		return nil, storeError(err, "Match not found", "load match")
	}
	if !match.HasParticipant(p.UserID) {
		return nil, errors.Forbidden("Forbidden")
	}
	return match, nil
}

// Close deactivates a match on behalf of one of its participants.
// Messages are kept.
func (s *matchService) Close(ctx context.Context, p model.Principal, matchID uuid.UUID) (*model.Match, error) {
	match, err := s.participantMatch(ctx, p, matchID)
	if err != nil {
		return nil, err
	}
	if match.IsActive {
		if err := s.matches.Deactivate(ctx, match.ID); err != nil {
			return nil, errors.Unexpected("close match", err)
		}
		match.IsActive = false
	}
	return match, nil
}

func (s *matchService) ListMessages(ctx context.Context, p model.Principal, matchID uuid.UUID) ([]model.Message, error) {
	match, err := s.participantMatch(ctx, p, matchID)
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.ListByMatch(ctx, match.ID)
	if err != nil {
		return nil, errors.Unexpected("list messages", err)
	}
	return messages, nil
}

func (s *matchService) PostMessage(ctx context.Context, p model.Principal, matchID uuid.UUID, content string) (*model.Message, error) {
	content = cleanText(content)
	if content == "" {
		return nil, errors.Validation("Content required")
	}

	match, err := s.participantMatch(ctx, p, matchID)
	if err != nil {
		return nil, err
	}
	if !match.IsActive {
		return nil, errors.InvalidOperation("Match is closed")
	}

	message := &model.Message{
		MatchID:  match.ID,
		SenderID: p.UserID,
		Content:  content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, errors.Unexpected("create message", err)
	}
	return message, nil
}
