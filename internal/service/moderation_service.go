package service

import (
	"context"

	"github.com/google/uuid"

	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/repository"
)

// ReportUpdate is a partial update; nil fields are left unchanged.
type ReportUpdate struct {
	Status         *model.ReportStatus
	ResolutionNote *string
}

// CascadeSummary counts the rows removed by DeleteUser.
type CascadeSummary struct {
	Messages int64 `json:"messages"`
	Matches  int64 `json:"matches"`
	Swipes   int64 `json:"swipes"`
	Problems int64 `json:"problems"`
	Reports  int64 `json:"reports"`
}

// ModerationService holds the admin operations. Every method requires an
// admin principal.
type ModerationService interface {
	ListReports(ctx context.Context, p model.Principal) ([]model.Report, error)
	UpdateReport(ctx context.Context, p model.Principal, reportID uuid.UUID, upd ReportUpdate) (*model.Report, error)
	ListMatches(ctx context.Context, p model.Principal) ([]model.Match, error)
	// CloseMatch deactivates a match and deletes its messages.
	CloseMatch(ctx context.Context, p model.Principal, matchID uuid.UUID) (*model.Match, error)
	ListUsers(ctx context.Context, p model.Principal) ([]model.User, error)
	// DeleteUser removes a user and everything that hangs off them in one
	// transaction.
	DeleteUser(ctx context.Context, p model.Principal, userID uuid.UUID) (*CascadeSummary, error)
}

type moderationService struct {
	store repository.Store
	users UserService
}

// NewModerationService creates a new moderation service.
func NewModerationService(store repository.Store, users UserService) ModerationService {
	return &moderationService{store: store, users: users}
}

func (s *moderationService) ListReports(ctx context.Context, p model.Principal) ([]model.Report, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	reports, err := s.store.Reports().List(ctx)
	if err != nil {
		return nil, errors.Unexpected("list reports", err)
	}
	return reports, nil
}

func (s *moderationService) UpdateReport(ctx context.Context, p model.Principal, reportID uuid.UUID, upd ReportUpdate) (*model.Report, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, errors.Validation("Invalid status")
	}

	reports := s.store.Reports()
	report, err := reports.FindByID(ctx, reportID)
	if err != nil {
		return nil, storeError(err, "Report not found", "load report")
	}

	if upd.Status != nil {
		report.Status = *upd.Status
	}
	if upd.ResolutionNote != nil {
		report.ResolutionNote = cleanText(*upd.ResolutionNote)
	}
	if err := reports.Update(ctx, report); err != nil {
		return nil, errors.Unexpected("update report", err)
	}
	return report, nil
}

func (s *moderationService) ListMatches(ctx context.Context, p model.Principal) ([]model.Match, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	matches, err := s.store.Matches().ListAll(ctx)
	if err != nil {
		return nil, errors.Unexpected("list matches", err)
	}
	return matches, nil
}

func (s *moderationService) CloseMatch(ctx context.Context, p model.Principal, matchID uuid.UUID) (*model.Match, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	var match *model.Match
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		found, err := tx.Matches().FindByID(ctx, matchID)
		if err != nil {
			return storeError(err, "Match not found", "load match")
		}
		if err := tx.Matches().Deactivate(ctx, found.ID); err != nil {
			return errors.Unexpected("close match", err)
		}
		found.IsActive = false

		messageIDs, err := tx.Messages().IDsByMatches(ctx, []uuid.UUID{found.ID})
		if err != nil {
			return errors.Unexpected("collect messages", err)
		}
		if _, err := tx.Messages().DeleteByIDs(ctx, messageIDs); err != nil {
			return errors.Unexpected("delete messages", err)
		}
		if _, err := tx.Reports().DeleteByTargetMessages(ctx, messageIDs); err != nil {
			return errors.Unexpected("delete message reports", err)
		}

		match = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (s *moderationService) ListUsers(ctx context.Context, p model.Principal) ([]model.User, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	return s.users.ListUsers(ctx)
}

func (s *moderationService) DeleteUser(ctx context.Context, p model.Principal, userID uuid.UUID) (*CascadeSummary, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if p.UserID == userID {
		return nil, errors.InvalidOperation("Admins cannot delete themselves")
	}

	summary := &CascadeSummary{}
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.Users().FindByID(ctx, userID); err != nil {
			return storeError(err, "User not found", "load user")
		}

		problemIDs, err := tx.Problems().IDsByOwner(ctx, userID)
		if err != nil {
			return errors.Unexpected("collect problems", err)
		}
		matchIDs, err := tx.Matches().IDsForUser(ctx, userID)
		if err != nil {
			return errors.Unexpected("collect matches", err)
		}
		messageIDs, err := tx.Messages().IDsByMatches(ctx, matchIDs)
		if err != nil {
			return errors.Unexpected("collect messages", err)
		}

		if summary.Messages, err = tx.Messages().DeleteByIDs(ctx, messageIDs); err != nil {
			return errors.Unexpected("delete messages", err)
		}
		if summary.Matches, err = tx.Matches().DeleteByIDs(ctx, matchIDs); err != nil {
			return errors.Unexpected("delete matches", err)
		}
		if summary.Swipes, err = tx.Swipes().DeleteBySwiperOrProblems(ctx, userID, problemIDs); err != nil {
			return errors.Unexpected("delete swipes", err)
		}
		if summary.Problems, err = tx.Problems().DeleteByIDs(ctx, problemIDs); err != nil {
			return errors.Unexpected("delete problems", err)
		}
		if summary.Reports, err = tx.Reports().DeleteByReporterOrTargets(ctx, userID, problemIDs, messageIDs); err != nil {
			return errors.Unexpected("delete reports", err)
		}
		if err := tx.Users().Delete(ctx, userID); err != nil {
			return errors.Unexpected("delete user", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.users.Invalidate(ctx, userID)
	return summary, nil
}
