package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peerswipe/internal/auth"
	"peerswipe/internal/model"
	"peerswipe/internal/service"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (*model.User, *service.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Get(1).(*service.TokenPair), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, *service.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Get(1).(*service.TokenPair), args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string, access *auth.Claims) error {
	args := m.Called(ctx, refreshToken, access)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockProblemService is a mock implementation of ProblemService.
type MockProblemService struct {
	mock.Mock
}

func (m *MockProblemService) Create(ctx context.Context, p model.Principal, in service.ProblemInput) (*model.ProblemPost, error) {
	args := m.Called(ctx, p, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProblemPost), args.Error(1)
}

func (m *MockProblemService) Close(ctx context.Context, p model.Principal, problemID uuid.UUID) (*model.ProblemPost, error) {
	args := m.Called(ctx, p, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProblemPost), args.Error(1)
}

func (m *MockProblemService) ListMine(ctx context.Context, p model.Principal) ([]model.ProblemPost, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProblemPost), args.Error(1)
}

func (m *MockProblemService) SwipeDeck(ctx context.Context, p model.Principal) ([]model.ProblemPost, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProblemPost), args.Error(1)
}

// MockSwipeService is a mock implementation of SwipeService.
type MockSwipeService struct {
	mock.Mock
}

func (m *MockSwipeService) RecordSwipe(ctx context.Context, swiperID, problemID uuid.UUID, direction model.SwipeDirection) (*model.Swipe, *model.ProblemPost, error) {
	args := m.Called(ctx, swiperID, problemID, direction)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Swipe), args.Get(1).(*model.ProblemPost), args.Error(2)
}

func (m *MockSwipeService) Swipe(ctx context.Context, p model.Principal, problemID uuid.UUID, direction model.SwipeDirection) (*service.SwipeOutcome, error) {
	args := m.Called(ctx, p, problemID, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SwipeOutcome), args.Error(1)
}

// MockMatchService is a mock implementation of MatchService.
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) OnRightSwipe(ctx context.Context, problem *model.ProblemPost, helperID uuid.UUID) (*service.MatchResult, error) {
	args := m.Called(ctx, problem, helperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MatchResult), args.Error(1)
}

func (m *MockMatchService) ListActive(ctx context.Context, p model.Principal) ([]model.Match, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *MockMatchService) Close(ctx context.Context, p model.Principal, matchID uuid.UUID) (*model.Match, error) {
	args := m.Called(ctx, p, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Match), args.Error(1)
}

func (m *MockMatchService) ListMessages(ctx context.Context, p model.Principal, matchID uuid.UUID) ([]model.Message, error) {
	args := m.Called(ctx, p, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMatchService) PostMessage(ctx context.Context, p model.Principal, matchID uuid.UUID, content string) (*model.Message, error) {
	args := m.Called(ctx, p, matchID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

// MockReportService is a mock implementation of ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Create(ctx context.Context, p model.Principal, in service.ReportInput) (*model.Report, error) {
	args := m.Called(ctx, p, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

// MockModerationService is a mock implementation of ModerationService.
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ListReports(ctx context.Context, p model.Principal) ([]model.Report, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockModerationService) UpdateReport(ctx context.Context, p model.Principal, reportID uuid.UUID, upd service.ReportUpdate) (*model.Report, error) {
	args := m.Called(ctx, p, reportID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockModerationService) ListMatches(ctx context.Context, p model.Principal) ([]model.Match, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *MockModerationService) CloseMatch(ctx context.Context, p model.Principal, matchID uuid.UUID) (*model.Match, error) {
	args := m.Called(ctx, p, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Match), args.Error(1)
}

func (m *MockModerationService) ListUsers(ctx context.Context, p model.Principal) ([]model.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockModerationService) DeleteUser(ctx context.Context, p model.Principal, userID uuid.UUID) (*service.CascadeSummary, error) {
	args := m.Called(ctx, p, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CascadeSummary), args.Error(1)
}
