package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peerswipe/internal/model"
	"peerswipe/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) PseudonymExists(ctx context.Context, pseudonym string) (bool, error) {
	args := m.Called(ctx, pseudonym)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	args := m.Called(ctx, id, isAdmin)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProblemRepository is a mock implementation of ProblemRepository.
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) Create(ctx context.Context, problem *model.ProblemPost) error {
	args := m.Called(ctx, problem)
	return args.Error(0)
}

func (m *MockProblemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ProblemPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProblemPost), args.Error(1)
}

func (m *MockProblemRepository) Close(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProblemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ProblemPost, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProblemPost), args.Error(1)
}

func (m *MockProblemRepository) ListDeck(ctx context.Context, userID uuid.UUID, limit int) ([]model.ProblemPost, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProblemPost), args.Error(1)
}

func (m *MockProblemRepository) IDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockProblemRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockSwipeRepository is a mock implementation of SwipeRepository.
type MockSwipeRepository struct {
	mock.Mock
}

func (m *MockSwipeRepository) Upsert(ctx context.Context, swipe *model.Swipe) (*model.Swipe, error) {
	args := m.Called(ctx, swipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Swipe), args.Error(1)
}

func (m *MockSwipeRepository) FindByPair(ctx context.Context, swiperID, problemID uuid.UUID) (*model.Swipe, error) {
	args := m.Called(ctx, swiperID, problemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Swipe), args.Error(1)
}

func (m *MockSwipeRepository) DeleteBySwiperOrProblems(ctx context.Context, swiperID uuid.UUID, problemIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, swiperID, problemIDs)
	return args.Get(0).(int64), args.Error(1)
}

// MockMatchRepository is a mock implementation of MatchRepository.
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) CreateIfAbsent(ctx context.Context, match *model.Match) (*model.Match, bool, error) {
	args := m.Called(ctx, match)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Match), args.Bool(1), args.Error(2)
}

func (m *MockMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Match), args.Error(1)
}

func (m *MockMatchRepository) FindByTriple(ctx context.Context, problemID, ownerID, helperID uuid.UUID) (*model.Match, error) {
	args := m.Called(ctx, problemID, ownerID, helperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Match), args.Error(1)
}

func (m *MockMatchRepository) ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]model.Match, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *MockMatchRepository) ListAll(ctx context.Context) ([]model.Match, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *MockMatchRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMatchRepository) IDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockMatchRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageRepository) ListByMatch(ctx context.Context, matchID uuid.UUID) ([]model.Message, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageRepository) IDsByMatches(ctx context.Context, matchIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, matchIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockMessageRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) Update(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context) ([]model.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportRepository) DeleteByReporterOrTargets(ctx context.Context, reporterID uuid.UUID, problemIDs, messageIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, reporterID, problemIDs, messageIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) DeleteByTargetMessages(ctx context.Context, messageIDs []uuid.UUID) (int64, error) {
	args := m.Called(ctx, messageIDs)
	return args.Get(0).(int64), args.Error(1)
}

// MockStore hands out the mock repositories and runs transactions inline.
type MockStore struct {
	mock.Mock
	users    *MockUserRepository
	problems *MockProblemRepository
	swipes   *MockSwipeRepository
	matches  *MockMatchRepository
	messages *MockMessageRepository
	reports  *MockReportRepository
}

func newMockStore() *MockStore {
	return &MockStore{
		users:    new(MockUserRepository),
		problems: new(MockProblemRepository),
		swipes:   new(MockSwipeRepository),
		matches:  new(MockMatchRepository),
		messages: new(MockMessageRepository),
		reports:  new(MockReportRepository),
	}
}

func (m *MockStore) Users() repository.UserRepository       { return m.users }
func (m *MockStore) Problems() repository.ProblemRepository { return m.problems }
func (m *MockStore) Swipes() repository.SwipeRepository     { return m.swipes }
func (m *MockStore) Matches() repository.MatchRepository    { return m.matches }
func (m *MockStore) Messages() repository.MessageRepository { return m.messages }
func (m *MockStore) Reports() repository.ReportRepository   { return m.reports }

func (m *MockStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	m.Called(ctx)
	return fn(ctx, m)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockMatchService is a mock implementation of MatchService.
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) OnRightSwipe(ctx context.Context, problem *model.ProblemPost, helperID uuid.UUID) (*MatchResult, error) {
	args := m.Called(ctx, problem, helperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MatchResult), args.Error(1)
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

// fixedNames yields the given pseudonyms in order, repeating the last one.
type fixedNames struct {
	names []string
	next  int
}

func (f *fixedNames) Generate() string {
	name := f.names[f.next]
	if f.next < len(f.names)-1 {
		f.next++
	}
	return name
}
