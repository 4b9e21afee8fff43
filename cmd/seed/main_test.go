package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"peerswipe/internal/model"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUsers) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUsers) PseudonymExists(ctx context.Context, pseudonym string) (bool, error) {
	args := m.Called(ctx, pseudonym)
	return args.Bool(0), args.Error(1)
}

func (m *mockUsers) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUsers) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	return m.Called(ctx, id, isAdmin).Error(0)
}

func (m *mockUsers) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type oneName string

func (n oneName) Generate() string { return string(n) }

func TestSeedAdmin_Creates(t *testing.T) {
	users := new(mockUsers)
	users.On("FindByEmail", mock.Anything, "root@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("PseudonymExists", mock.Anything, "WiseCat321").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.IsAdmin && u.Pseudonym == "WiseCat321" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")) == nil
	})).Return(nil)

	created, err := seedAdmin(context.Background(), users, oneName("WiseCat321"), " Root@Example.com ", "s3cret!")

	require.NoError(t, err)
	assert.True(t, created)
	users.AssertExpectations(t)
}

func TestSeedAdmin_PromotesExisting(t *testing.T) {
	existing := &model.User{ID: uuid.New(), Email: "root@example.com"}
	users := new(mockUsers)
	users.On("FindByEmail", mock.Anything, "root@example.com").Return(existing, nil)
	users.On("SetAdmin", mock.Anything, existing.ID, true).Return(nil)

	created, err := seedAdmin(context.Background(), users, oneName("unused"), "root@example.com", "ignored")

	require.NoError(t, err)
	assert.False(t, created)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
