package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"peerswipe/internal/db/dbtest"
	"peerswipe/internal/model"
)

type fixture struct {
	t     *testing.T
	ctx   context.Context
	db    *gorm.DB
	store Store
}

func newFixture(t *testing.T) *fixture {
	gormDB := dbtest.Open(t)
	return &fixture{t: t, ctx: context.Background(), db: gormDB, store: NewStore(gormDB)}
}

func (f *fixture) user(name string) *model.User {
	f.t.Helper()
	u := &model.User{Email: name + "@example.com", PasswordHash: "x", Pseudonym: name}
	require.NoError(f.t, f.store.Users().Create(f.ctx, u))
	return u
}

func (f *fixture) problem(owner *model.User, title string) *model.ProblemPost {
	f.t.Helper()
	p := &model.ProblemPost{OwnerID: owner.ID, Title: title, Description: "details", Category: model.CategoryDaily, IsOpen: true}
	require.NoError(f.t, f.store.Problems().Create(f.ctx, p))
	return p
}

func (f *fixture) match(problem *model.ProblemPost, helper *model.User) *model.Match {
	f.t.Helper()
	m, created, err := f.store.Matches().CreateIfAbsent(f.ctx, &model.Match{
		ProblemID: problem.ID,
		OwnerID:   problem.OwnerID,
		HelperID:  helper.ID,
		IsActive:  true,
	})
	require.NoError(f.t, err)
	require.True(f.t, created)
	return m
}

func (f *fixture) message(match *model.Match, sender *model.User, content string) *model.Message {
	f.t.Helper()
	m := &model.Message{MatchID: match.ID, SenderID: sender.ID, Content: content}
	require.NoError(f.t, f.store.Messages().Create(f.ctx, m))
	return m
}

func (f *fixture) count(value interface{}) int64 {
	f.t.Helper()
	var n int64
	require.NoError(f.t, f.db.Model(value).Count(&n).Error)
	return n
}
