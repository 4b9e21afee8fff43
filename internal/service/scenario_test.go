package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"peerswipe/internal/db/dbtest"
	"peerswipe/internal/errors"
	"peerswipe/internal/model"
	"peerswipe/internal/repository"
)

type scenario struct {
	db         *gorm.DB
	store      repository.Store
	problems   ProblemService
	swipes     SwipeService
	matches    MatchService
	reports    ReportService
	moderation ModerationService
}

func newScenario(t *testing.T) *scenario {
	gormDB := dbtest.Open(t)
	st := repository.NewStore(gormDB)
	matches := NewMatchService(st.Matches(), st.Messages())
	return &scenario{
		db:         gormDB,
		store:      st,
		problems:   NewProblemService(st.Problems()),
		swipes:     NewSwipeService(st.Problems(), st.Swipes(), matches),
		matches:    matches,
		reports:    NewReportService(st.Reports(), st.Problems(), st.Messages()),
		moderation: NewModerationService(st, NewUserService(st.Users(), nil)),
	}
}

func (s *scenario) user(t *testing.T, email, name string, isAdmin bool) model.Principal {
	t.Helper()
	u := &model.User{Email: email, PasswordHash: "x", Pseudonym: name, IsAdmin: isAdmin}
	require.NoError(t, s.store.Users().Create(context.Background(), u))
	return u.Principal()
}

func (s *scenario) count(t *testing.T, value interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(value).Count(&n).Error)
	return n
}

func (s *scenario) problem(t *testing.T, owner model.Principal, title string) *model.ProblemPost {
	t.Helper()
	p, err := s.problems.Create(context.Background(), owner, ProblemInput{Title: title, Description: "details", Category: model.CategoryCareer})
	require.NoError(t, err)
	return p
}

func TestScenario_SwipeMatchAndAdminClose(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	a := s.user(t, "a@example.com", "KindFox123", false)
	b := s.user(t, "b@example.com", "CalmOwl456", false)
	root := s.user(t, "admin@example.com", "BraveBear789", true)

	problem := s.problem(t, a, "Should I switch jobs?")

	first, err := s.swipes.Swipe(ctx, b, problem.ID, model.SwipeRight)
	require.NoError(t, err)
	require.NotNil(t, first.Match)
	assert.True(t, first.Created)
	assert.Equal(t, a.UserID, first.Match.OwnerID)
	assert.Equal(t, b.UserID, first.Match.HelperID)
	assert.True(t, first.Match.IsActive)
	require.NotNil(t, first.Match.Problem)
	assert.Equal(t, problem.ID, first.Match.Problem.ID)
	require.NotNil(t, first.Match.Owner)
	assert.Equal(t, "KindFox123", first.Match.Owner.Pseudonym)
	require.NotNil(t, first.Match.Helper)
	assert.Equal(t, "CalmOwl456", first.Match.Helper.Pseudonym)

	again, err := s.swipes.Swipe(ctx, b, problem.ID, model.SwipeRight)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.Match.ID, again.Match.ID)

	_, err = s.matches.PostMessage(ctx, a, first.Match.ID, "thanks for swiping")
	require.NoError(t, err)

	closed, err := s.moderation.CloseMatch(ctx, root, first.Match.ID)
	require.NoError(t, err)
	assert.False(t, closed.IsActive)
	require.NotNil(t, closed.Helper)
	assert.Equal(t, "CalmOwl456", closed.Helper.Pseudonym)

	msgs, err := s.matches.ListMessages(ctx, a, first.Match.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	// the triple stays unique after close
	third, err := s.swipes.Swipe(ctx, b, problem.ID, model.SwipeRight)
	require.NoError(t, err)
	assert.False(t, third.Created)
	assert.Equal(t, first.Match.ID, third.Match.ID)
	assert.False(t, third.Match.IsActive)

	active, err := s.matches.ListActive(ctx, b)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestScenario_SwipeLedgerKeepsOneRowPerPair(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	a := s.user(t, "a@example.com", "KindFox123", false)
	b := s.user(t, "b@example.com", "CalmOwl456", false)
	problem := s.problem(t, a, "Rent is due")

	for _, dir := range []model.SwipeDirection{model.SwipeLeft, model.SwipeRight, model.SwipeLeft} {
		_, err := s.swipes.Swipe(ctx, b, problem.ID, dir)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), s.count(t, &model.Swipe{}))
	sw, err := s.store.Swipes().FindByPair(ctx, b.UserID, problem.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SwipeLeft, sw.Direction)
	// the earlier right swipe still produced exactly one match
	assert.Equal(t, int64(1), s.count(t, &model.Match{}))
}

func TestScenario_ConcurrentRightSwipesCreateOneMatch(t *testing.T) {
	s := newScenario(t)
	a := s.user(t, "a@example.com", "KindFox123", false)
	b := s.user(t, "b@example.com", "CalmOwl456", false)
	problem := s.problem(t, a, "Lonely lately")

	const workers = 8
	var wg sync.WaitGroup
	created := make(chan bool, workers)
	ids := make(chan uuid.UUID, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.swipes.Swipe(context.Background(), b, problem.ID, model.SwipeRight)
			if assert.NoError(t, err) {
				created <- out.Created
				ids <- out.Match.ID
			}
		}()
	}
	wg.Wait()
	close(created)
	close(ids)

	var n int
	for c := range created {
		if c {
			n++
		}
	}
	assert.Equal(t, 1, n)
	first := <-ids
	for id := range ids {
		assert.Equal(t, first, id)
	}
}

func TestScenario_SwipeDeck(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	a := s.user(t, "a@example.com", "KindFox123", false)
	b := s.user(t, "b@example.com", "CalmOwl456", false)

	own := s.problem(t, b, "mine")
	older := s.problem(t, a, "older")
	swiped := s.problem(t, a, "swiped")
	closed := s.problem(t, a, "closed")
	newer := s.problem(t, a, "newer")

	_, err := s.problems.Close(ctx, a, closed.ID)
	require.NoError(t, err)
	_, err = s.swipes.Swipe(ctx, b, swiped.ID, model.SwipeLeft)
	require.NoError(t, err)

	deck, err := s.problems.SwipeDeck(ctx, b)
	require.NoError(t, err)

	var got []uuid.UUID
	for _, p := range deck {
		got = append(got, p.ID)
	}
	assert.Equal(t, []uuid.UUID{newer.ID, older.ID}, got)
	assert.NotContains(t, got, own.ID)
}

func TestScenario_SwipeDeckCapped(t *testing.T) {
	s := newScenario(t)
	a := s.user(t, "a@example.com", "KindFox123", false)
	b := s.user(t, "b@example.com", "CalmOwl456", false)
	for i := 0; i < DeckSize+5; i++ {
		s.problem(t, a, "p")
	}

	deck, err := s.problems.SwipeDeck(context.Background(), b)

	require.NoError(t, err)
	assert.Len(t, deck, DeckSize)
}

func TestScenario_ParticipantCloseKeepsMessages(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	a := s.user(t, "a@example.com", "KindFox123", false)
	b := s.user(t, "b@example.com", "CalmOwl456", false)
	problem := s.problem(t, a, "help")

	out, err := s.swipes.Swipe(ctx, b, problem.ID, model.SwipeRight)
	require.NoError(t, err)
	_, err = s.matches.PostMessage(ctx, b, out.Match.ID, "first")
	require.NoError(t, err)
	_, err = s.matches.PostMessage(ctx, a, out.Match.ID, "second")
	require.NoError(t, err)

	closed, err := s.matches.Close(ctx, b, out.Match.ID)
	require.NoError(t, err)
	assert.False(t, closed.IsActive)
	require.NotNil(t, closed.Problem)
	assert.Equal(t, "help", closed.Problem.Title)

	msgs, err := s.matches.ListMessages(ctx, a, out.Match.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)

	_, err = s.matches.PostMessage(ctx, a, out.Match.ID, "third")
	assert.Equal(t, errors.KindInvalidOperation, errors.KindOf(err))
}

func TestScenario_DeleteUserCascade(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()
	a := s.user(t, "a@example.com", "KindFox123", false)
	b := s.user(t, "b@example.com", "CalmOwl456", false)
	c := s.user(t, "c@example.com", "WiseCat321", false)
	root := s.user(t, "admin@example.com", "BraveBear789", true)

	aProblem := s.problem(t, a, "a's problem")
	cProblem := s.problem(t, c, "c's problem")

	ab, err := s.swipes.Swipe(ctx, b, aProblem.ID, model.SwipeRight)
	require.NoError(t, err)
	ac, err := s.swipes.Swipe(ctx, a, cProblem.ID, model.SwipeRight)
	require.NoError(t, err)
	_, err = s.swipes.Swipe(ctx, c, aProblem.ID, model.SwipeLeft)
	require.NoError(t, err)
	bc, err := s.swipes.Swipe(ctx, b, cProblem.ID, model.SwipeRight)
	require.NoError(t, err)

	msg, err := s.matches.PostMessage(ctx, b, ab.Match.ID, "hello a")
	require.NoError(t, err)
	kept, err := s.matches.PostMessage(ctx, c, bc.Match.ID, "hello b")
	require.NoError(t, err)

	_, err = s.reports.Create(ctx, b, ReportInput{TargetMessageID: &msg.ID, Reason: "rude"})
	require.NoError(t, err)
	_, err = s.reports.Create(ctx, c, ReportInput{TargetProblemID: &aProblem.ID, Reason: "spam"})
	require.NoError(t, err)
	_, err = s.reports.Create(ctx, a, ReportInput{TargetProblemID: &cProblem.ID, Reason: "spam"})
	require.NoError(t, err)
	survivor, err := s.reports.Create(ctx, b, ReportInput{TargetMessageID: &kept.ID, Reason: "rude"})
	require.NoError(t, err)

	summary, err := s.moderation.DeleteUser(ctx, root, a.UserID)
	require.NoError(t, err)
	assert.Equal(t, &CascadeSummary{Messages: 1, Matches: 2, Swipes: 3, Problems: 1, Reports: 3}, summary)

	_, err = s.store.Users().FindByID(ctx, a.UserID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = s.store.Matches().FindByID(ctx, ab.Match.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = s.store.Matches().FindByID(ctx, ac.Match.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = s.store.Matches().FindByID(ctx, bc.Match.ID)
	assert.NoError(t, err)
	_, err = s.store.Messages().FindByID(ctx, kept.ID)
	assert.NoError(t, err)
	_, err = s.store.Reports().FindByID(ctx, survivor.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), s.count(t, &model.Report{}))
	assert.Equal(t, int64(1), s.count(t, &model.Swipe{}))
	assert.Equal(t, int64(1), s.count(t, &model.ProblemPost{}))

	_, err = s.moderation.DeleteUser(ctx, root, root.UserID)
	assert.Equal(t, errors.KindInvalidOperation, errors.KindOf(err))
}
