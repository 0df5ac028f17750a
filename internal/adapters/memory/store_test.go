package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func seeded(t *testing.T) (*Store, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, s.EnsureUser(ctx, domain.Principal{UserID: "u1", Name: "Ada", Role: domain.RoleUser}))
	require.NoError(t, s.EnsureUser(ctx, domain.Principal{UserID: "u2", Name: "Brian", Role: domain.RoleAdmin}))

	_, err := s.CreateSpeaker(ctx, "Niels Bohr", "u1")
	require.NoError(t, err)
	_, err = s.CreateSpeaker(ctx, "Albert Einstein", "u1")
	require.NoError(t, err)

	return s, clock
}

func createQuote(t *testing.T, s *Store, content string, speakers ...int64) int64 {
	t.Helper()

	id, err := s.CreateQuote(context.Background(), &domain.Quote{
		Content:            content,
		QuoteDatePrecision: domain.PrecisionUnknown,
		SubmittedByID:      "u1",
	}, speakers)
	require.NoError(t, err)

	return id
}

func TestCreateQuote_HydratesSpeakersAndSubmitter(t *testing.T) {
	s, _ := seeded(t)

	id := createQuote(t, s, "Imagination is more important than knowledge.", 1, 2)

	q, err := s.GetQuote(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Ada", q.SubmittedByName)
	assert.Equal(t, []domain.SpeakerRef{{ID: 2, Name: "Albert Einstein"}, {ID: 1, Name: "Niels Bohr"}}, q.Speakers)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), q.CreatedAt)
	assert.Nil(t, q.UpdatedAt)
}

func TestCreateQuote_UnknownSpeaker(t *testing.T) {
	s, _ := seeded(t)

	_, err := s.CreateQuote(context.Background(), &domain.Quote{Content: "x", SubmittedByID: "u1"}, []int64{99})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindQuotes_NewestFirstWithPredicate(t *testing.T) {
	s, clock := seeded(t)

	first := createQuote(t, s, "first", 1)
	clock.Advance(time.Hour)
	second := createQuote(t, s, "second", 2)
	clock.Advance(time.Hour)
	third := createQuote(t, s, "third", 1)

	all, err := s.FindQuotes(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{third, second, first}, []int64{all[0].ID, all[1].ID, all[2].ID})

	ids, err := s.QuoteIDsBySpeaker(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{first, third}, ids)

	filtered, err := s.FindQuotes(context.Background(), domain.In{Field: domain.FieldQuoteID, Values: []any{first}})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "first", filtered[0].Content)
}

func TestLatestAndList(t *testing.T) {
	s, clock := seeded(t)

	latest, err := s.LatestQuote(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)

	createQuote(t, s, "a", 1)
	clock.Advance(time.Minute)
	createQuote(t, s, "b", 1)
	clock.Advance(time.Minute)
	createQuote(t, s, "c", 1)

	latest, err = s.LatestQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c", latest.Content)

	page, err := s.ListQuotes(context.Background(), domain.Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Content)
	assert.Equal(t, "a", page[1].Content)

	empty, err := s.ListQuotes(context.Background(), domain.Page{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateAndDeleteQuote(t *testing.T) {
	s, clock := seeded(t)
	ctx := context.Background()

	id := createQuote(t, s, "before", 1)
	require.NoError(t, s.InsertVote(ctx, id, "u2", domain.VoteUp))

	clock.Advance(time.Hour)
	require.NoError(t, s.UpdateQuote(ctx, &domain.Quote{ID: id, Content: "after"}, []int64{2}))

	q, err := s.GetQuote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "after", q.Content)
	assert.Equal(t, []int64{2}, q.SpeakerIDs())
	require.NotNil(t, q.UpdatedAt)

	require.NoError(t, s.DeleteQuote(ctx, id))

	_, err = s.GetQuote(ctx, id)
	require.ErrorIs(t, err, domain.ErrNotFound)

	v, err := s.FindVote(ctx, id, "u2")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.ErrorIs(t, s.DeleteQuote(ctx, id), domain.ErrNotFound)
}

func TestVotes(t *testing.T) {
	s, clock := seeded(t)
	ctx := context.Background()

	id := createQuote(t, s, "q", 1)

	require.NoError(t, s.InsertVote(ctx, id, "u1", domain.VoteUp))
	clock.Advance(time.Minute)
	require.NoError(t, s.InsertVote(ctx, id, "u2", domain.VoteUp))

	err := s.InsertVote(ctx, id, "u1", domain.VoteDown)
	require.ErrorIs(t, err, domain.ErrConflict)

	err = s.InsertVote(ctx, 999, "u1", domain.VoteUp)
	require.ErrorIs(t, err, domain.ErrNotFound)

	up, err := s.CountVotes(ctx, id, domain.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, 2, up)

	voters, err := s.ListVoters(ctx, id, domain.VoteUp)
	require.NoError(t, err)
	require.Len(t, voters, 2)
	assert.Equal(t, "Brian", voters[0].Name)
	assert.Equal(t, "Ada", voters[1].Name)

	require.NoError(t, s.UpdateVoteType(ctx, id, "u1", domain.VoteDown))
	down, err := s.CountVotes(ctx, id, domain.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, 1, down)

	require.NoError(t, s.DeleteVote(ctx, id, "u1"))
	v, err := s.FindVote(ctx, id, "u1")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.ErrorIs(t, s.DeleteVote(ctx, id, "u1"), domain.ErrConflict, "already removed")
	require.ErrorIs(t, s.UpdateVoteType(ctx, id, "u1", domain.VoteUp), domain.ErrConflict)
}

func TestQuotesCreatedInAndYearCounts(t *testing.T) {
	s, clock := seeded(t)
	ctx := context.Background()

	old := createQuote(t, s, "2024", 1)
	require.NoError(t, s.InsertVote(ctx, old, "u1", domain.VoteDown))

	clock.Advance(365 * 24 * time.Hour)
	createQuote(t, s, "2025a", 1)
	createQuote(t, s, "2025b", 2)

	quotes, err := s.QuotesCreatedIn(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, old, quotes[0].ID)
	require.Len(t, quotes[0].Votes, 1)
	assert.Equal(t, domain.VoteDown, quotes[0].Votes[0].Type)

	counts, err := s.YearCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.YearCount{{Year: 2025, Count: 2}, {Year: 2024, Count: 1}}, counts)
}

func TestSpeakers(t *testing.T) {
	s, _ := seeded(t)
	ctx := context.Background()

	list, err := s.ListSpeakers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Albert Einstein", list[0].Name)
	assert.Equal(t, "Ada", list[0].CreatedByName)

	_, err = s.CreateSpeaker(ctx, "Niels Bohr", "u2")
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = s.RenameSpeaker(ctx, 1, "Albert Einstein")
	require.ErrorIs(t, err, domain.ErrConflict)

	renamed, err := s.RenameSpeaker(ctx, 1, "N. Bohr")
	require.NoError(t, err)
	assert.Equal(t, "N. Bohr", renamed.Name)

	n, err := s.CountExisting(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	createQuote(t, s, "linked", 1)
	require.ErrorIs(t, s.DeleteSpeaker(ctx, 1), domain.ErrConflict)
	require.NoError(t, s.DeleteSpeaker(ctx, 2))
	require.ErrorIs(t, s.DeleteSpeaker(ctx, 2), domain.ErrNotFound)
}

func TestUsers(t *testing.T) {
	s, _ := seeded(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureUser(ctx, domain.Principal{UserID: "u1", Name: "Ada L."}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{
		{ID: "u1", Name: "Ada L.", Role: domain.RoleUser},
		{ID: "u2", Name: "Brian", Role: domain.RoleAdmin},
	}, users)
}

func TestGetUser(t *testing.T) {
	s, _ := seeded(t)

	u, err := s.GetUser(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "u2", Name: "Brian", Role: domain.RoleAdmin}, *u)

	_, err = s.GetUser(context.Background(), "u9")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmitterTotals(t *testing.T) {
	s, clock := seeded(t)
	ctx := context.Background()

	older := createQuote(t, s, "older", 1)
	clock.Advance(time.Minute)
	newer := createQuote(t, s, "newer", 1)
	clock.Advance(time.Minute)

	other, err := s.CreateQuote(ctx, &domain.Quote{Content: "Brian's", SubmittedByID: "u2"}, []int64{2})
	require.NoError(t, err)

	require.NoError(t, s.InsertVote(ctx, older, "u2", domain.VoteUp))
	require.NoError(t, s.InsertVote(ctx, newer, "u2", domain.VoteDown))
	require.NoError(t, s.InsertVote(ctx, newer, "u1", domain.VoteUp))
	require.NoError(t, s.InsertVote(ctx, other, "u1", domain.VoteDown))

	n, err := s.CountQuotesBySubmitter(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	counts, err := s.CountVotesBySubmitter(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.VoteCounts{Upvotes: 2, Downvotes: 1}, counts)

	counts, err = s.CountVotesBySubmitter(ctx, "u9")
	require.NoError(t, err)
	assert.Zero(t, counts)

	page, err := s.ListQuotesBySubmitter(ctx, "u1", domain.Page{Limit: 1, Offset: 0})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, newer, page[0].ID)

	page, err = s.ListQuotesBySubmitter(ctx, "u1", domain.Page{Limit: 5, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, older, page[0].ID)

	page, err = s.ListQuotesBySubmitter(ctx, "u1", domain.Page{Limit: 5, Offset: 2})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	s, _ := seeded(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.CreateQuote(ctx, &domain.Quote{Content: "x", SubmittedByID: "u1"}, []int64{1}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := s.FindQuotes(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRunInTx_RollsBackOnPanic(t *testing.T) {
	s, _ := seeded(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.RunInTx(ctx, func(ctx context.Context) error {
			_, _ = s.CreateSpeaker(ctx, "Grace Hopper", "u1")
			panic("boom")
		})
	})

	list, err := s.ListSpeakers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRunInTx_RollbackKeepsOutsideWrites(t *testing.T) {
	s, _ := seeded(t)
	ctx := context.Background()

	started := make(chan struct{})
	outside := make(chan error, 1)

	err := s.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.CreateSpeaker(txCtx, "Rolled Back", "u1"); err != nil {
			return err
		}

		go func() {
			close(started)

			if err := s.EnsureUser(ctx, domain.Principal{UserID: "u3", Name: "Carol"}); err != nil {
				outside <- err
				return
			}

			_, err := s.CreateSpeaker(ctx, "Marie Curie", "u3")
			outside <- err
		}()

		<-started
		time.Sleep(20 * time.Millisecond)

		return errors.New("boom")
	})
	require.Error(t, err)
	require.NoError(t, <-outside)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	speakers, err := s.ListSpeakers(ctx)
	require.NoError(t, err)
	require.Len(t, speakers, 3)

	names := []string{speakers[0].Name, speakers[1].Name, speakers[2].Name}
	assert.Contains(t, names, "Marie Curie")
	assert.NotContains(t, names, "Rolled Back")
}

func TestRunInTx_Nested(t *testing.T) {
	s, _ := seeded(t)
	ctx := context.Background()

	err := s.RunInTx(ctx, func(ctx context.Context) error {
		return s.RunInTx(ctx, func(ctx context.Context) error {
			_, err := s.CreateSpeaker(ctx, "Grace Hopper", "u1")
			return err
		})
	})
	require.NoError(t, err)

	list, err := s.ListSpeakers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRunInTx_Commits(t *testing.T) {
	s, _ := seeded(t)
	ctx := context.Background()

	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.CreateSpeaker(ctx, "Grace Hopper", "u1")
		return err
	}))

	list, err := s.ListSpeakers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
