package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/mocks"
)

var (
	ada   = domain.Principal{UserID: "u1", Name: "Ada", Role: domain.RoleUser}
	brian = domain.Principal{UserID: "u2", Name: "Brian", Role: domain.RoleAdmin}
)

func newQuoteService(t *testing.T) (*QuoteService, *mocks.MockQuoteStore, *mocks.MockSpeakerStore) {
	t.Helper()

	quotes := mocks.NewMockQuoteStore(t)
	speakers := mocks.NewMockSpeakerStore(t)

	svc := NewQuoteService(QuoteServiceConfig{
		Quotes:   quotes,
		Speakers: speakers,
		Tx:       passthroughTx(t),
		Logger:   discardLogger(),
	})

	return svc, quotes, speakers
}

func storedQuote(id int64, submitter string, speakers ...int64) *domain.Quote {
	q := &domain.Quote{ID: id, Content: "stored", SubmittedByID: submitter}
	for _, s := range speakers {
		q.Speakers = append(q.Speakers, domain.SpeakerRef{ID: s})
	}

	return q
}

func TestQuoteService_Create(t *testing.T) {
	svc, quotes, speakers := newQuoteService(t)

	date := time.Date(1950, time.July, 14, 0, 0, 0, 0, time.UTC)

	speakers.EXPECT().CountExisting(mock.Anything, []int64{1, 2}).Return(2, nil)
	quotes.EXPECT().CreateQuote(mock.Anything, mock.MatchedBy(func(q *domain.Quote) bool {
		return q.Content == "Be brief." &&
			q.SubmittedByID == "u1" &&
			q.QuoteDate != nil &&
			q.QuoteDate.Equal(time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC))
	}), []int64{1, 2}).Return(int64(10), nil)
	quotes.EXPECT().GetQuote(mock.Anything, int64(10)).Return(storedQuote(10, "u1", 1, 2), nil)

	q, err := svc.Create(context.Background(), ada, domain.QuoteInput{
		Content:            "  Be brief. ",
		QuoteDate:          &date,
		QuoteDatePrecision: domain.PrecisionYear,
		SpeakerIDs:         []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), q.ID)
}

func TestQuoteService_Create_Failures(t *testing.T) {
	valid := domain.QuoteInput{Content: "x", QuoteDatePrecision: domain.PrecisionUnknown, SpeakerIDs: []int64{1}}

	tests := []struct {
		name  string
		input domain.QuoteInput
		setup func(*mocks.MockQuoteStore, *mocks.MockSpeakerStore)
		step  ExecutionStep
	}{
		{
			name:  "no speakers",
			input: domain.QuoteInput{Content: "x", QuoteDatePrecision: domain.PrecisionUnknown},
			setup: func(*mocks.MockQuoteStore, *mocks.MockSpeakerStore) {},
			step:  StepValidate,
		},
		{
			name:  "unknown speaker",
			input: valid,
			setup: func(_ *mocks.MockQuoteStore, s *mocks.MockSpeakerStore) {
				s.EXPECT().CountExisting(mock.Anything, []int64{1}).Return(0, nil)
			},
			step: StepValidate,
		},
		{
			name:  "insert fails",
			input: valid,
			setup: func(q *mocks.MockQuoteStore, s *mocks.MockSpeakerStore) {
				s.EXPECT().CountExisting(mock.Anything, []int64{1}).Return(1, nil)
				q.EXPECT().CreateQuote(mock.Anything, mock.Anything, []int64{1}).
					Return(int64(0), domain.NewNotFoundError("user", "u1"))
			},
			step: StepPerform,
		},
		{
			name:  "written quote lost its speakers",
			input: valid,
			setup: func(q *mocks.MockQuoteStore, s *mocks.MockSpeakerStore) {
				s.EXPECT().CountExisting(mock.Anything, []int64{1}).Return(1, nil)
				q.EXPECT().CreateQuote(mock.Anything, mock.Anything, []int64{1}).Return(int64(3), nil)
				q.EXPECT().GetQuote(mock.Anything, int64(3)).Return(storedQuote(3, "u1"), nil)
			},
			step: StepVerify,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, quotes, speakers := newQuoteService(t)
			tt.setup(quotes, speakers)

			_, err := svc.Create(context.Background(), ada, tt.input)
			require.Error(t, err)

			step, ok := FailedStep(err)
			require.True(t, ok)
			assert.Equal(t, tt.step, step)
		})
	}
}

func TestQuoteService_Update_Permissions(t *testing.T) {
	in := domain.QuoteInput{Content: "edited", QuoteDatePrecision: domain.PrecisionUnknown, SpeakerIDs: []int64{1}}

	t.Run("other user is forbidden", func(t *testing.T) {
		svc, quotes, speakers := newQuoteService(t)
		quotes.EXPECT().GetQuote(mock.Anything, int64(4)).Return(storedQuote(4, "u2", 1), nil)
		speakers.EXPECT().CountExisting(mock.Anything, []int64{1}).Return(1, nil)

		_, err := svc.Update(context.Background(), ada, 4, in)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin may edit", func(t *testing.T) {
		svc, quotes, speakers := newQuoteService(t)
		quotes.EXPECT().GetQuote(mock.Anything, int64(4)).Return(storedQuote(4, "u1", 1), nil)
		speakers.EXPECT().CountExisting(mock.Anything, []int64{1}).Return(1, nil)
		quotes.EXPECT().UpdateQuote(mock.Anything, mock.MatchedBy(func(q *domain.Quote) bool {
			return q.ID == 4 && q.Content == "edited" && q.QuoteDate == nil
		}), []int64{1}).Return(nil)

		q, err := svc.Update(context.Background(), brian, 4, in)
		require.NoError(t, err)
		assert.Equal(t, int64(4), q.ID)
	})

	t.Run("missing quote", func(t *testing.T) {
		svc, quotes, speakers := newQuoteService(t)
		quotes.EXPECT().GetQuote(mock.Anything, int64(4)).Return(nil, domain.NewNotFoundError("quote", "4"))
		speakers.EXPECT().CountExisting(mock.Anything, []int64{1}).Return(1, nil).Maybe()

		_, err := svc.Update(context.Background(), ada, 4, in)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestQuoteService_Delete(t *testing.T) {
	t.Run("submitter deletes", func(t *testing.T) {
		svc, quotes, _ := newQuoteService(t)
		quotes.EXPECT().GetQuote(mock.Anything, int64(5)).Return(storedQuote(5, "u1", 1), nil)
		quotes.EXPECT().DeleteQuote(mock.Anything, int64(5)).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), ada, 5))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		svc, quotes, _ := newQuoteService(t)
		quotes.EXPECT().GetQuote(mock.Anything, int64(5)).Return(storedQuote(5, "u3", 1), nil)

		require.ErrorIs(t, svc.Delete(context.Background(), ada, 5), domain.ErrForbidden)
	})
}

func TestQuoteService_Reads(t *testing.T) {
	svc, quotes, _ := newQuoteService(t)

	quotes.EXPECT().GetQuote(mock.Anything, int64(1)).Return(storedQuote(1, "u1", 1), nil)
	quotes.EXPECT().LatestQuote(mock.Anything).Return(nil, nil)
	quotes.EXPECT().ListQuotes(mock.Anything, domain.Page{Limit: 20, Offset: 40}).Return([]domain.Quote{}, nil)
	quotes.EXPECT().FindQuotes(mock.Anything, domain.Cmp{Field: domain.FieldSubmittedBy, Op: domain.OpEq, Value: "u1"}).
		Return([]domain.Quote{*storedQuote(1, "u1", 1)}, nil)

	q, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.ID)

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)

	list, err := svc.List(context.Background(), 3, 20)
	require.NoError(t, err)
	assert.Empty(t, list)

	mine, err := svc.Mine(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.List(context.Background(), 0, 20)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.List(context.Background(), 1, 500)
	require.ErrorIs(t, err, domain.ErrValidation)
}
