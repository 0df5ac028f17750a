package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

const quoteComponent = "app.QuoteService"

// QuoteService manages quotes and their speaker links.
type QuoteService struct {
	quotes   ports.QuoteStore
	speakers ports.SpeakerStore
	tx       ports.TxManager
	exec     *Executor
	logger   *slog.Logger
}

// QuoteServiceConfig holds the dependencies of a QuoteService.
type QuoteServiceConfig struct {
	Quotes   ports.QuoteStore
	Speakers ports.SpeakerStore
	Tx       ports.TxManager
	Logger   *slog.Logger
}

// NewQuoteService panics when a dependency is missing.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Quotes == nil || cfg.Speakers == nil || cfg.Tx == nil {
		panic("app: QuoteService requires Quotes, Speakers and Tx")
	}

	logger := componentLogger(cfg.Logger, quoteComponent)

	return &QuoteService{
		quotes:   cfg.Quotes,
		speakers: cfg.Speakers,
		tx:       cfg.Tx,
		exec:     NewExecutor(logger),
		logger:   logger,
	}
}

type quoteWrite struct {
	principal domain.Principal
	id        int64
	input     domain.QuoteInput
}

func (w *quoteWrite) toQuote() *domain.Quote {
	return &domain.Quote{
		ID:                 w.id,
		Content:            strings.TrimSpace(w.input.Content),
		Context:            strings.TrimSpace(w.input.Context),
		QuoteDate:          domain.NormalizeQuoteDate(w.input.QuoteDate, w.input.QuoteDatePrecision),
		QuoteDatePrecision: w.input.QuoteDatePrecision,
		SubmittedByID:      w.principal.UserID,
	}
}

// Create stores a new quote submitted by p.
func (s *QuoteService) Create(ctx context.Context, p domain.Principal, in domain.QuoteInput) (*domain.Quote, error) {
	return Execute(ctx, s.exec, Operation[quoteWrite, int64, *domain.Quote, *domain.Quote]{
		Name: "CreateQuote",
		Validate: func(ctx context.Context, w quoteWrite) error {
			if err := w.input.Validate(); err != nil {
				return err
			}

			return s.checkSpeakers(ctx, w.input.SpeakerIDs)
		},
		Perform: func(ctx context.Context, w quoteWrite) (int64, error) {
			var id int64

			err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
				var err error

				id, err = s.quotes.CreateQuote(ctx, w.toQuote(), w.input.SpeakerIDs)

				return err
			})

			return id, err
		},
		Verify:  s.verifyWritten,
		Respond: respondQuote,
	}, quoteWrite{principal: p, input: in})
}

// Update rewrites a quote. Only its submitter or an ADMIN may do so.
func (s *QuoteService) Update(ctx context.Context, p domain.Principal, id int64, in domain.QuoteInput) (*domain.Quote, error) {
	return Execute(ctx, s.exec, Operation[quoteWrite, int64, *domain.Quote, *domain.Quote]{
		Name: "UpdateQuote",
		Validate: func(ctx context.Context, w quoteWrite) error {
			if err := w.input.Validate(); err != nil {
				return err
			}

			existing, found, err := Parallel2(ctx,
				func(ctx context.Context) (*domain.Quote, error) { return s.quotes.GetQuote(ctx, w.id) },
				func(ctx context.Context) (int, error) { return s.speakers.CountExisting(ctx, w.input.SpeakerIDs) },
			)
			if err != nil {
				return err
			}

			if err := unknownSpeakers(w.input.SpeakerIDs, found); err != nil {
				return err
			}

			if !w.principal.CanModify(existing.SubmittedByID) {
				return domain.NewForbiddenError("update quote", "only the submitter or an admin may edit a quote")
			}

			return nil
		},
		Perform: func(ctx context.Context, w quoteWrite) (int64, error) {
			err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
				return s.quotes.UpdateQuote(ctx, w.toQuote(), w.input.SpeakerIDs)
			})

			return w.id, err
		},
		Verify:  s.verifyWritten,
		Respond: respondQuote,
	}, quoteWrite{principal: p, id: id, input: in})
}

func (s *QuoteService) checkSpeakers(ctx context.Context, ids []int64) error {
	n, err := s.speakers.CountExisting(ctx, ids)
	if err != nil {
		return fmt.Errorf("checking speakers: %w", err)
	}

	return unknownSpeakers(ids, n)
}

func unknownSpeakers(ids []int64, found int) error {
	if found != len(ids) {
		return domain.NewValidationErrorWithValue("speakerIds", "must reference existing speakers", ids)
	}

	return nil
}

var errQuoteWithoutSpeakers = errors.New("quote has no linked speakers")

func (s *QuoteService) verifyWritten(ctx context.Context, _ quoteWrite, id int64) (*domain.Quote, error) {
	q, err := s.quotes.GetQuote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("re-reading quote %d: %w", id, err)
	}

	if len(q.Speakers) < domain.MinQuoteSpeakers {
		return nil, errQuoteWithoutSpeakers
	}

	return q, nil
}

func respondQuote(_ context.Context, _ quoteWrite, q *domain.Quote) (*domain.Quote, error) {
	return q, nil
}

// Delete removes a quote with its votes. Only its submitter or an ADMIN
// may do so.
func (s *QuoteService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		q, err := s.quotes.GetQuote(ctx, id)
		if err != nil {
			return err
		}

		if !p.CanModify(q.SubmittedByID) {
			return domain.NewForbiddenError("delete quote", "only the submitter or an admin may delete a quote")
		}

		return s.quotes.DeleteQuote(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting quote %d: %w", id, err)
	}

	scopedLogger(ctx, s.logger, quoteComponent).InfoContext(ctx, "quote deleted",
		slog.Int64("quote_id", id),
		slog.String("user_id", p.UserID),
	)

	return nil
}

// Get returns one quote.
func (s *QuoteService) Get(ctx context.Context, id int64) (*domain.Quote, error) {
	q, err := s.quotes.GetQuote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quote %d: %w", id, err)
	}

	return q, nil
}

// Latest returns the newest quote, or nil for an empty store.
func (s *QuoteService) Latest(ctx context.Context) (*domain.Quote, error) {
	q, err := s.quotes.LatestQuote(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting latest quote: %w", err)
	}

	return q, nil
}

// List returns one page of the newest-first listing.
func (s *QuoteService) List(ctx context.Context, page, limit int) ([]domain.Quote, error) {
	if page < 1 {
		return nil, domain.NewValidationErrorWithValue("page", "must be at least 1", page)
	}

	if limit < 1 || limit > domain.MaxSearchLimit {
		return nil, domain.NewValidationErrorWithValue("limit", "must be between 1 and 100", limit)
	}

	quotes, err := s.quotes.ListQuotes(ctx, domain.NewPage(page, limit))
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	return quotes, nil
}

// Mine returns the quotes submitted by userID, newest first.
func (s *QuoteService) Mine(ctx context.Context, userID string) ([]domain.Quote, error) {
	quotes, err := s.quotes.FindQuotes(ctx, domain.Cmp{Field: domain.FieldSubmittedBy, Op: domain.OpEq, Value: userID})
	if err != nil {
		return nil, fmt.Errorf("listing quotes of user %s: %w", strconv.Quote(userID), err)
	}

	return quotes, nil
}
