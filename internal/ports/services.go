// Package ports defines the contracts between the application services and
// the adapters that back them.
//
// Port conventions:
//   - Context as first parameter on anything that may block
//   - Domain types in and out, never rows or wire DTOs
//   - Errors wrap domain sentinels (ErrNotFound, ErrConflict, ...)
package ports

import (
	"context"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// QuoteStore reads and writes quotes with their speaker links.
type QuoteStore interface {
	// FindQuotes returns every quote matching pred, newest first, with
	// speakers and submitter name attached. A nil pred matches all quotes.
	FindQuotes(ctx context.Context, pred domain.Predicate) ([]domain.Quote, error)

	// QuoteIDsBySpeaker resolves the quotes linked to a speaker.
	QuoteIDsBySpeaker(ctx context.Context, speakerID int64) ([]int64, error)

	// GetQuote returns domain.ErrNotFound when the quote does not exist.
	GetQuote(ctx context.Context, id int64) (*domain.Quote, error)

	// LatestQuote returns nil, nil for an empty store.
	LatestQuote(ctx context.Context) (*domain.Quote, error)

	// ListQuotes returns one offset window of the newest-first listing.
	ListQuotes(ctx context.Context, page domain.Page) ([]domain.Quote, error)

	// ListQuotesBySubmitter is ListQuotes restricted to one submitter.
	ListQuotesBySubmitter(ctx context.Context, userID string, page domain.Page) ([]domain.Quote, error)

	// CountQuotesBySubmitter counts the quotes a user submitted.
	CountQuotesBySubmitter(ctx context.Context, userID string) (int, error)

	// CreateQuote inserts the quote row and its speaker links. Callers run
	// it inside TxManager.RunInTx.
	CreateQuote(ctx context.Context, q *domain.Quote, speakerIDs []int64) (int64, error)

	// UpdateQuote rewrites the quote row and replaces its speaker links.
	// The submitter never changes; q.SubmittedByID is ignored.
	UpdateQuote(ctx context.Context, q *domain.Quote, speakerIDs []int64) error

	// DeleteQuote removes the quote; links and votes go with it.
	DeleteQuote(ctx context.Context, id int64) error

	// QuotesCreatedIn bulk-loads the quotes submitted in a calendar year
	// together with their full vote sets, newest first.
	QuotesCreatedIn(ctx context.Context, year int) ([]domain.QuoteWithVotes, error)

	// YearCounts groups quotes by submission year, descending.
	YearCounts(ctx context.Context) ([]domain.YearCount, error)
}

// VoteStore reads and writes individual vote rows. The store enforces one
// row per (quote, user); a concurrent duplicate insert fails with
// domain.ErrConflict.
type VoteStore interface {
	// FindVote returns nil, nil when the user has not voted on the quote.
	FindVote(ctx context.Context, quoteID int64, userID string) (*domain.Vote, error)
	InsertVote(ctx context.Context, quoteID int64, userID string, voteType domain.VoteType) error

	// UpdateVoteType and DeleteVote return domain.ErrConflict when the row
	// no longer exists.
	UpdateVoteType(ctx context.Context, quoteID int64, userID string, voteType domain.VoteType) error
	DeleteVote(ctx context.Context, quoteID int64, userID string) error

	// CountVotes counts votes of one type on a quote.
	CountVotes(ctx context.Context, quoteID int64, voteType domain.VoteType) (int, error)

	// CountVotesBySubmitter totals the votes received on every quote the
	// user submitted.
	CountVotesBySubmitter(ctx context.Context, userID string) (domain.VoteCounts, error)

	// ListVoters returns the voters of one type, newest vote first.
	ListVoters(ctx context.Context, quoteID int64, voteType domain.VoteType) ([]domain.Voter, error)
}

// SpeakerStore manages speakers.
type SpeakerStore interface {
	// ListSpeakers returns all speakers ordered by name.
	ListSpeakers(ctx context.Context) ([]domain.Speaker, error)
	GetSpeaker(ctx context.Context, id int64) (*domain.Speaker, error)

	// CreateSpeaker returns domain.ErrConflict for a duplicate name.
	CreateSpeaker(ctx context.Context, name, createdByID string) (*domain.Speaker, error)
	RenameSpeaker(ctx context.Context, id int64, name string) (*domain.Speaker, error)
	DeleteSpeaker(ctx context.Context, id int64) error

	// CountExisting reports how many of ids refer to existing speakers.
	CountExisting(ctx context.Context, ids []int64) (int, error)
}

// UserStore exposes the users referenced by quotes and votes.
type UserStore interface {
	// ListUsers returns all users ordered by name.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUser returns domain.ErrNotFound when the user does not exist.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// EnsureUser records the principal so it can be referenced as a
	// submitter or voter. Existing rows get their display name refreshed.
	EnsureUser(ctx context.Context, p domain.Principal) error
}

// TxManager runs fn inside one transaction. Stores called with the context
// passed to fn take part in it. Any error or panic from fn rolls back.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Matcher ranks quotes against a free-text query. Results are ordered by
// ascending score (0 is a perfect match); candidates that do not clear the
// configured threshold are left out.
type Matcher interface {
	Rank(ctx context.Context, candidates []domain.Quote, query string) ([]domain.ScoredQuote, error)
}

// GuildMembership answers whether a user belongs to the community the
// service is restricted to.
type GuildMembership interface {
	IsMember(ctx context.Context, userID string) (bool, error)
}
