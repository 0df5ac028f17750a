package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

const userComponent = "app.UserService"

// UserService serves user profiles and the quotes each user submitted.
type UserService struct {
	users  ports.UserStore
	quotes ports.QuoteStore
	votes  ports.VoteStore
	logger *slog.Logger
}

// UserServiceConfig holds the dependencies of a UserService.
type UserServiceConfig struct {
	Users  ports.UserStore
	Quotes ports.QuoteStore
	Votes  ports.VoteStore
	Logger *slog.Logger
}

// NewUserService panics when a store is missing.
func NewUserService(cfg UserServiceConfig) *UserService {
	if cfg.Users == nil || cfg.Quotes == nil || cfg.Votes == nil {
		panic("app: UserService requires Users, Quotes and Votes")
	}

	return &UserService{
		users:  cfg.Users,
		quotes: cfg.Quotes,
		votes:  cfg.Votes,
		logger: componentLogger(cfg.Logger, userComponent),
	}
}

// Profile returns the user with their submission totals. The user lookup
// and both counts run concurrently; an unknown user fails the whole call
// with domain.ErrNotFound.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, quotes, votes, err := Parallel3(ctx,
		func(ctx context.Context) (*domain.User, error) { return s.users.GetUser(ctx, userID) },
		func(ctx context.Context) (int, error) { return s.quotes.CountQuotesBySubmitter(ctx, userID) },
		func(ctx context.Context) (domain.VoteCounts, error) {
			return s.votes.CountVotesBySubmitter(ctx, userID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("loading profile of user %s: %w", strconv.Quote(userID), err)
	}

	return &domain.UserProfile{User: *user, QuotesCount: quotes, Votes: votes}, nil
}

// Quotes returns one page of the user's submissions, newest first.
func (s *UserService) Quotes(ctx context.Context, userID string, page, limit int) ([]domain.Quote, error) {
	if page < 1 {
		return nil, domain.NewValidationErrorWithValue("page", "must be at least 1", page)
	}

	if limit < 1 || limit > domain.MaxSearchLimit {
		return nil, domain.NewValidationErrorWithValue("limit", "must be between 1 and 100", limit)
	}

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("getting user %s: %w", strconv.Quote(userID), err)
	}

	quotes, err := s.quotes.ListQuotesBySubmitter(ctx, userID, domain.NewPage(page, limit))
	if err != nil {
		return nil, fmt.Errorf("listing quotes of user %s: %w", strconv.Quote(userID), err)
	}

	s.logger.DebugContext(ctx, "listed user quotes", slog.String("user_id", userID), slog.Int("count", len(quotes)))

	return quotes, nil
}
