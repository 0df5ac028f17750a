package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/metrics"
	"github.com/hearsayhub/hearsay-hub/internal/platform/telemetry"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

const voteComponent = "app.VoteService"

// VoteService casts votes and reports per-quote vote totals.
type VoteService struct {
	votes   ports.VoteStore
	tx      ports.TxManager
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// VoteServiceConfig holds the dependencies of a VoteService.
type VoteServiceConfig struct {
	Votes   ports.VoteStore
	Tx      ports.TxManager
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewVoteService panics when a store is missing.
func NewVoteService(cfg VoteServiceConfig) *VoteService {
	if cfg.Votes == nil || cfg.Tx == nil {
		panic("app: VoteService requires Votes and Tx")
	}

	return &VoteService{
		votes:   cfg.Votes,
		tx:      cfg.Tx,
		metrics: cfg.Metrics,
		logger:  componentLogger(cfg.Logger, voteComponent),
	}
}

// CastVote toggles the user's vote on a quote: no vote inserts, the same
// type removes, the other type switches in place.
//
// A concurrent double submit can lose the insert race to the unique
// (quote, user) constraint. The cast is then replayed once in a fresh
// transaction, where it sees the winning row and toggles against it.
func (s *VoteService) CastVote(ctx context.Context, quoteID int64, userID string, voteType domain.VoteType) (action domain.VoteAction, err error) {
	ctx, span := telemetry.StartSpan(ctx, "app.CastVote",
		attribute.Int64("quote_id", quoteID),
		attribute.String("vote_type", string(voteType)),
	)
	defer func() { telemetry.End(span, err) }()

	if _, err = domain.ParseVoteType(string(voteType)); err != nil {
		return "", err
	}

	if quoteID <= 0 {
		return "", domain.NewValidationErrorWithValue("quoteId", "must be positive", quoteID)
	}

	logger := scopedLogger(ctx, s.logger, voteComponent).With(
		slog.Int64("quote_id", quoteID),
		slog.String("user_id", userID),
	)

	action, err = s.castOnce(ctx, quoteID, userID, voteType)
	if domain.IsConflict(err) {
		logger.DebugContext(ctx, "vote insert lost a race, replaying")
		action, err = s.castOnce(ctx, quoteID, userID, voteType)
	}

	if err != nil {
		return "", fmt.Errorf("casting vote: %w", err)
	}

	s.metrics.VoteCast(string(action))
	logger.InfoContext(ctx, "vote cast", slog.String("action", string(action)))

	return action, nil
}

func (s *VoteService) castOnce(ctx context.Context, quoteID int64, userID string, voteType domain.VoteType) (domain.VoteAction, error) {
	var action domain.VoteAction

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.votes.FindVote(ctx, quoteID, userID)
		if err != nil {
			return err
		}

		action = domain.ResolveCast(existing, voteType)

		switch action {
		case domain.VoteCreated:
			return s.votes.InsertVote(ctx, quoteID, userID, voteType)
		case domain.VoteRemoved:
			return s.votes.DeleteVote(ctx, quoteID, userID)
		default:
			return s.votes.UpdateVoteType(ctx, quoteID, userID, voteType)
		}
	})

	return action, err
}

// VoteStats returns the quote's totals and the caller's own vote. The three
// reads run concurrently; any failure fails the whole call.
func (s *VoteService) VoteStats(ctx context.Context, quoteID int64, userID string) (*domain.VoteStats, error) {
	up, down, own, err := Parallel3(ctx,
		func(ctx context.Context) (int, error) { return s.votes.CountVotes(ctx, quoteID, domain.VoteUp) },
		func(ctx context.Context) (int, error) { return s.votes.CountVotes(ctx, quoteID, domain.VoteDown) },
		func(ctx context.Context) (*domain.Vote, error) {
			if userID == "" {
				return nil, nil //nolint:nilnil // anonymous caller has no vote
			}

			return s.votes.FindVote(ctx, quoteID, userID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("loading vote stats: %w", err)
	}

	stats := &domain.VoteStats{Upvotes: up, Downvotes: down}
	if own != nil {
		stats.UserVote = &own.Type
	}

	return stats, nil
}

// Voters lists who cast voteType on the quote, newest first.
func (s *VoteService) Voters(ctx context.Context, quoteID int64, voteType domain.VoteType) ([]domain.Voter, error) {
	if _, err := domain.ParseVoteType(string(voteType)); err != nil {
		return nil, err
	}

	voters, err := s.votes.ListVoters(ctx, quoteID, voteType)
	if err != nil {
		return nil, fmt.Errorf("listing voters: %w", err)
	}

	return voters, nil
}
