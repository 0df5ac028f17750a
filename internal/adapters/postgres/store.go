package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

var (
	_ ports.QuoteStore    = (*Store)(nil)
	_ ports.VoteStore     = (*Store)(nil)
	_ ports.SpeakerStore  = (*Store)(nil)
	_ ports.UserStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
	_ ports.TxManager     = (*TxManager)(nil)
)

// Store implements every store port over one pool. Calls made with a
// context from TxManager.RunInTx join that transaction.
type Store struct {
	pool Pool
}

// New creates a Store over pool.
func New(pool Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) q(ctx context.Context) Querier {
	return QuerierFromCtx(ctx, s.pool)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "postgres"
}

// Check pings the database.
func (s *Store) Check(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	return nil
}

// exec builds and runs a statement, returning rows affected.
func (s *Store) exec(ctx context.Context, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := s.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
