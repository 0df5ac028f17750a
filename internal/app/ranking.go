package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/metrics"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

const rankingComponent = "app.RankingService"

// RankingService builds per-year leaderboards by net vote score. Years are
// submission years, not quote dates.
type RankingService struct {
	quotes  ports.QuoteStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// RankingServiceConfig holds the dependencies of a RankingService.
type RankingServiceConfig struct {
	Quotes  ports.QuoteStore
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewRankingService panics without a quote store.
func NewRankingService(cfg RankingServiceConfig) *RankingService {
	if cfg.Quotes == nil {
		panic("app: RankingService requires Quotes")
	}

	return &RankingService{
		quotes:  cfg.Quotes,
		metrics: cfg.Metrics,
		logger:  componentLogger(cfg.Logger, rankingComponent),
	}
}

// AvailableYears lists the years with at least one quote, newest first.
func (s *RankingService) AvailableYears(ctx context.Context) ([]domain.YearCount, error) {
	years, err := s.quotes.YearCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting quotes per year: %w", err)
	}

	return years, nil
}

// RankedByYear ranks the quotes submitted in year by net score. A zero
// limit means the default.
func (s *RankingService) RankedByYear(ctx context.Context, year, limit int) ([]domain.RankedQuote, error) {
	limit, err := domain.ValidateRankingRequest(year, limit)
	if err != nil {
		return nil, err
	}

	quotes, err := s.quotes.QuotesCreatedIn(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("loading quotes for %d: %w", year, err)
	}

	s.metrics.RankingLoaded(len(quotes))
	scopedLogger(ctx, s.logger, rankingComponent).DebugContext(ctx, "ranking year",
		slog.Int("year", year),
		slog.Int("quotes", len(quotes)),
		slog.Int("limit", limit),
	)

	return domain.Rank(quotes, limit), nil
}
