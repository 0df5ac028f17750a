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

const searchComponent = "app.SearchService"

// SearchService runs filtered, fuzzy-ranked quote searches.
type SearchService struct {
	quotes   ports.QuoteStore
	speakers ports.SpeakerStore
	users    ports.UserStore
	matcher  ports.Matcher
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// SearchServiceConfig holds the dependencies of a SearchService.
type SearchServiceConfig struct {
	Quotes   ports.QuoteStore
	Speakers ports.SpeakerStore
	Users    ports.UserStore
	Matcher  ports.Matcher
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// NewSearchService panics when a dependency is missing.
func NewSearchService(cfg SearchServiceConfig) *SearchService {
	if cfg.Quotes == nil || cfg.Speakers == nil || cfg.Users == nil || cfg.Matcher == nil {
		panic("app: SearchService requires Quotes, Speakers, Users and Matcher")
	}

	return &SearchService{
		quotes:   cfg.Quotes,
		speakers: cfg.Speakers,
		users:    cfg.Users,
		matcher:  cfg.Matcher,
		metrics:  cfg.Metrics,
		logger:   componentLogger(cfg.Logger, searchComponent),
	}
}

// Search filters the store, ranks the candidates against the free-text
// query and returns one page. Ranking covers the whole filtered set before
// the page is cut.
func (s *SearchService) Search(ctx context.Context, f domain.SearchFilter) (result *domain.SearchResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "app.Search", attribute.Int("page", f.Page), attribute.Int("limit", f.Limit))
	defer func() { telemetry.End(span, err) }()

	if err = f.Validate(); err != nil {
		return nil, err
	}

	logger := scopedLogger(ctx, s.logger, searchComponent)

	var speakerQuoteIDs []int64

	if f.SpeakerID != nil {
		speakerQuoteIDs, err = s.quotes.QuoteIDsBySpeaker(ctx, *f.SpeakerID)
		if err != nil {
			return nil, fmt.Errorf("resolving speaker quotes: %w", err)
		}

		if len(speakerQuoteIDs) == 0 {
			logger.DebugContext(ctx, "speaker has no quotes", slog.Int64("speaker_id", *f.SpeakerID))
			s.metrics.SearchServed(metrics.SearchModeEmpty, 0)

			return domain.EmptySearchResult(f.Page, f.Limit), nil
		}
	}

	candidates, err := s.quotes.FindQuotes(ctx, domain.BuildSearchPredicate(&f, speakerQuoteIDs))
	if err != nil {
		return nil, fmt.Errorf("fetching candidates: %w", err)
	}

	var (
		ranked []domain.ScoredQuote
		mode   = metrics.SearchModeFiltered
	)

	if query := f.TrimmedQuery(); query == "" {
		ranked = domain.Unscored(candidates)
	} else {
		mode = metrics.SearchModeFuzzy

		ranked, err = s.matcher.Rank(ctx, candidates, query)
		if err != nil {
			return nil, fmt.Errorf("ranking candidates: %w", err)
		}
	}

	page, info := domain.Paginate(ranked, f.Page, f.Limit)
	s.metrics.SearchServed(mode, info.TotalResults)

	logger.DebugContext(ctx, "search served",
		slog.String("mode", mode),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", info.TotalResults),
	)

	return &domain.SearchResult{Quotes: page, Pagination: info}, nil
}

// Speakers is the speaker pick-list for the search form.
func (s *SearchService) Speakers(ctx context.Context) ([]domain.Speaker, error) {
	speakers, err := s.speakers.ListSpeakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing speakers: %w", err)
	}

	return speakers, nil
}

// Users is the submitter pick-list for the search form.
func (s *SearchService) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}
