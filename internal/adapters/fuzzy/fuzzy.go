// Package fuzzy ranks candidate quotes against a free-text query.
//
// Two engines implement ports.Matcher:
//   - levenshtein: token-level approximate matching, the default
//   - bleve: fuzzy match queries against a throwaway in-memory index
//
// Both report scores on the same scale: 0 is a perfect match, 1 is no
// match, and a candidate is kept only when its score clears the threshold.
package fuzzy

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

// Engine names accepted in search.engine.
const (
	EngineLevenshtein = "levenshtein"
	EngineBleve       = "bleve"
)

// Searchable field names, reported in ScoredQuote.MatchedFields.
const (
	FieldContent  = "content"
	FieldContext  = "context"
	FieldSpeakers = "speakers"
)

type field struct {
	name   string
	weight float64
	text   func(q *domain.Quote) string
}

// fieldsFor returns the searchable fields with weights normalised to sum 1.
func fieldsFor(w config.SearchWeights) []field {
	fields := []field{
		{name: FieldContent, weight: w.Content, text: func(q *domain.Quote) string { return q.Content }},
		{name: FieldContext, weight: w.Context, text: func(q *domain.Quote) string { return q.Context }},
		{name: FieldSpeakers, weight: w.Speakers, text: func(q *domain.Quote) string { return q.SpeakerNames() }},
	}

	var total float64
	for _, f := range fields {
		total += f.weight
	}

	if total <= 0 {
		return fields
	}

	for i := range fields {
		fields[i].weight /= total
	}

	return fields
}

// New builds the engine selected by cfg.Engine.
func New(cfg *config.SearchConfig, logger *slog.Logger) (ports.Matcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fields := fieldsFor(cfg.Weights)

	switch cfg.Engine {
	case "", EngineLevenshtein:
		return NewLevenshtein(fields, cfg.Threshold), nil
	case EngineBleve:
		return NewBleve(fields, cfg.Threshold, logger), nil
	default:
		return nil, fmt.Errorf("unknown search engine %q", cfg.Engine)
	}
}

type ranked struct {
	index   int
	score   float64
	matched []string
}

// collect orders hits by ascending score, ties by candidate position, and
// attaches the scores to the quotes.
func collect(candidates []domain.Quote, hits []ranked) []domain.ScoredQuote {
	sortRanked(hits)

	out := make([]domain.ScoredQuote, len(hits))
	for i, h := range hits {
		score := h.score
		out[i] = domain.ScoredQuote{
			Quote:         candidates[h.index],
			Score:         &score,
			MatchedFields: h.matched,
		}
	}

	return out
}

func sortRanked(hits []ranked) {
	slices.SortFunc(hits, func(a, b ranked) int {
		if c := cmp.Compare(a.score, b.score); c != 0 {
			return c
		}

		return cmp.Compare(a.index, b.index)
	})
}
