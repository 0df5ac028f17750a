// Package metrics exposes the domain counters scraped at /-/metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hearsay"

// Search modes reported on hearsay_search_requests_total.
const (
	SearchModeFuzzy    = "fuzzy"
	SearchModeFiltered = "filtered"
	SearchModeEmpty    = "short_circuit"
)

// Metrics holds the domain collectors. All methods are safe on a nil
// receiver so tests and tools can run without a registry.
type Metrics struct {
	votesCast      *prometheus.CounterVec
	searches       *prometheus.CounterVec
	searchResults  prometheus.Histogram
	rankingQuotes  prometheus.Histogram
	guildDecisions *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		votesCast: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_cast_total",
			Help:      "Votes cast, by resulting action.",
		}, []string{"action"}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Quote searches, by execution mode.",
		}, []string{"mode"}),
		searchResults: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Total matches per quote search before pagination.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		}),
		rankingQuotes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranking_year_quotes",
			Help:      "Quotes loaded per year ranking.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 7),
		}),
		guildDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guild_membership_checks_total",
			Help:      "Guild membership decisions, by outcome and cache use.",
		}, []string{"outcome", "cached"}),
	}
}

// VoteCast counts one cast by its action (created, updated, removed).
func (m *Metrics) VoteCast(action string) {
	if m == nil {
		return
	}

	m.votesCast.WithLabelValues(action).Inc()
}

// SearchServed counts one search and observes its total match count.
func (m *Metrics) SearchServed(mode string, total int) {
	if m == nil {
		return
	}

	m.searches.WithLabelValues(mode).Inc()
	m.searchResults.Observe(float64(total))
}

// RankingLoaded observes the number of quotes ranked for one year.
func (m *Metrics) RankingLoaded(n int) {
	if m == nil {
		return
	}

	m.rankingQuotes.Observe(float64(n))
}

// GuildChecked counts a membership decision.
func (m *Metrics) GuildChecked(member, cached bool) {
	if m == nil {
		return
	}

	outcome := "denied"
	if member {
		outcome = "allowed"
	}

	cachedLabel := "false"
	if cached {
		cachedLabel = "true"
	}

	m.guildDecisions.WithLabelValues(outcome, cachedLabel).Inc()
}
