package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.VoteCast("created")
	m.VoteCast("created")
	m.VoteCast("removed")
	m.SearchServed(SearchModeFuzzy, 3)
	m.SearchServed(SearchModeEmpty, 0)
	m.GuildChecked(true, false)

	assert.InDelta(t, 2, testutil.ToFloat64(m.votesCast.WithLabelValues("created")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.votesCast.WithLabelValues("removed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.searches.WithLabelValues(SearchModeFuzzy)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.guildDecisions.WithLabelValues("allowed", "false")), 0)

	expected := `
# HELP hearsay_search_requests_total Quote searches, by execution mode.
# TYPE hearsay_search_requests_total counter
hearsay_search_requests_total{mode="fuzzy"} 1
hearsay_search_requests_total{mode="short_circuit"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "hearsay_search_requests_total"))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.VoteCast("created")
		m.SearchServed(SearchModeFiltered, 1)
		m.RankingLoaded(4)
		m.GuildChecked(false, true)
	})
}
