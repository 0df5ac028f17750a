package fuzzy

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/platform/config"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

func searchConfig(engine string) *config.SearchConfig {
	return &config.SearchConfig{
		Engine:    engine,
		Threshold: 0.4,
		Weights:   config.SearchWeights{Content: 0.7, Context: 0.2, Speakers: 0.1},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func corpus() []domain.Quote {
	return []domain.Quote{
		{
			ID:       1,
			Content:  "Imagination is more important than knowledge.",
			Speakers: []domain.SpeakerRef{{ID: 1, Name: "Albert Einstein"}},
		},
		{
			ID:       2,
			Content:  "The only thing we have to fear is fear itself.",
			Context:  "First inaugural address",
			Speakers: []domain.SpeakerRef{{ID: 2, Name: "Franklin Roosevelt"}},
		},
		{
			ID:       3,
			Content:  "Stay hungry, stay foolish.",
			Speakers: []domain.SpeakerRef{{ID: 3, Name: "Steve Jobs"}},
		},
	}
}

func ids(results []domain.ScoredQuote) []int64 {
	out := make([]int64, len(results))
	for i, r := range results {
		out[i] = r.ID
	}

	return out
}

func TestNew(t *testing.T) {
	tests := []struct {
		engine  string
		want    any
		wantErr bool
	}{
		{engine: "", want: &Levenshtein{}},
		{engine: EngineLevenshtein, want: &Levenshtein{}},
		{engine: EngineBleve, want: &Bleve{}},
		{engine: "lucene", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			m, err := New(searchConfig(tt.engine), discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, m)
		})
	}
}

func TestFieldsFor_NormalisesWeights(t *testing.T) {
	fields := fieldsFor(config.SearchWeights{Content: 7, Context: 2, Speakers: 1})

	require.Len(t, fields, 3)
	assert.InDelta(t, 0.7, fields[0].weight, 1e-9)
	assert.InDelta(t, 0.2, fields[1].weight, 1e-9)
	assert.InDelta(t, 0.1, fields[2].weight, 1e-9)
}

func TestLevenshtein_MisspelledWordMatches(t *testing.T) {
	m, err := New(searchConfig(EngineLevenshtein), discardLogger())
	require.NoError(t, err)

	results, err := m.Rank(context.Background(), corpus(), "imporant")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].ID)
	require.NotNil(t, results[0].Score)
	assert.Less(t, *results[0].Score, 1.0)
	assert.Equal(t, []string{FieldContent}, results[0].MatchedFields)
}

func TestLevenshtein_SpeakerAndContext(t *testing.T) {
	m, err := New(searchConfig(EngineLevenshtein), discardLogger())
	require.NoError(t, err)

	results, err := m.Rank(context.Background(), corpus(), "einstien")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(results))
	assert.Equal(t, []string{FieldSpeakers}, results[0].MatchedFields)

	results, err = m.Rank(context.Background(), corpus(), "inaugural")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(results))
}

func TestLevenshtein_NoMatch(t *testing.T) {
	m, err := New(searchConfig(EngineLevenshtein), discardLogger())
	require.NoError(t, err)

	results, err := m.Rank(context.Background(), corpus(), "xylophone")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestLevenshtein_OrdersByScoreThenInput(t *testing.T) {
	quotes := []domain.Quote{
		{ID: 10, Content: "fear of the unknown"},
		{ID: 11, Content: "feat of strength"},
		{ID: 12, Content: "nothing to fear"},
	}

	m, err := New(searchConfig(EngineLevenshtein), discardLogger())
	require.NoError(t, err)

	results, err := m.Rank(context.Background(), quotes, "fear")
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 12, 11}, ids(results))
	assert.Equal(t, *results[0].Score, *results[1].Score)
	assert.Less(t, *results[1].Score, *results[2].Score)
}

func TestLevenshtein_CancelledContext(t *testing.T) {
	m := NewLevenshtein(fieldsFor(config.SearchWeights{Content: 1}), 0.4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Rank(ctx, corpus(), "fear")
	require.ErrorIs(t, err, context.Canceled)
}

func TestTokenScore(t *testing.T) {
	tests := []struct {
		token string
		word  string
		want  float64
	}{
		{token: "fear", word: "fear", want: 0},
		{token: "imp", word: "important", want: 0},
		{token: "imporant", word: "important", want: 0.125},
		{token: "abc", word: "xyz", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.token+"/"+tt.word, func(t *testing.T) {
			assert.InDelta(t, tt.want, tokenScore(tt.token, tt.word), 1e-9)
		})
	}
}

func TestFieldScore(t *testing.T) {
	const text = "fear is the mind killer"

	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{name: "verbatim substring", query: "mind killer", want: 0},
		{name: "every word found out of order", query: "killer fear", want: 0},
		{name: "mean of word scores", query: "fear xyzq", want: 0.5},
		{name: "nothing close", query: "xyzq", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, fieldScore(text, tt.query, tokenize(tt.query)), 1e-9)
		})
	}
}

func TestBleve_FuzzyMatch(t *testing.T) {
	m, err := New(searchConfig(EngineBleve), discardLogger())
	require.NoError(t, err)

	results, err := m.Rank(context.Background(), corpus(), "imporant")
	require.NoError(t, err)

	require.NotEmpty(t, results)
	assert.Equal(t, int64(1), results[0].ID)
	require.NotNil(t, results[0].Score)
	assert.InDelta(t, 0, *results[0].Score, 1e-9)
	assert.Contains(t, results[0].MatchedFields, FieldContent)
}

func TestBleve_EmptyCandidates(t *testing.T) {
	var m ports.Matcher = NewBleve(fieldsFor(config.SearchWeights{Content: 1}), 0.4, discardLogger())

	results, err := m.Rank(context.Background(), nil, "fear")
	require.NoError(t, err)
	assert.Empty(t, results)
}
