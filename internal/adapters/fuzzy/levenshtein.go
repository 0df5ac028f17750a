package fuzzy

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// epsilon stands in for a zero field score so a perfect match still
// contributes to the weighted product.
const epsilon = 0x1p-52

// Levenshtein scores each field by matching every query token against the
// closest word, or word fragment, of the field.
type Levenshtein struct {
	fields    []field
	threshold float64
}

// NewLevenshtein returns a Levenshtein engine over fields.
func NewLevenshtein(fields []field, threshold float64) *Levenshtein {
	return &Levenshtein{fields: fields, threshold: threshold}
}

// Rank implements ports.Matcher.
//
// A field matches when its score is within the threshold; a candidate is
// kept when any field matches. The candidate score is the product of
// score^weight over the matched fields.
func (m *Levenshtein) Rank(ctx context.Context, candidates []domain.Quote, query string) ([]domain.ScoredQuote, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	tokens := tokenize(q)
	if len(tokens) == 0 {
		return []domain.ScoredQuote{}, nil
	}

	hits := make([]ranked, 0, len(candidates))

	for i := range candidates {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		score, matched, ok := m.score(&candidates[i], q, tokens)
		if !ok {
			continue
		}

		hits = append(hits, ranked{index: i, score: score, matched: matched})
	}

	return collect(candidates, hits), nil
}

func (m *Levenshtein) score(quote *domain.Quote, query string, tokens []string) (float64, []string, bool) {
	total := 1.0

	var matched []string

	for _, f := range m.fields {
		if f.weight <= 0 {
			continue
		}

		text := strings.ToLower(f.text(quote))
		if text == "" {
			continue
		}

		s := fieldScore(text, query, tokens)
		if s > m.threshold {
			continue
		}

		matched = append(matched, f.name)
		total *= math.Pow(math.Max(s, epsilon), f.weight)
	}

	if len(matched) == 0 {
		return 0, nil, false
	}

	return total, matched, true
}

// fieldScore is the mean best-token score of the query over text, or 0 when
// text contains the whole query verbatim.
func fieldScore(text, query string, tokens []string) float64 {
	if strings.Contains(text, query) {
		return 0
	}

	words := tokenize(text)
	if len(words) == 0 {
		return 1
	}

	var sum float64
	for _, t := range tokens {
		sum += bestTokenScore(t, words)
	}

	return sum / float64(len(tokens))
}

func bestTokenScore(token string, words []string) float64 {
	best := 1.0

	for _, w := range words {
		if s := tokenScore(token, w); s < best {
			best = s
		}

		if best == 0 {
			break
		}
	}

	return best
}

// tokenScore is the edit distance from token to word, or to the closest
// window of word when word is longer, divided by the token length.
func tokenScore(token, word string) float64 {
	tr := []rune(token)
	wr := []rune(word)
	n := len(tr)

	best := levenshtein.ComputeDistance(token, word)

	if len(wr) > n {
		for size := n - 1; size <= n+1; size++ {
			if size < 1 || size > len(wr) {
				continue
			}

			for start := 0; start+size <= len(wr) && best > 0; start++ {
				if d := levenshtein.ComputeDistance(token, string(wr[start:start+size])); d < best {
					best = d
				}
			}
		}
	}

	return math.Min(1, float64(best)/float64(n))
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
