package domain

import (
	"slices"
)

// Ranking limits.
const (
	DefaultRankingLimit = 10
	MaxRankingLimit     = 50
	MinRankingYear      = 1
	MaxRankingYear      = 9999
)

// YearCount is the number of quotes submitted in a calendar year.
type YearCount struct {
	Year  int
	Count int
}

// QuoteWithVotes is a quote and its full vote set.
type QuoteWithVotes struct {
	Quote
	Votes []Vote
}

// RankedQuote is a quote with its aggregated vote counts.
type RankedQuote struct {
	Quote
	Upvotes   int
	Downvotes int
	NetScore  int
}

// Rank computes vote counts for every quote, orders them by net score
// descending and truncates to limit. Equal scores keep fetch order.
func Rank(quotes []QuoteWithVotes, limit int) []RankedQuote {
	ranked := make([]RankedQuote, len(quotes))
	for i, q := range quotes {
		c := Tally(q.Votes)
		ranked[i] = RankedQuote{
			Quote:     q.Quote,
			Upvotes:   c.Upvotes,
			Downvotes: c.Downvotes,
			NetScore:  c.NetScore(),
		}
	}

	slices.SortStableFunc(ranked, func(a, b RankedQuote) int {
		return b.NetScore - a.NetScore
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// SplitBestWorst partitions a ranked list. Best keeps the ranked order of
// non-negative scores; worst holds negative scores with the most downvoted
// first.
func SplitBestWorst(ranked []RankedQuote) (best, worst []RankedQuote) {
	best = []RankedQuote{}
	worst = []RankedQuote{}

	for _, r := range ranked {
		if r.NetScore >= 0 {
			best = append(best, r)
		} else {
			worst = append(worst, r)
		}
	}

	slices.SortStableFunc(worst, func(a, b RankedQuote) int {
		return a.NetScore - b.NetScore
	})

	return best, worst
}

// ValidateRankingRequest checks the year and applies the default limit when
// limit is zero.
func ValidateRankingRequest(year, limit int) (int, error) {
	if year < MinRankingYear || year > MaxRankingYear {
		return 0, NewValidationErrorWithValue("year", "must be a calendar year", year)
	}

	if limit == 0 {
		return DefaultRankingLimit, nil
	}

	if limit < 1 || limit > MaxRankingLimit {
		return 0, NewValidationErrorWithValue("limit", "must be between 1 and 50", limit)
	}

	return limit, nil
}
