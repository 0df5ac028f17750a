package dto

import (
	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// YearCountResponse is one entry of the available years list.
type YearCountResponse struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// NewYearCountList converts domain year counts.
func NewYearCountList(years []domain.YearCount) []YearCountResponse {
	out := make([]YearCountResponse, len(years))
	for i, y := range years {
		out[i] = YearCountResponse{Year: y.Year, Count: y.Count}
	}

	return out
}

// RankingQuery is the query string of the ranking endpoint. An absent
// limit means the default; an explicit 0 is rejected.
type RankingQuery struct {
	Limit *int `form:"limit" validate:"omitempty,min=1,max=50"`
}

// LimitValue returns the limit with the default applied.
func (q *RankingQuery) LimitValue() int {
	if q.Limit == nil {
		return domain.DefaultRankingLimit
	}

	return *q.Limit
}

// RankedQuoteResponse is a quote with its vote totals.
type RankedQuoteResponse struct {
	QuoteResponse
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	NetScore  int `json:"netScore"`
}

// RankingResponse is the ranked list plus its best and worst split.
type RankingResponse struct {
	Year   int                   `json:"year"`
	Quotes []RankedQuoteResponse `json:"quotes"`
	Best   []RankedQuoteResponse `json:"best"`
	Worst  []RankedQuoteResponse `json:"worst"`
}

// NewRankingResponse converts the ranked list and derives best and worst.
func NewRankingResponse(year int, ranked []domain.RankedQuote) RankingResponse {
	best, worst := domain.SplitBestWorst(ranked)

	return RankingResponse{
		Year:   year,
		Quotes: rankedList(ranked),
		Best:   rankedList(best),
		Worst:  rankedList(worst),
	}
}

func rankedList(ranked []domain.RankedQuote) []RankedQuoteResponse {
	out := make([]RankedQuoteResponse, len(ranked))
	for i := range ranked {
		out[i] = RankedQuoteResponse{
			QuoteResponse: NewQuoteResponse(&ranked[i].Quote),
			Upvotes:       ranked[i].Upvotes,
			Downvotes:     ranked[i].Downvotes,
			NetScore:      ranked[i].NetScore,
		}
	}

	return out
}
