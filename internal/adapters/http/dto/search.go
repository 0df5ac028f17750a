package dto

import (
	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// SearchQuery is the query string of GET /search/quotes.
type SearchQuery struct {
	Query               string  `form:"query"               validate:"max=500"`
	SpeakerID           *int64  `form:"speakerId"           validate:"omitempty,gt=0"`
	SubmittedByID       *string `form:"submittedById"`
	QuoteDateFrom       string  `form:"quoteDateFrom"`
	QuoteDateTo         string  `form:"quoteDateTo"`
	IncludeUnknownDates *bool   `form:"includeUnknownDates"`
	PageQuery
}

// Filter converts the query into a domain filter with defaults applied.
func (q *SearchQuery) Filter() (domain.SearchFilter, error) {
	f := domain.NewSearchFilter()
	f.Query = q.Query
	f.SpeakerID = q.SpeakerID
	f.SubmittedByID = q.SubmittedByID
	f.Page, f.Limit = q.Values()

	if q.IncludeUnknownDates != nil {
		f.IncludeUnknownDates = *q.IncludeUnknownDates
	}

	var err error

	if f.DateFrom, err = ParseDate("quoteDateFrom", q.QuoteDateFrom); err != nil {
		return f, err
	}

	if f.DateTo, err = ParseDate("quoteDateTo", q.QuoteDateTo); err != nil {
		return f, err
	}

	return f, nil
}

// ScoredQuoteResponse is a search hit. Score is present only when a text
// query ranked the results.
type ScoredQuoteResponse struct {
	QuoteResponse
	Score         *float64 `json:"score,omitempty"`
	MatchedFields []string `json:"matchedFields,omitempty"`
}

// PaginationResponse is the pagination block of a search response.
type PaginationResponse struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalResults    int  `json:"totalResults"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Quotes     []ScoredQuoteResponse `json:"quotes"`
	Pagination PaginationResponse    `json:"pagination"`
}

// NewSearchResponse converts a domain search result.
func NewSearchResponse(r *domain.SearchResult) SearchResponse {
	quotes := make([]ScoredQuoteResponse, len(r.Quotes))
	for i := range r.Quotes {
		quotes[i] = ScoredQuoteResponse{
			QuoteResponse: NewQuoteResponse(&r.Quotes[i].Quote),
			Score:         r.Quotes[i].Score,
			MatchedFields: r.Quotes[i].MatchedFields,
		}
	}

	p := r.Pagination

	return SearchResponse{
		Quotes: quotes,
		Pagination: PaginationResponse{
			CurrentPage:     p.CurrentPage,
			TotalPages:      p.TotalPages,
			TotalResults:    p.TotalResults,
			HasNextPage:     p.HasNextPage,
			HasPreviousPage: p.HasPreviousPage,
		},
	}
}
