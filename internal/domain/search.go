package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Search limits and defaults.
const (
	MaxQueryLength     = 500
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchFilter is the transient set of criteria for one search request.
type SearchFilter struct {
	Query               string
	SpeakerID           *int64
	SubmittedByID       *string
	DateFrom            *time.Time
	DateTo              *time.Time
	IncludeUnknownDates bool
	Page                int
	Limit               int
}

// NewSearchFilter returns a filter with the documented defaults applied.
func NewSearchFilter() SearchFilter {
	return SearchFilter{
		IncludeUnknownDates: true,
		Page:                1,
		Limit:               DefaultSearchLimit,
	}
}

// TrimmedQuery returns the free-text query without surrounding whitespace.
func (f *SearchFilter) TrimmedQuery() string {
	return strings.TrimSpace(f.Query)
}

// Validate rejects out-of-range criteria before any store access.
func (f *SearchFilter) Validate() error {
	if utf8.RuneCountInString(f.Query) > MaxQueryLength {
		return NewValidationError("query", "must be at most 500 characters")
	}

	if f.Limit < 1 || f.Limit > MaxSearchLimit {
		return NewValidationErrorWithValue("limit", "must be between 1 and 100", f.Limit)
	}

	if f.Page < 1 {
		return NewValidationErrorWithValue("page", "must be at least 1", f.Page)
	}

	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return NewValidationError("quoteDateFrom", "must not be after quoteDateTo")
	}

	return nil
}

// BuildSearchPredicate turns the structured criteria into a conjunctive
// filter. speakerQuoteIDs is the pre-resolved id set for a speaker filter;
// pass nil when no speaker filter applies.
//
// Date policy: with at least one bound the quote date must fall inside the
// supplied bounds, or be NULL when unknown dates are included. Without
// bounds, excluding unknown dates reduces to a NOT NULL check.
func BuildSearchPredicate(f *SearchFilter, speakerQuoteIDs []int64) Predicate {
	var conds And

	if speakerQuoteIDs != nil {
		values := make([]any, len(speakerQuoteIDs))
		for i, id := range speakerQuoteIDs {
			values[i] = id
		}

		conds = append(conds, In{Field: FieldQuoteID, Values: values})
	}

	if f.SubmittedByID != nil && *f.SubmittedByID != "" {
		conds = append(conds, Cmp{Field: FieldSubmittedBy, Op: OpEq, Value: *f.SubmittedByID})
	}

	if date := datePredicate(f); date != nil {
		conds = append(conds, date)
	}

	return conds
}

func datePredicate(f *SearchFilter) Predicate {
	if f.DateFrom == nil && f.DateTo == nil {
		if !f.IncludeUnknownDates {
			return NotNull{Field: FieldQuoteDate}
		}

		return nil
	}

	var bounds And

	if f.DateFrom != nil {
		bounds = append(bounds, Cmp{Field: FieldQuoteDate, Op: OpGte, Value: truncateDate(*f.DateFrom)})
	}

	if f.DateTo != nil {
		bounds = append(bounds, Cmp{Field: FieldQuoteDate, Op: OpLte, Value: truncateDate(*f.DateTo)})
	}

	var inRange Predicate = bounds
	if len(bounds) == 1 {
		inRange = bounds[0]
	}

	branches := Or{inRange}
	if f.IncludeUnknownDates {
		branches = append(branches, IsNull{Field: FieldQuoteDate})
	}

	return branches
}

func truncateDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ScoredQuote is a quote with its relevance score. Score is nil when no
// text query ranked the results; otherwise 0 is a perfect match and larger
// values are worse.
type ScoredQuote struct {
	Quote
	Score         *float64
	MatchedFields []string
}

// Unscored wraps quotes without relevance information, keeping their order.
func Unscored(quotes []Quote) []ScoredQuote {
	out := make([]ScoredQuote, len(quotes))
	for i := range quotes {
		out[i] = ScoredQuote{Quote: quotes[i]}
	}

	return out
}

// PageInfo describes where a page sits in the full result list.
type PageInfo struct {
	CurrentPage     int
	TotalPages      int
	TotalResults    int
	HasNextPage     bool
	HasPreviousPage bool
}

// NewPageInfo computes pagination metadata for total results.
func NewPageInfo(page, limit, total int) PageInfo {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return PageInfo{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalResults:    total,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Paginate slices items at [(page-1)*limit, (page-1)*limit+limit) and
// reports the metadata for the whole list.
func Paginate[T any](items []T, page, limit int) ([]T, PageInfo) {
	info := NewPageInfo(page, limit, len(items))

	start := (page - 1) * limit
	if start >= len(items) || start < 0 {
		return []T{}, info
	}

	end := min(start+limit, len(items))

	return items[start:end], info
}

// SearchResult is one page of search results.
type SearchResult struct {
	Quotes     []ScoredQuote
	Pagination PageInfo
}

// EmptySearchResult is the result for a filter that cannot match anything.
func EmptySearchResult(page, limit int) *SearchResult {
	return &SearchResult{
		Quotes:     []ScoredQuote{},
		Pagination: NewPageInfo(page, limit, 0),
	}
}
