package dto

import (
	"time"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// SpeakerRefResponse is a speaker linked to a quote.
type SpeakerRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SubmitterResponse names the user who submitted a quote.
type SubmitterResponse struct {
	Name string `json:"name"`
}

// QuoteResponse is a quote as returned by every quote endpoint.
type QuoteResponse struct {
	ID                 int64                `json:"id"`
	Content            string               `json:"content"`
	Context            string               `json:"context"`
	QuoteDate          *string              `json:"quoteDate"`
	QuoteDatePrecision string               `json:"quoteDatePrecision"`
	SubmittedByID      string               `json:"submittedById"`
	SubmittedBy        SubmitterResponse    `json:"submittedBy"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          *time.Time           `json:"updatedAt"`
	Speakers           []SpeakerRefResponse `json:"speakers"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	speakers := make([]SpeakerRefResponse, len(q.Speakers))
	for i, s := range q.Speakers {
		speakers[i] = SpeakerRefResponse{ID: s.ID, Name: s.Name}
	}

	return QuoteResponse{
		ID:                 q.ID,
		Content:            q.Content,
		Context:            q.Context,
		QuoteDate:          FormatDate(q.QuoteDate),
		QuoteDatePrecision: string(q.QuoteDatePrecision),
		SubmittedByID:      q.SubmittedByID,
		SubmittedBy:        SubmitterResponse{Name: q.SubmittedByName},
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
		Speakers:           speakers,
	}
}

// NewQuoteList converts a slice of domain quotes.
func NewQuoteList(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		out[i] = NewQuoteResponse(&quotes[i])
	}

	return out
}

// QuoteRequest is the body of quote create and update.
type QuoteRequest struct {
	Content            string  `json:"content"            validate:"notblank,max=2000"`
	Context            string  `json:"context"            validate:"max=1000"`
	QuoteDate          string  `json:"quoteDate"          validate:"omitempty,datetime=2006-01-02"`
	QuoteDatePrecision string  `json:"quoteDatePrecision" validate:"omitempty,oneof=full year-month year unknown"`
	SpeakerIDs         []int64 `json:"speakerIds"         validate:"min=1,max=10,dive,gt=0"`
}

// Input converts the request into a domain input. A missing precision
// means unknown.
func (r *QuoteRequest) Input() (domain.QuoteInput, error) {
	date, err := ParseDate("quoteDate", r.QuoteDate)
	if err != nil {
		return domain.QuoteInput{}, err
	}

	precision, err := domain.ParseDatePrecision(r.QuoteDatePrecision)
	if err != nil {
		return domain.QuoteInput{}, err
	}

	return domain.QuoteInput{
		Content:            r.Content,
		Context:            r.Context,
		QuoteDate:          date,
		QuoteDatePrecision: precision,
		SpeakerIDs:         r.SpeakerIDs,
	}, nil
}
