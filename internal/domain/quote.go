package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Quote field limits.
const (
	MaxContentLength = 2000
	MaxContextLength = 1000
	MinQuoteSpeakers = 1
	MaxQuoteSpeakers = 10
)

// DateLayout is the calendar date layout used for quote dates on the wire.
const DateLayout = "2006-01-02"

// DatePrecision qualifies how much of a quote's date is known.
type DatePrecision string

const (
	PrecisionFull      DatePrecision = "full"
	PrecisionYearMonth DatePrecision = "year-month"
	PrecisionYear      DatePrecision = "year"
	PrecisionUnknown   DatePrecision = "unknown"
)

// Valid reports whether p is one of the known precisions.
func (p DatePrecision) Valid() bool {
	switch p {
	case PrecisionFull, PrecisionYearMonth, PrecisionYear, PrecisionUnknown:
		return true
	default:
		return false
	}
}

// ParseDatePrecision parses s, treating the empty string as unknown.
func ParseDatePrecision(s string) (DatePrecision, error) {
	if s == "" {
		return PrecisionUnknown, nil
	}

	p := DatePrecision(s)
	if !p.Valid() {
		return "", NewValidationErrorWithValue("quoteDatePrecision",
			"must be one of: full, year-month, year, unknown", s)
	}

	return p, nil
}

// NormalizeQuoteDate reduces date to the part the precision vouches for.
// A year-only date becomes January 1st, a year-month date the first of the
// month. Unknown precision or a missing date yields nil.
func NormalizeQuoteDate(date *time.Time, precision DatePrecision) *time.Time {
	if date == nil || precision == PrecisionUnknown {
		return nil
	}

	d := date.UTC()

	var normalized time.Time

	switch precision {
	case PrecisionYear:
		normalized = time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case PrecisionYearMonth:
		normalized = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	case PrecisionFull:
		normalized = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	default:
		return nil
	}

	return &normalized
}

// SpeakerRef is the id and name projection of a speaker linked to a quote.
type SpeakerRef struct {
	ID   int64
	Name string
}

// Quote is an attributed piece of text with its speakers and submitter
// projections attached.
type Quote struct {
	ID                 int64
	Content            string
	Context            string
	QuoteDate          *time.Time
	QuoteDatePrecision DatePrecision
	SubmittedByID      string
	SubmittedByName    string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	Speakers           []SpeakerRef
}

// SpeakerNames joins the linked speaker names with spaces.
func (q *Quote) SpeakerNames() string {
	names := make([]string, len(q.Speakers))
	for i, s := range q.Speakers {
		names[i] = s.Name
	}

	return strings.Join(names, " ")
}

// SpeakerIDs returns the ids of the linked speakers.
func (q *Quote) SpeakerIDs() []int64 {
	ids := make([]int64, len(q.Speakers))
	for i, s := range q.Speakers {
		ids[i] = s.ID
	}

	return ids
}

// QuoteInput carries the writable fields of a quote.
type QuoteInput struct {
	Content            string
	Context            string
	QuoteDate          *time.Time
	QuoteDatePrecision DatePrecision
	SpeakerIDs         []int64
}

// Validate checks field limits and the speaker link count. Duplicate speaker
// ids are rejected rather than silently merged.
func (in *QuoteInput) Validate() error {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return NewValidationError("content", "must not be empty")
	}

	if utf8.RuneCountInString(in.Content) > MaxContentLength {
		return NewValidationError("content", "must be at most 2000 characters")
	}

	if utf8.RuneCountInString(in.Context) > MaxContextLength {
		return NewValidationError("context", "must be at most 1000 characters")
	}

	if !in.QuoteDatePrecision.Valid() {
		return NewValidationErrorWithValue("quoteDatePrecision",
			"must be one of: full, year-month, year, unknown", in.QuoteDatePrecision)
	}

	if len(in.SpeakerIDs) < MinQuoteSpeakers || len(in.SpeakerIDs) > MaxQuoteSpeakers {
		return NewValidationErrorWithValue("speakerIds", "must contain between 1 and 10 speakers", len(in.SpeakerIDs))
	}

	seen := make(map[int64]struct{}, len(in.SpeakerIDs))
	for _, id := range in.SpeakerIDs {
		if id <= 0 {
			return NewValidationErrorWithValue("speakerIds", "must be positive", id)
		}

		if _, dup := seen[id]; dup {
			return NewValidationErrorWithValue("speakerIds", "must not contain duplicates", id)
		}

		seen[id] = struct{}{}
	}

	return nil
}

// Page is an offset window over a newest-first listing.
type Page struct {
	Limit  int
	Offset int
}

// NewPage converts a 1-based page number and size into an offset window.
func NewPage(page, limit int) Page {
	return Page{Limit: limit, Offset: (page - 1) * limit}
}
