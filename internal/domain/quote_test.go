package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuoteDate(t *testing.T) {
	in := time.Date(1987, time.August, 23, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		date      *time.Time
		precision DatePrecision
		want      *time.Time
	}{
		{name: "full keeps the day", date: &in, precision: PrecisionFull, want: date(1987, 8, 23)},
		{name: "year-month keeps the month", date: &in, precision: PrecisionYearMonth, want: date(1987, 8, 1)},
		{name: "year keeps the year", date: &in, precision: PrecisionYear, want: date(1987, 1, 1)},
		{name: "unknown drops the date", date: &in, precision: PrecisionUnknown, want: nil},
		{name: "missing date", date: nil, precision: PrecisionFull, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuoteDate(tt.date, tt.precision))
		})
	}
}

func TestParseDatePrecision(t *testing.T) {
	p, err := ParseDatePrecision("")
	require.NoError(t, err)
	assert.Equal(t, PrecisionUnknown, p)

	p, err = ParseDatePrecision("year-month")
	require.NoError(t, err)
	assert.Equal(t, PrecisionYearMonth, p)

	_, err = ParseDatePrecision("decade")
	require.ErrorIs(t, err, ErrValidation)
}

func TestQuoteInput_Validate(t *testing.T) {
	valid := func() QuoteInput {
		return QuoteInput{
			Content:            "Imagination is more important than knowledge.",
			QuoteDatePrecision: PrecisionUnknown,
			SpeakerIDs:         []int64{1},
		}
	}

	tests := []struct {
		name      string
		mutate    func(in *QuoteInput)
		wantField string
	}{
		{name: "valid", mutate: func(*QuoteInput) {}},
		{name: "blank content", mutate: func(in *QuoteInput) { in.Content = "   " }, wantField: "content"},
		{
			name:      "content too long",
			mutate:    func(in *QuoteInput) { in.Content = strings.Repeat("x", MaxContentLength+1) },
			wantField: "content",
		},
		{
			name:      "context too long",
			mutate:    func(in *QuoteInput) { in.Context = strings.Repeat("x", MaxContextLength+1) },
			wantField: "context",
		},
		{name: "bad precision", mutate: func(in *QuoteInput) { in.QuoteDatePrecision = "week" }, wantField: "quoteDatePrecision"},
		{name: "no speakers", mutate: func(in *QuoteInput) { in.SpeakerIDs = nil }, wantField: "speakerIds"},
		{
			name:      "too many speakers",
			mutate:    func(in *QuoteInput) { in.SpeakerIDs = []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11} },
			wantField: "speakerIds",
		},
		{name: "duplicate speakers", mutate: func(in *QuoteInput) { in.SpeakerIDs = []int64{4, 4} }, wantField: "speakerIds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestQuote_SpeakerNames(t *testing.T) {
	q := Quote{Speakers: []SpeakerRef{{ID: 1, Name: "Albert Einstein"}, {ID: 2, Name: "Niels Bohr"}}}

	assert.Equal(t, "Albert Einstein Niels Bohr", q.SpeakerNames())
	assert.Equal(t, []int64{1, 2}, q.SpeakerIDs())
}

func TestPredicate_In(t *testing.T) {
	p := In{Field: FieldQuoteID, Values: []any{int64(1), 3}}

	assert.True(t, p.Match(&Quote{ID: 1}))
	assert.True(t, p.Match(&Quote{ID: 3}))
	assert.False(t, p.Match(&Quote{ID: 2}))
	assert.False(t, In{Field: FieldQuoteID}.Match(&Quote{ID: 1}))
}

func TestPredicate_CreatedYear(t *testing.T) {
	q := &Quote{CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	assert.True(t, Cmp{Field: FieldCreatedYear, Op: OpEq, Value: 2024}.Match(q))
	assert.False(t, Cmp{Field: FieldCreatedYear, Op: OpEq, Value: 2023}.Match(q))
	assert.True(t, MatchAll(nil, q))
	assert.False(t, Or{}.Match(q))
	assert.True(t, And{}.Match(q))
}
