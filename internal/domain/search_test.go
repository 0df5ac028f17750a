package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ptr[T any](v T) *T { return &v }

func TestSearchFilter_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *SearchFilter)
		wantField string
	}{
		{name: "defaults are valid", mutate: func(*SearchFilter) {}},
		{
			name:   "query at limit",
			mutate: func(f *SearchFilter) { f.Query = strings.Repeat("a", MaxQueryLength) },
		},
		{
			name:      "query too long",
			mutate:    func(f *SearchFilter) { f.Query = strings.Repeat("a", MaxQueryLength+1) },
			wantField: "query",
		},
		{name: "limit zero", mutate: func(f *SearchFilter) { f.Limit = 0 }, wantField: "limit"},
		{name: "limit too high", mutate: func(f *SearchFilter) { f.Limit = 101 }, wantField: "limit"},
		{name: "page zero", mutate: func(f *SearchFilter) { f.Page = 0 }, wantField: "page"},
		{
			name: "inverted date range",
			mutate: func(f *SearchFilter) {
				f.DateFrom = date(2021, 1, 1)
				f.DateTo = date(2020, 1, 1)
			},
			wantField: "quoteDateFrom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewSearchFilter()
			tt.mutate(&f)

			err := f.Validate()
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

func TestBuildSearchPredicate_Shape(t *testing.T) {
	from := date(2020, 1, 1)
	to := date(2020, 12, 31)

	tests := []struct {
		name     string
		filter   SearchFilter
		speakers []int64
		want     Predicate
	}{
		{
			name:   "no criteria",
			filter: SearchFilter{IncludeUnknownDates: true},
			want:   And(nil),
		},
		{
			name:   "exclude unknown without bounds",
			filter: SearchFilter{IncludeUnknownDates: false},
			want:   And{NotNull{Field: FieldQuoteDate}},
		},
		{
			name:   "both bounds with unknown dates",
			filter: SearchFilter{DateFrom: from, DateTo: to, IncludeUnknownDates: true},
			want: And{Or{
				And{
					Cmp{Field: FieldQuoteDate, Op: OpGte, Value: *from},
					Cmp{Field: FieldQuoteDate, Op: OpLte, Value: *to},
				},
				IsNull{Field: FieldQuoteDate},
			}},
		},
		{
			name:   "lower bound only without unknown dates",
			filter: SearchFilter{DateFrom: from},
			want: And{Or{
				Cmp{Field: FieldQuoteDate, Op: OpGte, Value: *from},
			}},
		},
		{
			name:     "speaker and submitter",
			filter:   SearchFilter{SubmittedByID: ptr("u1"), IncludeUnknownDates: true},
			speakers: []int64{3, 7},
			want: And{
				In{Field: FieldQuoteID, Values: []any{int64(3), int64(7)}},
				Cmp{Field: FieldSubmittedBy, Op: OpEq, Value: "u1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSearchPredicate(&tt.filter, tt.speakers)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSearchPredicate_DateRangeExcludesUnknown(t *testing.T) {
	f := SearchFilter{
		DateFrom:            date(2020, 1, 1),
		DateTo:              date(2020, 12, 31),
		IncludeUnknownDates: false,
	}
	pred := BuildSearchPredicate(&f, nil)

	quotes := []Quote{
		{ID: 1, QuoteDate: date(2020, 6, 15)},
		{ID: 2, QuoteDate: nil},
		{ID: 3, QuoteDate: date(2019, 12, 31)},
		{ID: 4, QuoteDate: date(2020, 12, 31)},
		{ID: 5, QuoteDate: date(2021, 1, 1)},
	}

	var got []int64
	for i := range quotes {
		if pred.Match(&quotes[i]) {
			got = append(got, quotes[i].ID)
		}
	}

	assert.Equal(t, []int64{1, 4}, got)
}

func TestBuildSearchPredicate_DateRangeIncludesUnknown(t *testing.T) {
	f := SearchFilter{DateTo: date(2000, 1, 1), IncludeUnknownDates: true}
	pred := BuildSearchPredicate(&f, nil)

	assert.True(t, pred.Match(&Quote{QuoteDate: nil}))
	assert.True(t, pred.Match(&Quote{QuoteDate: date(1999, 5, 1)}))
	assert.False(t, pred.Match(&Quote{QuoteDate: date(2001, 5, 1)}))
}

func TestPaginate_Totality(t *testing.T) {
	items := make([]int, 47)
	for i := range items {
		items[i] = i
	}

	for _, limit := range []int{1, 5, 10, 20, 47, 100} {
		var all []int

		first, info := Paginate(items, 1, limit)
		all = append(all, first...)

		assert.Equal(t, (len(items)+limit-1)/limit, info.TotalPages, "limit %d", limit)
		assert.Equal(t, len(items), info.TotalResults)

		for page := 2; page <= info.TotalPages; page++ {
			slice, _ := Paginate(items, page, limit)
			all = append(all, slice...)
		}

		assert.Equal(t, items, all, "limit %d", limit)
	}
}

func TestPaginate_Metadata(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name      string
		page      int
		limit     int
		wantItems []string
		want      PageInfo
	}{
		{
			name:      "first page",
			page:      1,
			limit:     2,
			wantItems: []string{"a", "b"},
			want:      PageInfo{CurrentPage: 1, TotalPages: 3, TotalResults: 5, HasNextPage: true},
		},
		{
			name:      "last partial page",
			page:      3,
			limit:     2,
			wantItems: []string{"e"},
			want:      PageInfo{CurrentPage: 3, TotalPages: 3, TotalResults: 5, HasPreviousPage: true},
		},
		{
			name:      "beyond the end",
			page:      9,
			limit:     2,
			wantItems: []string{},
			want:      PageInfo{CurrentPage: 9, TotalPages: 3, TotalResults: 5, HasPreviousPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, info := Paginate(items, tt.page, tt.limit)
			assert.Equal(t, tt.wantItems, got)
			assert.Equal(t, tt.want, info)
		})
	}
}

func TestEmptySearchResult(t *testing.T) {
	res := EmptySearchResult(2, 20)

	assert.Empty(t, res.Quotes)
	assert.Equal(t, PageInfo{CurrentPage: 2, HasPreviousPage: true}, res.Pagination)
}
