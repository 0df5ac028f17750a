package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// FindQuotes implements ports.QuoteStore.
func (s *Store) FindQuotes(ctx context.Context, pred domain.Predicate) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Quote, 0, len(s.data.quotes))

	for _, q := range s.newestFirst() {
		if domain.MatchAll(pred, &q) {
			out = append(out, q)
		}
	}

	return out, nil
}

// QuoteIDsBySpeaker implements ports.QuoteStore.
func (s *Store) QuoteIDsBySpeaker(ctx context.Context, speakerID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0)

	for quoteID, speakerIDs := range s.data.links {
		if slices.Contains(speakerIDs, speakerID) {
			ids = append(ids, quoteID)
		}
	}

	slices.Sort(ids)

	return ids, nil
}

// GetQuote implements ports.QuoteStore.
func (s *Store) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.data.quotes[id]
	if !ok {
		return nil, domain.NotFoundByID(domain.EntityQuote, id)
	}

	hydrated := s.hydrate(q)

	return &hydrated, nil
}

// LatestQuote implements ports.QuoteStore.
func (s *Store) LatestQuote(ctx context.Context) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quotes := s.newestFirst()
	if len(quotes) == 0 {
		return nil, nil //nolint:nilnil // empty store is not an error
	}

	return &quotes[0], nil
}

// ListQuotes implements ports.QuoteStore.
func (s *Store) ListQuotes(ctx context.Context, page domain.Page) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return window(s.newestFirst(), page), nil
}

// ListQuotesBySubmitter implements ports.QuoteStore.
func (s *Store) ListQuotesBySubmitter(ctx context.Context, userID string, page domain.Page) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mine := slices.DeleteFunc(s.newestFirst(), func(q domain.Quote) bool {
		return q.SubmittedByID != userID
	})

	return window(mine, page), nil
}

// CountQuotesBySubmitter implements ports.QuoteStore.
func (s *Store) CountQuotesBySubmitter(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0

	for _, q := range s.data.quotes {
		if q.SubmittedByID == userID {
			n++
		}
	}

	return n, nil
}

func window(quotes []domain.Quote, page domain.Page) []domain.Quote {
	if page.Offset >= len(quotes) {
		return []domain.Quote{}
	}

	end := min(page.Offset+page.Limit, len(quotes))

	return quotes[page.Offset:end]
}

// CreateQuote implements ports.QuoteStore.
func (s *Store) CreateQuote(ctx context.Context, q *domain.Quote, speakerIDs []int64) (int64, error) {
	defer s.lock(ctx)()

	if err := s.checkRefs(q.SubmittedByID, speakerIDs); err != nil {
		return 0, err
	}

	s.data.nextQuoteID++
	row := *q
	row.ID = s.data.nextQuoteID
	row.CreatedAt = s.stamp()
	row.UpdatedAt = nil
	row.Speakers = nil
	row.SubmittedByName = ""

	s.data.quotes[row.ID] = row
	s.data.links[row.ID] = slices.Clone(speakerIDs)

	return row.ID, nil
}

// UpdateQuote implements ports.QuoteStore.
func (s *Store) UpdateQuote(ctx context.Context, q *domain.Quote, speakerIDs []int64) error {
	defer s.lock(ctx)()

	row, ok := s.data.quotes[q.ID]
	if !ok {
		return domain.NotFoundByID(domain.EntityQuote, q.ID)
	}

	if err := s.checkRefs(row.SubmittedByID, speakerIDs); err != nil {
		return err
	}

	now := s.stamp()
	row.Content = q.Content
	row.Context = q.Context
	row.QuoteDate = q.QuoteDate
	row.QuoteDatePrecision = q.QuoteDatePrecision
	row.UpdatedAt = &now

	s.data.quotes[row.ID] = row
	s.data.links[row.ID] = slices.Clone(speakerIDs)

	return nil
}

// DeleteQuote implements ports.QuoteStore.
func (s *Store) DeleteQuote(ctx context.Context, id int64) error {
	defer s.lock(ctx)()

	if _, ok := s.data.quotes[id]; !ok {
		return domain.NotFoundByID(domain.EntityQuote, id)
	}

	delete(s.data.quotes, id)
	delete(s.data.links, id)

	for k := range s.data.votes {
		if k.quoteID == id {
			delete(s.data.votes, k)
		}
	}

	return nil
}

// QuotesCreatedIn implements ports.QuoteStore.
func (s *Store) QuotesCreatedIn(ctx context.Context, year int) ([]domain.QuoteWithVotes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.QuoteWithVotes, 0)

	for _, q := range s.newestFirst() {
		if q.CreatedAt.UTC().Year() != year {
			continue
		}

		out = append(out, domain.QuoteWithVotes{Quote: q, Votes: s.votesFor(q.ID)})
	}

	return out, nil
}

// YearCounts implements ports.QuoteStore.
func (s *Store) YearCounts(ctx context.Context) ([]domain.YearCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int]int)
	for _, q := range s.data.quotes {
		counts[q.CreatedAt.UTC().Year()]++
	}

	out := make([]domain.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, domain.YearCount{Year: year, Count: n})
	}

	slices.SortFunc(out, func(a, b domain.YearCount) int {
		return cmp.Compare(b.Year, a.Year)
	})

	return out, nil
}

// newestFirst returns hydrated quotes ordered by created_at desc, id desc.
// Callers hold s.mu.
func (s *Store) newestFirst() []domain.Quote {
	out := make([]domain.Quote, 0, len(s.data.quotes))
	for _, q := range s.data.quotes {
		out = append(out, s.hydrate(q))
	}

	slices.SortFunc(out, func(a, b domain.Quote) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return out
}

// hydrate attaches speaker refs, ordered by name, and the submitter name.
func (s *Store) hydrate(q domain.Quote) domain.Quote {
	ids := s.data.links[q.ID]

	q.Speakers = make([]domain.SpeakerRef, 0, len(ids))
	for _, id := range ids {
		if sp, ok := s.data.speakers[id]; ok {
			q.Speakers = append(q.Speakers, domain.SpeakerRef{ID: sp.ID, Name: sp.Name})
		}
	}

	slices.SortFunc(q.Speakers, func(a, b domain.SpeakerRef) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	if u, ok := s.data.users[q.SubmittedByID]; ok {
		q.SubmittedByName = u.Name
	}

	return q
}

func (s *Store) checkRefs(userID string, speakerIDs []int64) error {
	if _, ok := s.data.users[userID]; !ok {
		return domain.NewNotFoundError(domain.EntityUser, userID)
	}

	for _, id := range speakerIDs {
		if _, ok := s.data.speakers[id]; !ok {
			return domain.NotFoundByID(domain.EntitySpeaker, id)
		}
	}

	return nil
}
