package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

type quoteRow struct {
	ID                 int64      `db:"id"`
	Content            string     `db:"content"`
	Context            string     `db:"context"`
	QuoteDate          *time.Time `db:"quote_date"`
	QuoteDatePrecision string     `db:"quote_date_precision"`
	SubmittedByID      string     `db:"submitted_by_id"`
	SubmittedByName    string     `db:"submitted_by_name"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at"`
}

func (r *quoteRow) toDomain() domain.Quote {
	return domain.Quote{
		ID:                 r.ID,
		Content:            r.Content,
		Context:            r.Context,
		QuoteDate:          r.QuoteDate,
		QuoteDatePrecision: domain.DatePrecision(r.QuoteDatePrecision),
		SubmittedByID:      r.SubmittedByID,
		SubmittedByName:    r.SubmittedByName,
		CreatedAt:          r.CreatedAt.UTC(),
		UpdatedAt:          r.UpdatedAt,
	}
}

type speakerLinkRow struct {
	QuoteID int64  `db:"quote_id"`
	ID      int64  `db:"id"`
	Name    string `db:"name"`
}

type voteRow struct {
	ID        int64     `db:"id"`
	QuoteID   int64     `db:"quote_id"`
	UserID    string    `db:"user_id"`
	VoteType  string    `db:"vote_type"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *voteRow) toDomain() domain.Vote {
	return domain.Vote{
		ID:        r.ID,
		QuoteID:   r.QuoteID,
		UserID:    r.UserID,
		Type:      domain.VoteType(r.VoteType),
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func selectQuotes() sq.SelectBuilder {
	return psql.Select(
		"q.id", "q.content", "q.context", "q.quote_date", "q.quote_date_precision",
		"q.submitted_by_id", "COALESCE(u.name, '') AS submitted_by_name",
		"q.created_at", "q.updated_at",
	).
		From(tableQuotes+" q").
		LeftJoin(tableUsers+" u ON u.id = q.submitted_by_id").
		OrderBy("q.created_at DESC", "q.id DESC")
}

// loadQuotes runs b and attaches the speakers of every returned quote.
func (s *Store) loadQuotes(ctx context.Context, b sq.SelectBuilder) ([]domain.Quote, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []quoteRow
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, len(rows))
	ids := make([]int64, len(rows))

	for i := range rows {
		quotes[i] = rows[i].toDomain()
		ids[i] = rows[i].ID
	}

	if len(ids) == 0 {
		return quotes, nil
	}

	links, err := s.speakerLinks(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range quotes {
		quotes[i].Speakers = links[quotes[i].ID]
	}

	return quotes, nil
}

func (s *Store) speakerLinks(ctx context.Context, quoteIDs []int64) (map[int64][]domain.SpeakerRef, error) {
	query, args, err := psql.Select("qs.quote_id", "s.id", "s.name").
		From(tableQuoteSpeakers+" qs").
		Join(tableSpeakers+" s ON s.id = qs.speaker_id").
		Where(sq.Eq{"qs.quote_id": quoteIDs}).
		OrderBy("qs.quote_id", "s.name", "s.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []speakerLinkRow
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("load speaker links: %w", err)
	}

	links := make(map[int64][]domain.SpeakerRef, len(quoteIDs))
	for _, r := range rows {
		links[r.QuoteID] = append(links[r.QuoteID], domain.SpeakerRef{ID: r.ID, Name: r.Name})
	}

	return links, nil
}

// FindQuotes implements ports.QuoteStore.
func (s *Store) FindQuotes(ctx context.Context, pred domain.Predicate) ([]domain.Quote, error) {
	where, err := toSqlizer(pred)
	if err != nil {
		return nil, fmt.Errorf("find quotes: %w", err)
	}

	b := selectQuotes()
	if where != nil {
		b = b.Where(where)
	}

	quotes, err := s.loadQuotes(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("find quotes: %w", err)
	}

	return quotes, nil
}

// QuoteIDsBySpeaker implements ports.QuoteStore.
func (s *Store) QuoteIDsBySpeaker(ctx context.Context, speakerID int64) ([]int64, error) {
	query, args, err := psql.Select("quote_id").
		From(tableQuoteSpeakers).
		Where(sq.Eq{"speaker_id": speakerID}).
		OrderBy("quote_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var ids []int64
	if err := pgxscan.Select(ctx, s.q(ctx), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("quote ids by speaker %d: %w", speakerID, err)
	}

	return ids, nil
}

// GetQuote implements ports.QuoteStore.
func (s *Store) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	quotes, err := s.loadQuotes(ctx, selectQuotes().Where(sq.Eq{"q.id": id}))
	if err != nil {
		return nil, mapError(err, "quote", strconv.FormatInt(id, 10))
	}

	if len(quotes) == 0 {
		return nil, domain.NotFoundByID(domain.EntityQuote, id)
	}

	return &quotes[0], nil
}

// LatestQuote implements ports.QuoteStore.
func (s *Store) LatestQuote(ctx context.Context) (*domain.Quote, error) {
	quotes, err := s.loadQuotes(ctx, selectQuotes().Limit(1))
	if err != nil {
		return nil, fmt.Errorf("latest quote: %w", err)
	}

	if len(quotes) == 0 {
		return nil, nil //nolint:nilnil // empty store
	}

	return &quotes[0], nil
}

// ListQuotes implements ports.QuoteStore.
func (s *Store) ListQuotes(ctx context.Context, page domain.Page) ([]domain.Quote, error) {
	quotes, err := s.loadQuotes(ctx, selectQuotes().Limit(uint64(page.Limit)).Offset(uint64(page.Offset))) //nolint:gosec // validated non-negative
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	return quotes, nil
}

// ListQuotesBySubmitter implements ports.QuoteStore.
func (s *Store) ListQuotesBySubmitter(ctx context.Context, userID string, page domain.Page) ([]domain.Quote, error) {
	b := selectQuotes().
		Where(sq.Eq{"q.submitted_by_id": userID}).
		Limit(uint64(page.Limit)).Offset(uint64(page.Offset)) //nolint:gosec // validated non-negative

	quotes, err := s.loadQuotes(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list quotes of user %s: %w", strconv.Quote(userID), err)
	}

	return quotes, nil
}

// CountQuotesBySubmitter implements ports.QuoteStore.
func (s *Store) CountQuotesBySubmitter(ctx context.Context, userID string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(tableQuotes).
		Where(sq.Eq{"submitted_by_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quotes of user %s: %w", strconv.Quote(userID), err)
	}

	return n, nil
}

// CreateQuote implements ports.QuoteStore.
func (s *Store) CreateQuote(ctx context.Context, q *domain.Quote, speakerIDs []int64) (int64, error) {
	query, args, err := psql.Insert(tableQuotes).
		Columns("content", "context", "quote_date", "quote_date_precision", "submitted_by_id").
		Values(q.Content, q.Context, q.QuoteDate, string(q.QuoteDatePrecision), q.SubmittedByID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapError(err, "quote", "")
	}

	if err := s.linkSpeakers(ctx, id, speakerIDs); err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateQuote implements ports.QuoteStore.
func (s *Store) UpdateQuote(ctx context.Context, q *domain.Quote, speakerIDs []int64) error {
	key := strconv.FormatInt(q.ID, 10)

	n, err := s.exec(ctx, psql.Update(tableQuotes).
		Set("content", q.Content).
		Set("context", q.Context).
		Set("quote_date", q.QuoteDate).
		Set("quote_date_precision", string(q.QuoteDatePrecision)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": q.ID}))
	if err != nil {
		return mapError(err, "quote", key)
	}

	if n == 0 {
		return domain.NewNotFoundError(domain.EntityQuote, key)
	}

	if _, err := s.exec(ctx, psql.Delete(tableQuoteSpeakers).Where(sq.Eq{"quote_id": q.ID})); err != nil {
		return mapError(err, "quote", key)
	}

	return s.linkSpeakers(ctx, q.ID, speakerIDs)
}

func (s *Store) linkSpeakers(ctx context.Context, quoteID int64, speakerIDs []int64) error {
	if len(speakerIDs) == 0 {
		return nil
	}

	b := psql.Insert(tableQuoteSpeakers).Columns("quote_id", "speaker_id")
	for _, id := range speakerIDs {
		b = b.Values(quoteID, id)
	}

	if _, err := s.exec(ctx, b); err != nil {
		return mapError(err, "quote", strconv.FormatInt(quoteID, 10))
	}

	return nil
}

// DeleteQuote implements ports.QuoteStore.
func (s *Store) DeleteQuote(ctx context.Context, id int64) error {
	key := strconv.FormatInt(id, 10)

	n, err := s.exec(ctx, psql.Delete(tableQuotes).Where(sq.Eq{"id": id}))
	if err != nil {
		return mapError(err, "quote", key)
	}

	if n == 0 {
		return domain.NewNotFoundError(domain.EntityQuote, key)
	}

	return nil
}

// QuotesCreatedIn implements ports.QuoteStore. Votes for all quotes are
// fetched in a single query.
func (s *Store) QuotesCreatedIn(ctx context.Context, year int) ([]domain.QuoteWithVotes, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	quotes, err := s.loadQuotes(ctx, selectQuotes().Where(sq.And{
		sq.GtOrEq{"q.created_at": start},
		sq.Lt{"q.created_at": start.AddDate(1, 0, 0)},
	}))
	if err != nil {
		return nil, fmt.Errorf("quotes created in %d: %w", year, err)
	}

	out := make([]domain.QuoteWithVotes, len(quotes))
	if len(quotes) == 0 {
		return out, nil
	}

	ids := make([]int64, len(quotes))
	for i := range quotes {
		ids[i] = quotes[i].ID
	}

	query, args, err := psql.Select("id", "quote_id", "user_id", "vote_type", "created_at").
		From(tableQuoteVotes).
		Where(sq.Eq{"quote_id": ids}).
		OrderBy("quote_id", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []voteRow
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("votes for %d: %w", year, err)
	}

	byQuote := make(map[int64][]domain.Vote, len(quotes))
	for i := range rows {
		byQuote[rows[i].QuoteID] = append(byQuote[rows[i].QuoteID], rows[i].toDomain())
	}

	for i := range quotes {
		out[i] = domain.QuoteWithVotes{Quote: quotes[i], Votes: byQuote[quotes[i].ID]}
	}

	return out, nil
}

// YearCounts implements ports.QuoteStore.
func (s *Store) YearCounts(ctx context.Context) ([]domain.YearCount, error) {
	year := columns[domain.FieldCreatedYear]

	query, args, err := psql.Select(year+"::int AS year", "COUNT(*) AS count").
		From(tableQuotes + " q").
		GroupBy("1").
		OrderBy("1 DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var counts []domain.YearCount
	if err := pgxscan.Select(ctx, s.q(ctx), &counts, query, args...); err != nil {
		return nil, fmt.Errorf("year counts: %w", err)
	}

	return counts, nil
}
