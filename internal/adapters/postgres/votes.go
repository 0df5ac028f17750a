package postgres

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

func voteKey(quoteID int64, userID string) string {
	return strconv.FormatInt(quoteID, 10) + "/" + userID
}

func byQuoteAndUser(quoteID int64, userID string) sq.Eq {
	return sq.Eq{"quote_id": quoteID, "user_id": userID}
}

// FindVote implements ports.VoteStore.
func (s *Store) FindVote(ctx context.Context, quoteID int64, userID string) (*domain.Vote, error) {
	query, args, err := psql.Select("id", "quote_id", "user_id", "vote_type", "created_at").
		From(tableQuoteVotes).
		Where(byQuoteAndUser(quoteID, userID)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row voteRow
	if err := pgxscan.Get(ctx, s.q(ctx), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil //nolint:nilnil // no vote yet
		}

		return nil, mapError(err, "vote", voteKey(quoteID, userID))
	}

	v := row.toDomain()

	return &v, nil
}

// InsertVote implements ports.VoteStore. A concurrent insert for the same
// pair surfaces as domain.ErrConflict.
func (s *Store) InsertVote(ctx context.Context, quoteID int64, userID string, voteType domain.VoteType) error {
	_, err := s.exec(ctx, psql.Insert(tableQuoteVotes).
		Columns("quote_id", "user_id", "vote_type").
		Values(quoteID, userID, string(voteType)))
	if err != nil {
		return mapError(err, "vote", voteKey(quoteID, userID))
	}

	return nil
}

// UpdateVoteType implements ports.VoteStore. Like DeleteVote it reports a
// missing row as domain.ErrConflict: the vote read earlier in the same cast
// was removed by a concurrent one.
func (s *Store) UpdateVoteType(ctx context.Context, quoteID int64, userID string, voteType domain.VoteType) error {
	n, err := s.exec(ctx, psql.Update(tableQuoteVotes).
		Set("vote_type", string(voteType)).
		Where(byQuoteAndUser(quoteID, userID)))
	if err != nil {
		return mapError(err, "vote", voteKey(quoteID, userID))
	}

	if n == 0 {
		return domain.NewConflictError(domain.EntityVote, "vote changed concurrently")
	}

	return nil
}

// DeleteVote implements ports.VoteStore.
func (s *Store) DeleteVote(ctx context.Context, quoteID int64, userID string) error {
	n, err := s.exec(ctx, psql.Delete(tableQuoteVotes).Where(byQuoteAndUser(quoteID, userID)))
	if err != nil {
		return mapError(err, "vote", voteKey(quoteID, userID))
	}

	if n == 0 {
		return domain.NewConflictError(domain.EntityVote, "vote changed concurrently")
	}

	return nil
}

// CountVotes implements ports.VoteStore.
func (s *Store) CountVotes(ctx context.Context, quoteID int64, voteType domain.VoteType) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(tableQuoteVotes).
		Where(sq.Eq{"quote_id": quoteID, "vote_type": string(voteType)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s votes on quote %d: %w", voteType, quoteID, err)
	}

	return n, nil
}

type voteTypeCount struct {
	VoteType string `db:"vote_type"`
	N        int    `db:"n"`
}

// CountVotesBySubmitter implements ports.VoteStore.
func (s *Store) CountVotesBySubmitter(ctx context.Context, userID string) (domain.VoteCounts, error) {
	query, args, err := psql.Select("v.vote_type", "COUNT(*) AS n").
		From(tableQuoteVotes + " v").
		Join(tableQuotes + " q ON q.id = v.quote_id").
		Where(sq.Eq{"q.submitted_by_id": userID}).
		GroupBy("v.vote_type").
		ToSql()
	if err != nil {
		return domain.VoteCounts{}, fmt.Errorf("build query: %w", err)
	}

	var rows []voteTypeCount
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return domain.VoteCounts{}, fmt.Errorf("count votes received by user %s: %w", strconv.Quote(userID), err)
	}

	var c domain.VoteCounts

	for _, r := range rows {
		switch domain.VoteType(r.VoteType) {
		case domain.VoteUp:
			c.Upvotes = r.N
		case domain.VoteDown:
			c.Downvotes = r.N
		}
	}

	return c, nil
}

// ListVoters implements ports.VoteStore.
func (s *Store) ListVoters(ctx context.Context, quoteID int64, voteType domain.VoteType) ([]domain.Voter, error) {
	query, args, err := psql.Select("v.user_id", "COALESCE(u.name, '') AS name", "v.created_at AS voted_at").
		From(tableQuoteVotes+" v").
		LeftJoin(tableUsers+" u ON u.id = v.user_id").
		Where(sq.Eq{"v.quote_id": quoteID, "v.vote_type": string(voteType)}).
		OrderBy("v.created_at DESC", "v.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var voters []domain.Voter
	if err := pgxscan.Select(ctx, s.q(ctx), &voters, query, args...); err != nil {
		return nil, fmt.Errorf("list voters of quote %d: %w", quoteID, err)
	}

	for i := range voters {
		voters[i].VotedAt = voters[i].VotedAt.UTC()
	}

	return voters, nil
}
