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

type speakerRow struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	CreatedByID   string    `db:"created_by_id"`
	CreatedByName string    `db:"created_by_name"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r *speakerRow) toDomain() domain.Speaker {
	return domain.Speaker{
		ID:            r.ID,
		Name:          r.Name,
		CreatedByID:   r.CreatedByID,
		CreatedByName: r.CreatedByName,
		CreatedAt:     r.CreatedAt.UTC(),
	}
}

func selectSpeakers() sq.SelectBuilder {
	return psql.Select("s.id", "s.name", "s.created_by_id", "COALESCE(u.name, '') AS created_by_name", "s.created_at").
		From(tableSpeakers + " s").
		LeftJoin(tableUsers + " u ON u.id = s.created_by_id")
}

// ListSpeakers implements ports.SpeakerStore.
func (s *Store) ListSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	query, args, err := selectSpeakers().OrderBy("s.name", "s.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []speakerRow
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}

	speakers := make([]domain.Speaker, len(rows))
	for i := range rows {
		speakers[i] = rows[i].toDomain()
	}

	return speakers, nil
}

// GetSpeaker implements ports.SpeakerStore.
func (s *Store) GetSpeaker(ctx context.Context, id int64) (*domain.Speaker, error) {
	query, args, err := selectSpeakers().Where(sq.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row speakerRow
	if err := pgxscan.Get(ctx, s.q(ctx), &row, query, args...); err != nil {
		return nil, mapError(err, "speaker", strconv.FormatInt(id, 10))
	}

	sp := row.toDomain()

	return &sp, nil
}

// CreateSpeaker implements ports.SpeakerStore.
func (s *Store) CreateSpeaker(ctx context.Context, name, createdByID string) (*domain.Speaker, error) {
	query, args, err := psql.Insert(tableSpeakers).
		Columns("name", "created_by_id").
		Values(name, createdByID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, mapError(err, "speaker", name)
	}

	return s.GetSpeaker(ctx, id)
}

// RenameSpeaker implements ports.SpeakerStore.
func (s *Store) RenameSpeaker(ctx context.Context, id int64, name string) (*domain.Speaker, error) {
	key := strconv.FormatInt(id, 10)

	n, err := s.exec(ctx, psql.Update(tableSpeakers).Set("name", name).Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, mapError(err, "speaker", key)
	}

	if n == 0 {
		return nil, domain.NewNotFoundError(domain.EntitySpeaker, key)
	}

	return s.GetSpeaker(ctx, id)
}

// DeleteSpeaker implements ports.SpeakerStore. A speaker still credited on
// a quote cannot be removed.
func (s *Store) DeleteSpeaker(ctx context.Context, id int64) error {
	key := strconv.FormatInt(id, 10)

	n, err := s.exec(ctx, psql.Delete(tableSpeakers).Where(sq.Eq{"id": id}))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewConflictError(domain.EntitySpeaker, "speaker is linked to quotes")
		}

		return mapError(err, "speaker", key)
	}

	if n == 0 {
		return domain.NewNotFoundError(domain.EntitySpeaker, key)
	}

	return nil
}

// CountExisting implements ports.SpeakerStore. Duplicate ids count once.
func (s *Store) CountExisting(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := psql.Select("COUNT(*)").From(tableSpeakers).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count speakers: %w", err)
	}

	return n, nil
}
