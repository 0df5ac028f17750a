package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

type userRow struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Role string `db:"role"`
}

// ListUsers implements ports.UserStore.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	query, args, err := psql.Select("id", "name", "role").From(tableUsers).OrderBy("name", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, r := range rows {
		users[i] = domain.User{ID: r.ID, Name: r.Name, Role: domain.Role(r.Role)}
	}

	return users, nil
}

// GetUser implements ports.UserStore.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query, args, err := psql.Select("id", "name", "role").From(tableUsers).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, s.q(ctx), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.NewNotFoundError(domain.EntityUser, id)
		}

		return nil, mapError(err, "user", id)
	}

	return &domain.User{ID: row.ID, Name: row.Name, Role: domain.Role(row.Role)}, nil
}

// EnsureUser implements ports.UserStore. New rows take the principal's role;
// existing rows only get their name refreshed.
func (s *Store) EnsureUser(ctx context.Context, p domain.Principal) error {
	role := p.Role
	if role == "" {
		role = domain.RoleUser
	}

	_, err := s.exec(ctx, psql.Insert(tableUsers).
		Columns("id", "name", "role").
		Values(p.UserID, p.Name, string(role)).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"))
	if err != nil {
		return mapError(err, "user", p.UserID)
	}

	return nil
}
