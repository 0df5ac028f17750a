package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// ListUsers implements ports.UserStore.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Collect(maps.Values(s.data.users))

	slices.SortFunc(out, func(a, b domain.User) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	if out == nil {
		out = []domain.User{}
	}

	return out, nil
}

// GetUser implements ports.UserStore.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.data.users[id]
	if !ok {
		return nil, domain.NewNotFoundError(domain.EntityUser, id)
	}

	return &u, nil
}

// EnsureUser implements ports.UserStore.
func (s *Store) EnsureUser(ctx context.Context, p domain.Principal) error {
	defer s.lock(ctx)()

	u := s.data.users[p.UserID]
	u.ID = p.UserID
	u.Name = p.Name

	if p.Role != "" {
		u.Role = p.Role
	} else if u.Role == "" {
		u.Role = domain.RoleUser
	}

	s.data.users[p.UserID] = u

	return nil
}
