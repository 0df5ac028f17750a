package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// ListSpeakers implements ports.SpeakerStore.
func (s *Store) ListSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Speaker, 0, len(s.data.speakers))
	for _, sp := range s.data.speakers {
		out = append(out, s.withCreator(sp))
	}

	slices.SortFunc(out, func(a, b domain.Speaker) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}

// GetSpeaker implements ports.SpeakerStore.
func (s *Store) GetSpeaker(ctx context.Context, id int64) (*domain.Speaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sp, ok := s.data.speakers[id]
	if !ok {
		return nil, domain.NotFoundByID(domain.EntitySpeaker, id)
	}

	sp = s.withCreator(sp)

	return &sp, nil
}

// CreateSpeaker implements ports.SpeakerStore.
func (s *Store) CreateSpeaker(ctx context.Context, name, createdByID string) (*domain.Speaker, error) {
	defer s.lock(ctx)()

	if _, ok := s.data.users[createdByID]; !ok {
		return nil, domain.NewNotFoundError(domain.EntityUser, createdByID)
	}

	if s.nameTaken(name, 0) {
		return nil, domain.NewConflictError(domain.EntitySpeaker, "name already exists")
	}

	s.data.nextSpeakerID++
	sp := domain.Speaker{
		ID:          s.data.nextSpeakerID,
		Name:        name,
		CreatedByID: createdByID,
		CreatedAt:   s.stamp(),
	}
	s.data.speakers[sp.ID] = sp

	sp = s.withCreator(sp)

	return &sp, nil
}

// RenameSpeaker implements ports.SpeakerStore.
func (s *Store) RenameSpeaker(ctx context.Context, id int64, name string) (*domain.Speaker, error) {
	defer s.lock(ctx)()

	sp, ok := s.data.speakers[id]
	if !ok {
		return nil, domain.NotFoundByID(domain.EntitySpeaker, id)
	}

	if s.nameTaken(name, id) {
		return nil, domain.NewConflictError(domain.EntitySpeaker, "name already exists")
	}

	sp.Name = name
	s.data.speakers[id] = sp

	sp = s.withCreator(sp)

	return &sp, nil
}

// DeleteSpeaker implements ports.SpeakerStore. A speaker still credited on
// a quote cannot be removed.
func (s *Store) DeleteSpeaker(ctx context.Context, id int64) error {
	defer s.lock(ctx)()

	if _, ok := s.data.speakers[id]; !ok {
		return domain.NotFoundByID(domain.EntitySpeaker, id)
	}

	for _, ids := range s.data.links {
		if slices.Contains(ids, id) {
			return domain.NewConflictError(domain.EntitySpeaker, "speaker is linked to quotes")
		}
	}

	delete(s.data.speakers, id)

	return nil
}

// CountExisting implements ports.SpeakerStore.
func (s *Store) CountExisting(ctx context.Context, ids []int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0

	for _, id := range ids {
		if _, ok := s.data.speakers[id]; ok {
			n++
		}
	}

	return n, nil
}

func (s *Store) nameTaken(name string, except int64) bool {
	for _, sp := range s.data.speakers {
		if sp.Name == name && sp.ID != except {
			return true
		}
	}

	return false
}

func (s *Store) withCreator(sp domain.Speaker) domain.Speaker {
	sp.CreatedByName = s.data.users[sp.CreatedByID].Name
	return sp
}
