package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

// FindVote implements ports.VoteStore.
func (s *Store) FindVote(ctx context.Context, quoteID int64, userID string) (*domain.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data.votes[voteKey{quoteID: quoteID, userID: userID}]
	if !ok {
		return nil, nil //nolint:nilnil // no vote is not an error
	}

	return &v, nil
}

// errVoteGone reports a vote removed between read and write, e.g. by a
// double click. CastVote replays once on a conflict.
var errVoteGone = domain.NewConflictError(domain.EntityVote, "vote changed concurrently")

// InsertVote implements ports.VoteStore.
func (s *Store) InsertVote(ctx context.Context, quoteID int64, userID string, voteType domain.VoteType) error {
	defer s.lock(ctx)()

	if _, ok := s.data.quotes[quoteID]; !ok {
		return domain.NotFoundByID(domain.EntityQuote, quoteID)
	}

	if _, ok := s.data.users[userID]; !ok {
		return domain.NewNotFoundError(domain.EntityUser, userID)
	}

	key := voteKey{quoteID: quoteID, userID: userID}
	if _, ok := s.data.votes[key]; ok {
		return domain.NewConflictError(domain.EntityVote, "user has already voted on this quote")
	}

	s.data.nextVoteID++
	s.data.votes[key] = domain.Vote{
		ID:        s.data.nextVoteID,
		QuoteID:   quoteID,
		UserID:    userID,
		Type:      voteType,
		CreatedAt: s.stamp(),
	}

	return nil
}

// UpdateVoteType implements ports.VoteStore.
func (s *Store) UpdateVoteType(ctx context.Context, quoteID int64, userID string, voteType domain.VoteType) error {
	defer s.lock(ctx)()

	key := voteKey{quoteID: quoteID, userID: userID}

	v, ok := s.data.votes[key]
	if !ok {
		return errVoteGone
	}

	v.Type = voteType
	s.data.votes[key] = v

	return nil
}

// DeleteVote implements ports.VoteStore.
func (s *Store) DeleteVote(ctx context.Context, quoteID int64, userID string) error {
	defer s.lock(ctx)()

	key := voteKey{quoteID: quoteID, userID: userID}
	if _, ok := s.data.votes[key]; !ok {
		return errVoteGone
	}

	delete(s.data.votes, key)

	return nil
}

// CountVotes implements ports.VoteStore.
func (s *Store) CountVotes(ctx context.Context, quoteID int64, voteType domain.VoteType) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0

	for k, v := range s.data.votes {
		if k.quoteID == quoteID && v.Type == voteType {
			n++
		}
	}

	return n, nil
}

// CountVotesBySubmitter implements ports.VoteStore.
func (s *Store) CountVotesBySubmitter(ctx context.Context, userID string) (domain.VoteCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	received := make([]domain.Vote, 0)

	for k, v := range s.data.votes {
		if s.data.quotes[k.quoteID].SubmittedByID == userID {
			received = append(received, v)
		}
	}

	return domain.Tally(received), nil
}

// ListVoters implements ports.VoteStore.
func (s *Store) ListVoters(ctx context.Context, quoteID int64, voteType domain.VoteType) ([]domain.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes := s.votesFor(quoteID)
	slices.Reverse(votes)

	out := make([]domain.Voter, 0, len(votes))

	for _, v := range votes {
		if v.Type != voteType {
			continue
		}

		out = append(out, domain.Voter{
			UserID:  v.UserID,
			Name:    s.data.users[v.UserID].Name,
			VotedAt: v.CreatedAt,
		})
	}

	return out, nil
}

// votesFor returns the votes on a quote, oldest first. Callers hold s.mu.
func (s *Store) votesFor(quoteID int64) []domain.Vote {
	out := make([]domain.Vote, 0)

	for k, v := range s.data.votes {
		if k.quoteID == quoteID {
			out = append(out, v)
		}
	}

	slices.SortFunc(out, func(a, b domain.Vote) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out
}
