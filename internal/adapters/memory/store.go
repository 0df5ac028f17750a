// Package memory is an in-process implementation of the store ports. It
// backs the local profile and the BDD suite.
//
// All methods share one RWMutex. RunInTx serialises transactions and
// restores a snapshot of the state when fn fails, so a failed multi-step
// write leaves nothing behind. Writes made outside a transaction wait for
// the running one to finish, so a restore never erases them.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
	"github.com/hearsayhub/hearsay-hub/internal/ports"
)

var (
	_ ports.QuoteStore    = (*Store)(nil)
	_ ports.VoteStore     = (*Store)(nil)
	_ ports.SpeakerStore  = (*Store)(nil)
	_ ports.UserStore     = (*Store)(nil)
	_ ports.TxManager     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

type voteKey struct {
	quoteID int64
	userID  string
}

type state struct {
	quotes   map[int64]domain.Quote
	links    map[int64][]int64
	speakers map[int64]domain.Speaker
	users    map[string]domain.User
	votes    map[voteKey]domain.Vote

	nextQuoteID   int64
	nextSpeakerID int64
	nextVoteID    int64
}

func newState() state {
	return state{
		quotes:   make(map[int64]domain.Quote),
		links:    make(map[int64][]int64),
		speakers: make(map[int64]domain.Speaker),
		users:    make(map[string]domain.User),
		votes:    make(map[voteKey]domain.Vote),
	}
}

func (s *state) clone() state {
	c := *s
	c.quotes = maps.Clone(s.quotes)
	c.speakers = maps.Clone(s.speakers)
	c.users = maps.Clone(s.users)
	c.votes = maps.Clone(s.votes)

	c.links = make(map[int64][]int64, len(s.links))
	for id, ids := range s.links {
		c.links[id] = slices.Clone(ids)
	}

	return c
}

// Store holds quotes, speakers, users and votes in memory.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	now  func() time.Time
	data state
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for created and updated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:  time.Now,
		data: newState(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type txKey struct{}

// inTx reports whether ctx belongs to a transaction on this store.
func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// lock takes the write lock. Outside a transaction it first takes txMu, so
// the write lands either before a transaction's snapshot or after its
// commit or rollback.
func (s *Store) lock(ctx context.Context) (unlock func()) {
	if s.inTx(ctx) {
		s.mu.Lock()
		return s.mu.Unlock
	}

	s.txMu.Lock()
	s.mu.Lock()

	return func() {
		s.mu.Unlock()
		s.txMu.Unlock()
	}
}

// RunInTx implements ports.TxManager. A call made inside a transaction joins
// it.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}

		if err != nil {
			s.restore(snapshot)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Store) restore(snapshot state) {
	s.mu.Lock()
	s.data = snapshot
	s.mu.Unlock()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error { return ctx.Err() }

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}
