// internal/store/memory.go
//
// In-memory round log.
// Records the result of each won session when several rounds are played in
// one invocation so the CLI can print a summary.
//
// Characteristics:
//   - Stores RoundResult values in insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrMissingID is returned by Save for results without an ID.
var ErrMissingID = errors.New("round result has no id")

// RoundResult is the record of one won session.
type RoundResult struct {
	ID       string
	Secret   int
	Attempts int
	Elapsed  time.Duration
	Daily    bool
}

// NewRoundResult stamps a result with a fresh ID.
func NewRoundResult(secret, attempts int, elapsed time.Duration, daily bool) RoundResult {
	return RoundResult{
		ID:       uuid.NewString(),
		Secret:   secret,
		Attempts: attempts,
		Elapsed:  elapsed,
		Daily:    daily,
	}
}

// Store defines the round log interface.
type Store interface {
	// Save appends a round result.
	Save(ctx context.Context, r RoundResult) error

	// List returns all results in the order they were saved.
	List(ctx context.Context) ([]RoundResult, error)

	// Best returns the result with the fewest attempts, earliest first on ties.
	// ok is false when nothing has been saved.
	Best(ctx context.Context) (best RoundResult, ok bool, err error)
}

// memory is a slice-backed Store implementation.
type memory struct {
	mu     sync.RWMutex // guards rounds
	rounds []RoundResult
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) Save(ctx context.Context, r RoundResult) error {
	if r.ID == "" {
		return ErrMissingID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds = append(m.rounds, r)
	return nil
}

func (m *memory) List(ctx context.Context) ([]RoundResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoundResult, len(m.rounds))
	copy(out, m.rounds)
	return out, nil
}

func (m *memory) Best(ctx context.Context) (RoundResult, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.rounds) == 0 {
		return RoundResult{}, false, nil
	}
	best := m.rounds[0]
	for _, r := range m.rounds[1:] {
		if r.Attempts < best.Attempts {
			best = r
		}
	}
	return best, true, nil
}
