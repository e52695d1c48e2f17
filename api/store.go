package api

import (
	"context"
	"sync"

	mb "github.com/saeidalz13/battleship-peer/models/battleship"
)

// StateStore loads a peer's state before a job and saves it after.
// Load returns a fresh state for an address it has never seen.
type StateStore interface {
	Load(ctx context.Context, address string) (*mb.PeerState, error)
	Save(ctx context.Context, address string, state *mb.PeerState) error
}

type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]*mb.PeerState
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string]*mb.PeerState)}
}

func (ms *MemoryStateStore) Load(_ context.Context, address string) (*mb.PeerState, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	state, prs := ms.states[address]
	if !prs {
		return mb.NewPeerState(), nil
	}
	return state.Clone(), nil
}

func (ms *MemoryStateStore) Save(_ context.Context, address string, state *mb.PeerState) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.states[address] = state.Clone()
	return nil
}

var _ StateStore = (*MemoryStateStore)(nil)
