package sqlc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	mb "github.com/saeidalz13/battleship-peer/models/battleship"
)

// StateStore keeps each peer's state as one jsonb row.
type StateStore struct {
	queries Querier
}

func NewStateStore(queries Querier) *StateStore {
	return &StateStore{queries: queries}
}

func (s *StateStore) Load(ctx context.Context, address string) (*mb.PeerState, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	raw, err := s.queries.GetPeerState(ctx, address)
	if errors.Is(err, sql.ErrNoRows) {
		return mb.NewPeerState(), nil
	}
	if err != nil {
		return nil, err
	}

	state := mb.NewPeerState()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *StateStore) Save(ctx context.Context, address string, state *mb.PeerState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return s.queries.UpsertPeerState(ctx, UpsertPeerStateParams{Address: address, State: raw})
}

func (s *StateStore) Delete(ctx context.Context, address string) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return s.queries.DeletePeerState(ctx, address)
}
