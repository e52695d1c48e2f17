package api

import (
	"context"
	"sync"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

type Deliverer interface {
	Deliver(ctx context.Context, env mc.Envelope) error
}

// Switchboard connects peers living in the same process. Envelopes keep
// their encoded payload, so receivers decode them like on the wire.
type Switchboard struct {
	mu    sync.RWMutex
	peers map[string]Deliverer
}

func NewSwitchboard() *Switchboard {
	return &Switchboard{peers: make(map[string]Deliverer)}
}

func (sb *Switchboard) Register(address string, d Deliverer) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.peers[address] = d
}

func (sb *Switchboard) Unregister(address string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	delete(sb.peers, address)
}

func (sb *Switchboard) Send(ctx context.Context, address string, env mc.Envelope) error {
	sb.mu.RLock()
	d, prs := sb.peers[address]
	sb.mu.RUnlock()

	if !prs {
		return cerr.ErrSessionNotFound(address)
	}
	return d.Deliver(ctx, env)
}

var _ Transport = (*Switchboard)(nil)
