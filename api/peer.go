package api

import (
	"context"
	"fmt"
	"time"

	"github.com/saeidalz13/battleship-peer/internal"
	cerr "github.com/saeidalz13/battleship-peer/internal/error"
	mb "github.com/saeidalz13/battleship-peer/models/battleship"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	inboxSize            = 64
	outboxSize           = 64
	subscriberBufferSize = 16
	deliveryTimeout      = time.Second * 5
)

// Transport delivers an envelope to the peer at address. Delivery is
// assumed reliable and ordered per destination.
type Transport interface {
	Send(ctx context.Context, address string, env mc.Envelope) error
}

// Analytics counters are best effort. A failure is logged and nothing
// else happens.
type Analytics interface {
	IncrementRoomsCreatedCount(ctx context.Context) error
	IncrementMatchesPairedCount(ctx context.Context) error
}

type peerMsg interface{ isPeerMsg() }

type execute struct {
	op    Operation
	reply chan result
}

type deliver struct {
	sender string
	msg    mc.PeerMessage
}

type subscribe struct {
	id     string
	outbox chan mc.RespState
}

type unsubscribe struct {
	id string
}

type getState struct {
	reply chan result
}

func (execute) isPeerMsg()     {}
func (deliver) isPeerMsg()     {}
func (subscribe) isPeerMsg()   {}
func (unsubscribe) isPeerMsg() {}
func (getState) isPeerMsg()    {}

type result struct {
	state mc.RespState
	err   error
}

type handlerFunc func(env Env, state *mb.PeerState) ([]Outbound, error)

// Peer owns one address worth of game state. A single goroutine takes
// jobs from the inbox one at a time, so a handler always has the state
// to itself. Outbound messages are handed to a second goroutine that
// sends them in commit order.
type Peer struct {
	address   string
	boardSize uint8
	store     StateStore
	transport Transport
	analytics Analytics
	clock     internal.Clock
	newRoomId func() string

	// Bounds each send, so a peer with a full inbox cannot stall our outbox
	deliveryTimeout time.Duration

	inbox       chan peerMsg
	outbox      chan []Outbound
	subscribers map[string]chan mc.RespState
	stopped     chan struct{}
}

type PeerOption func(*Peer) error

func NewPeer(address string, transport Transport, optFuncs ...PeerOption) (*Peer, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	p := &Peer{
		address:         address,
		boardSize:       mb.DefaultBoardSize,
		store:           NewMemoryStateStore(),
		transport:       transport,
		clock:           internal.SystemClock{},
		newRoomId:       internal.NewRoomId,
		deliveryTimeout: deliveryTimeout,
		inbox:           make(chan peerMsg, inboxSize),
		outbox:          make(chan []Outbound, outboxSize),
		subscribers:     make(map[string]chan mc.RespState),
		stopped:         make(chan struct{}),
	}
	for _, opt := range optFuncs {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func WithBoardSize(size uint8) PeerOption {
	return func(p *Peer) error {
		if size == 0 {
			return cerr.ErrInvalidBoardSize(size)
		}
		p.boardSize = size
		return nil
	}
}

func WithStateStore(store StateStore) PeerOption {
	return func(p *Peer) error {
		p.store = store
		return nil
	}
}

func WithAnalytics(analytics Analytics) PeerOption {
	return func(p *Peer) error {
		p.analytics = analytics
		return nil
	}
}

func WithClock(clock internal.Clock) PeerOption {
	return func(p *Peer) error {
		p.clock = clock
		return nil
	}
}

func WithRoomIdFunc(newRoomId func() string) PeerOption {
	return func(p *Peer) error {
		p.newRoomId = newRoomId
		return nil
	}
}

func WithDeliveryTimeout(d time.Duration) PeerOption {
	return func(p *Peer) error {
		if d <= 0 {
			return fmt.Errorf("delivery timeout must be positive, got: %s", d)
		}
		p.deliveryTimeout = d
		return nil
	}
}

func (p *Peer) Address() string {
	return p.address
}

// Run blocks until ctx is cancelled. It must be called once.
func (p *Peer) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p.dispatch(ctx)
		return nil
	})
	g.Go(func() error {
		p.loop(ctx)
		return nil
	})
	return g.Wait()
}

// Execute runs a local operation and returns the projection of the
// committed state. A rejected operation changes nothing and sends nothing.
func (p *Peer) Execute(ctx context.Context, op Operation) (mc.RespState, error) {
	reply := make(chan result, 1)
	if err := p.submit(ctx, execute{op: op, reply: reply}); err != nil {
		return mc.RespState{}, err
	}
	return p.await(ctx, reply)
}

// Deliver queues an envelope from another peer. It returns once the
// message is queued; rejections are only logged.
func (p *Peer) Deliver(ctx context.Context, env mc.Envelope) error {
	msg, err := env.Decode()
	if err != nil {
		return err
	}
	return p.submit(ctx, deliver{sender: env.Sender, msg: msg})
}

func (p *Peer) State(ctx context.Context) (mc.RespState, error) {
	reply := make(chan result, 1)
	if err := p.submit(ctx, getState{reply: reply}); err != nil {
		return mc.RespState{}, err
	}
	return p.await(ctx, reply)
}

// Subscribe registers a receiver of state snapshots. The current one is
// sent right away. The channel is closed on Unsubscribe, on shutdown, or
// when the receiver falls behind.
func (p *Peer) Subscribe(ctx context.Context, id string) (<-chan mc.RespState, error) {
	outbox := make(chan mc.RespState, subscriberBufferSize)
	if err := p.submit(ctx, subscribe{id: id, outbox: outbox}); err != nil {
		return nil, err
	}
	return outbox, nil
}

func (p *Peer) Unsubscribe(ctx context.Context, id string) error {
	return p.submit(ctx, unsubscribe{id: id})
}

func (p *Peer) submit(ctx context.Context, m peerMsg) error {
	select {
	case p.inbox <- m:
		return nil
	case <-p.stopped:
		return cerr.ErrPeerStopped()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Peer) await(ctx context.Context, reply <-chan result) (mc.RespState, error) {
	select {
	case res := <-reply:
		return res.state, res.err
	case <-p.stopped:
		return mc.RespState{}, cerr.ErrPeerStopped()
	case <-ctx.Done():
		return mc.RespState{}, ctx.Err()
	}
}

func (p *Peer) loop(ctx context.Context) {
	defer p.shutdown()

	for {
		select {
		case <-ctx.Done():
			return

		case m := <-p.inbox:
			switch msg := m.(type) {
			case execute:
				state, _, err := p.process(ctx, func(env Env, s *mb.PeerState) ([]Outbound, error) {
					return HandleOperation(env, s, msg.op)
				})
				if err != nil {
					zap.S().Warnf("operation rejected\tpeer: %s\top: %T\treason: %v", p.address, msg.op, err)
					msg.reply <- result{err: err}
					break
				}
				if _, isCreate := msg.op.(CreateRoom); isCreate {
					p.recordAnalytics(ctx, p.analyticsRoomCreated)
				}
				msg.reply <- result{state: Project(p.address, state)}

			case deliver:
				_, outbound, err := p.process(ctx, func(env Env, s *mb.PeerState) ([]Outbound, error) {
					return HandleMessage(env, s, msg.msg)
				})
				if err != nil {
					zap.S().Warnf("message rejected\tpeer: %s\tcode: %d\tsender: %s\treason: %v", p.address, msg.msg.Code(), msg.sender, err)
					break
				}
				if pairsMatch(outbound) {
					p.recordAnalytics(ctx, p.analyticsMatchPaired)
				}

			case subscribe:
				if old, prs := p.subscribers[msg.id]; prs {
					close(old)
				}
				p.subscribers[msg.id] = msg.outbox
				if state, err := p.store.Load(ctx, p.address); err == nil {
					msg.outbox <- Project(p.address, state)
				}

			case unsubscribe:
				if outbox, prs := p.subscribers[msg.id]; prs {
					close(outbox)
					delete(p.subscribers, msg.id)
				}

			case getState:
				state, err := p.store.Load(ctx, p.address)
				if err != nil {
					msg.reply <- result{err: err}
					break
				}
				msg.reply <- result{state: Project(p.address, state)}
			}
		}
	}
}

// Loads, runs the handler on a copy, and only on success saves the copy,
// queues its outbound messages and tells subscribers.
func (p *Peer) process(ctx context.Context, handle handlerFunc) (*mb.PeerState, []Outbound, error) {
	stored, err := p.store.Load(ctx, p.address)
	if err != nil {
		return nil, nil, err
	}

	working := stored.Clone()
	outbound, err := handle(p.env(), working)
	if err != nil {
		return nil, nil, err
	}
	if err := p.store.Save(ctx, p.address, working); err != nil {
		return nil, nil, err
	}

	p.enqueue(ctx, outbound)
	p.broadcast(Project(p.address, working))
	return working, outbound, nil
}

func (p *Peer) env() Env {
	return Env{
		Self:      p.address,
		BoardSize: p.boardSize,
		NowMicros: p.clock.NowMicros(),
		RoomId:    p.newRoomId(),
	}
}

func (p *Peer) enqueue(ctx context.Context, outbound []Outbound) {
	if len(outbound) == 0 {
		return
	}
	select {
	case p.outbox <- outbound:
	case <-ctx.Done():
	}
}

func (p *Peer) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch := <-p.outbox:
			if err := p.sendBatch(ctx, batch); err != nil {
				zap.S().Warnf("delivery failed\tpeer: %s\terrors: %v", p.address, err)
			}
		}
	}
}

// One failed destination does not stop the rest of the batch.
func (p *Peer) sendBatch(ctx context.Context, batch []Outbound) error {
	var errs error
	for _, o := range batch {
		env, err := mc.NewEnvelope(p.address, o.Msg)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := p.send(ctx, o.To, env); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("code %d to %s: %w", env.Code, o.To, err))
		}
	}
	return errs
}

// A send that times out is dropped.
func (p *Peer) send(ctx context.Context, address string, env mc.Envelope) error {
	ctx, cancel := context.WithTimeout(ctx, p.deliveryTimeout)
	defer cancel()
	return p.transport.Send(ctx, address, env)
}

func (p *Peer) broadcast(snap mc.RespState) {
	for id, outbox := range p.subscribers {
		select {
		case outbox <- snap:
		default:
			// Subscriber is slow; drop it
			close(outbox)
			delete(p.subscribers, id)
		}
	}
}

func (p *Peer) shutdown() {
	for id, outbox := range p.subscribers {
		close(outbox)
		delete(p.subscribers, id)
	}
	close(p.stopped)
}

func pairsMatch(outbound []Outbound) bool {
	for _, o := range outbound {
		if _, ok := o.Msg.(mc.MatchmakingStart); ok {
			return true
		}
	}
	return false
}

func (p *Peer) analyticsRoomCreated(ctx context.Context) error {
	return p.analytics.IncrementRoomsCreatedCount(ctx)
}

func (p *Peer) analyticsMatchPaired(ctx context.Context) error {
	return p.analytics.IncrementMatchesPairedCount(ctx)
}

func (p *Peer) recordAnalytics(ctx context.Context, increment func(context.Context) error) {
	if p.analytics == nil {
		return
	}
	if err := increment(ctx); err != nil {
		// for now not failing the job for it
		zap.S().Warnf("analytics update failed\tpeer: %s\terr: %v", p.address, err)
	}
}
