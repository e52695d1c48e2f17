package connection

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	PeerPath         = "/peer"
	handshakeTimeout = time.Second * 5
)

// PeerSessionManager sends envelopes to other peers over websockets.
// One outgoing session per address is dialed on first use and reused
// until it breaks.
type PeerSessionManager struct {
	dialer   *websocket.Dialer
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewPeerSessionManager() *PeerSessionManager {
	return &PeerSessionManager{
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
			ReadBufferSize:   2048,
			WriteBufferSize:  2048,
		},
		sessions: make(map[string]*Session),
	}
}

func PeerURL(address string) string {
	u := url.URL{Scheme: "ws", Host: address, Path: PeerPath}
	return u.String()
}

// Sends env to the peer at address. A cached session that broke in a
// recoverable way is dropped and dialed again once.
func (psm *PeerSessionManager) Send(ctx context.Context, address string, env Envelope) error {
	session, err := psm.session(ctx, address)
	if err != nil {
		return err
	}
	if err = session.WriteJSON(env); err == nil {
		return nil
	}

	psm.evict(address, session)
	var connErr ConnErr
	if !errors.As(err, &connErr) || !connErr.IsRecoverable() {
		return err
	}
	zap.S().Infof("peer session [%s] broken, redialing: %v", address, err)

	if session, err = psm.session(ctx, address); err != nil {
		return err
	}
	if err = session.WriteJSON(env); err != nil {
		psm.evict(address, session)
		return err
	}
	return nil
}

func (psm *PeerSessionManager) session(ctx context.Context, address string) (*Session, error) {
	psm.mu.RLock()
	session, prs := psm.sessions[address]
	psm.mu.RUnlock()
	if prs {
		return session, nil
	}

	psm.mu.Lock()
	defer psm.mu.Unlock()

	// Somebody else may have dialed while we waited for the lock
	if session, prs := psm.sessions[address]; prs {
		return session, nil
	}

	conn, _, err := psm.dialer.DialContext(ctx, PeerURL(address), nil)
	if err != nil {
		return nil, NewConnErr(ConnDialFailed).AddDesc(err.Error())
	}

	session = NewSession(address, conn)
	psm.sessions[address] = session
	go psm.drain(address, session)

	zap.S().Infof("peer session established: %s", address)
	return session, nil
}

// The receiving side never writes back, but reading is what processes
// close and ping frames. The session is dropped once reading fails.
func (psm *PeerSessionManager) drain(address string, session *Session) {
	for {
		if _, _, err := session.conn.ReadMessage(); err != nil {
			psm.evict(address, session)
			return
		}
	}
}

func (psm *PeerSessionManager) evict(address string, session *Session) {
	psm.mu.Lock()
	if current, prs := psm.sessions[address]; prs && current == session {
		delete(psm.sessions, address)
	}
	psm.mu.Unlock()

	_ = session.Close()
}

func (psm *PeerSessionManager) Close() {
	psm.mu.Lock()
	defer psm.mu.Unlock()

	for address, session := range psm.sessions {
		_ = session.Close()
		delete(psm.sessions, address)
	}
}
