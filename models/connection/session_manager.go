package connection

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/saeidalz13/battleship-peer/internal"
)

// SessionManager keeps the websocket sessions of local clients.
type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	TerminateSession(session *Session)
	Count() int
}

type ClientSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

func NewClientSessionManager() *ClientSessionManager {
	initMapSize := 10

	return &ClientSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

var _ SessionManager = (*ClientSessionManager)(nil)

func (csm *ClientSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	session := NewSession(internal.NewSessionId(), conn)

	csm.mu.Lock()
	csm.sessions[session.id] = session
	csm.mu.Unlock()

	return session
}

func (csm *ClientSessionManager) TerminateSession(session *Session) {
	csm.mu.Lock()
	delete(csm.sessions, session.id)
	csm.mu.Unlock()

	_ = session.Close()
	zap.S().Infof("session terminated: %s", session.id)
}

func (csm *ClientSessionManager) Count() int {
	csm.mu.RLock()
	defer csm.mu.RUnlock()
	return len(csm.sessions)
}

// To ensure that there is no dangling connections, sessions older than
// the cleanup interval are closed. A client that is still around just
// connects again; its peer state does not depend on the session.
func (csm *ClientSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(csm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			csm.mu.Lock()
			stale := make([]*Session, 0)
			for id, session := range csm.sessions {
				if time.Since(session.createdAt) > csm.cleanupInterval {
					stale = append(stale, session)
					delete(csm.sessions, id)
				}
			}
			csm.mu.Unlock()

			for _, session := range stale {
				_ = session.Close()
				zap.S().Infof("removed stale session: %s", session.id)
			}
		}
	}
}
