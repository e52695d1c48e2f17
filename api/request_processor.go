package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

var (
	// allowedOrigins     = map[string]bool{
	// 	"https://www.allowed_url.com": true,
	// }
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more that enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// RequestProcessor serves the local client and the other peers. Both
// end up as jobs in the same peer inbox.
type RequestProcessor struct {
	peer           *Peer
	sessionManager mc.SessionManager
}

func NewRequestProcessor(peer *Peer, sessionManager mc.SessionManager) RequestProcessor {
	return RequestProcessor{
		peer:           peer,
		sessionManager: sessionManager,
	}
}

func (rp RequestProcessor) ServeClient(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnf("client upgrade failed: %v", err)
		return
	}

	session := rp.sessionManager.GenerateNewSession(conn)
	zap.S().Infof("a new client connection established\tRemote Addr: %s\tactive sessions: %d", conn.RemoteAddr().String(), rp.sessionManager.Count())
	rp.processClientRequests(r, session)
}

func (rp RequestProcessor) processClientRequests(r *http.Request, session *mc.Session) {
	ctx := r.Context()
	sessionId := session.Id()
	defer rp.sessionManager.TerminateSession(session)

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := session.WriteJSON(resp); err != nil {
		return
	}

	updates, err := rp.peer.Subscribe(ctx, sessionId)
	if err != nil {
		zap.S().Warnf("subscribe failed for session [%s]: %v", sessionId, err)
		return
	}
	defer func() { _ = rp.peer.Unsubscribe(ctx, sessionId) }()
	go forwardStateUpdates(session, updates)

sessionLoop:
	for {
		payload, err := session.ReadMessage()
		if err != nil {
			// The client went away or the connection broke
			break sessionLoop
		}

		code, ok := mc.FetchCode(payload)
		if !ok {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err := session.WriteJSON(msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		if code == mc.CodeState {
			state, err := rp.peer.State(ctx)
			if err := session.WriteJSON(stateMessage(code, state, err)); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		if !isOperationCode(code) {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			msg.AddError("", "invalid code in the incoming payload")
			if err := session.WriteJSON(msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		op, err := NewRequest(payload).Operation(code)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](code)
			msg.AddError(err.Error(), cerr.ConstErrInvalidPayload)
			if err := session.WriteJSON(msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		state, err := rp.peer.Execute(ctx, op)
		if errors.Is(err, cerr.ErrPeerStopped()) {
			break sessionLoop
		}
		if err := session.WriteJSON(stateMessage(code, state, err)); err != nil {
			break sessionLoop
		}
	}
}

func stateMessage(code uint8, state mc.RespState, err error) mc.Message[*mc.RespState] {
	msg := mc.NewMessage[*mc.RespState](code)
	if err != nil {
		message := cerr.ConstErrOperationRejected
		if code == mc.CodeAttack {
			message = cerr.ConstErrAttackFailed
		}
		msg.AddError(err.Error(), message)
		return msg
	}
	msg.AddPayload(&state)
	return msg
}

// Pushes committed snapshots until the peer closes the channel.
func forwardStateUpdates(session *mc.Session, updates <-chan mc.RespState) {
	for state := range updates {
		msg := mc.NewMessage[*mc.RespState](mc.CodeStateUpdate)
		msg.AddPayload(&state)
		if err := session.WriteJSON(msg); err != nil {
			return
		}
	}
}

// Inbound peer link. Every frame is one envelope.
func (rp RequestProcessor) ServePeer(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnf("peer upgrade failed: %v", err)
		return
	}

	session := mc.NewSession(conn.RemoteAddr().String(), conn)
	defer func() { _ = session.Close() }()
	zap.S().Infof("a new peer connection established\tRemote Addr: %s", session.Id())

peerLoop:
	for {
		payload, err := session.ReadMessage()
		if err != nil {
			break peerLoop
		}

		var env mc.Envelope
		if err := json.Unmarshal(payload, &env); err != nil {
			zap.S().Warnf("malformed envelope from [%s]: %v", session.Id(), err)
			continue peerLoop
		}

		if err := rp.peer.Deliver(r.Context(), env); err != nil {
			if errors.Is(err, cerr.ErrPeerStopped()) {
				break peerLoop
			}
			zap.S().Warnf("envelope dropped\tcode: %d\tsender: %s\treason: %v", env.Code, env.Sender, err)
		}
	}
}

func (rp RequestProcessor) HandleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := rp.peer.State(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		zap.S().Warnf("failed to encode state: %v", err)
	}
}

func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

var _ Transport = (*mc.PeerSessionManager)(nil)
