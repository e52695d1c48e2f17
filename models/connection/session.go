package connection

import (
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
)

type ConnectionHandler interface {
	writeToConnWithRetry(msg any) error
	onConnErr(err error) uint8
}

// Session is one websocket connection, either a local client or a link
// to another peer. Writes are serialized; gorilla allows one writer at
// a time.
type Session struct {
	id        string
	conn      *websocket.Conn
	writeMu   sync.Mutex
	createdAt time.Time
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) WriteJSON(msg any) error {
	return s.writeToConnWithRetry(msg)
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		zap.S().Warnf("timeout error: %v", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		zap.S().Warnf("high server load/traffic error: %v", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseAbnormalClosure) {
		zap.S().Infof("abnormal closure error: %v", err)
		return ConnLoopAbnormalClosureRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		zap.S().Infof("close error: %v", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		zap.S().Errorf("critical error: %v", err)
		return ConnLoopBreak
	}

	/*
		Peers and clients only ever send JSON text frames. Anything that
		closes with these codes is not speaking our protocol, so the
		loop breaks instead of reading more garbage.
	*/
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		zap.S().Warnf("non-critical error: %v", err)
		return ConnLoopBreak
	}

	zap.S().Errorf("unexpected error: %v", err)
	return ConnLoopBreak
}

// Writes to the connection of that session. Timeouts and server load
// are retried with a linear back off; everything else is returned as
// a ConnErr.
func (s *Session) writeToConnWithRetry(msg any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var retries uint8

writeLoop:
	for {
		err := s.conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries < maxWriteWsRetries {
				retries++
				zap.S().Infof("writing to ws [%s] failed; retrying... (retry no. %d)", s.id, retries)
				time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
				continue writeLoop
			}
			zap.S().Warnf("max retries reached for writing to ws [%s]: %v", s.id, err)
			return NewConnErr(ConnLoopBreak).AddDesc(err.Error())

		case ConnLoopAbnormalClosureRetry:
			return NewConnErr(ConnLoopAbnormalClosureRetry).AddDesc(err.Error())

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking writeLoop due to: " + err.Error())
		}
	}
}

// Reads the next frame. gorilla does not recover a connection after a
// failed read, so any error means the session is done.
func (s *Session) ReadMessage() ([]byte, error) {
	_, payload, err := s.conn.ReadMessage()
	if err != nil {
		zap.S().Infof("break ws conn loop [%s] due to: %v", s.id, err)
		return nil, err
	}
	return payload, nil
}

var _ ConnectionHandler = (*Session)(nil)
