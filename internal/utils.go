package internal

import (
	"encoding/base64"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Room ids are uuid v4 so two peers creating rooms in the same
// microsecond never collide.
func NewRoomId() string {
	return uuid.NewString()
}

// URL compatible session id.
func NewSessionId() string {
	return base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
}

type Clock interface {
	NowMicros() uint64
}

type SystemClock struct{}

func (SystemClock) NowMicros() uint64 {
	return uint64(time.Now().UnixMicro())
}

var _ Clock = SystemClock{}

// FixedClock reports whatever instant was last set. Safe to move from
// a test while a peer goroutine reads it.
type FixedClock struct {
	micros atomic.Uint64
}

func NewFixedClock(micros uint64) *FixedClock {
	f := &FixedClock{}
	f.micros.Store(micros)
	return f
}

func (f *FixedClock) Set(micros uint64) {
	f.micros.Store(micros)
}

func (f *FixedClock) NowMicros() uint64 {
	return f.micros.Load()
}

var _ Clock = (*FixedClock)(nil)
