package api

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

// Env is what a handler knows about the peer running it. A fresh one is
// built for every job.
type Env struct {
	Self      string
	BoardSize uint8
	NowMicros uint64

	// Used only if the job creates a room
	RoomId string
}

// Outbound is a message the handler wants delivered to another peer
// once its state change has been committed.
type Outbound struct {
	To  string
	Msg mc.PeerMessage
}

func send(to string, msg mc.PeerMessage) Outbound {
	return Outbound{To: to, Msg: msg}
}

func validateAddress(address string) error {
	if address == "" || strings.ContainsAny(address, " \t\r\n/") {
		return cerr.ErrInvalidAddress(address)
	}
	return nil
}

// Same as validateAddress but the peer may not name itself.
func validatePeerAddress(self, address string) error {
	if err := validateAddress(address); err != nil {
		return err
	}
	if address == self {
		return cerr.ErrSelfAddress(address)
	}
	return nil
}
