package connection

import (
	"encoding/json"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
)

type NoPayload bool

type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}

// PeerMessage is any message one peer sends to another.
type PeerMessage interface {
	Code() uint8
}

// Envelope is the wire form of a PeerMessage.
type Envelope struct {
	Code    uint8           `json:"code"`
	Sender  string          `json:"sender"`
	Payload json.RawMessage `json:"payload"`
}

func NewEnvelope(sender string, msg PeerMessage) (Envelope, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Code: msg.Code(), Sender: sender, Payload: payload}, nil
}

var peerMessageFactory = map[uint8]func() PeerMessage{
	CodeJoinRequest:             func() PeerMessage { return &JoinRequest{} },
	CodeInitialStateSync:        func() PeerMessage { return &InitialStateSync{} },
	CodeRoomSync:                func() PeerMessage { return &RoomSync{} },
	CodeBoardSubmittedNotice:    func() PeerMessage { return &BoardSubmittedNotice{} },
	CodeAttackRequest:           func() PeerMessage { return &AttackRequest{} },
	CodeRevealResult:            func() PeerMessage { return &RevealResult{} },
	CodeLeaveNotice:             func() PeerMessage { return &LeaveNotice{} },
	CodeFriendRequest:           func() PeerMessage { return &FriendRequest{} },
	CodeFriendAccepted:          func() PeerMessage { return &FriendAccepted{} },
	CodeRoomInvitation:          func() PeerMessage { return &RoomInvitation{} },
	CodeRoomInvitationCancelled: func() PeerMessage { return &RoomInvitationCancelled{} },
	CodeMatchmakingEnqueue:      func() PeerMessage { return &MatchmakingEnqueue{} },
	CodeMatchmakingEnqueued:     func() PeerMessage { return &MatchmakingEnqueued{} },
	CodeMatchmakingStart:        func() PeerMessage { return &MatchmakingStart{} },
	CodeMatchmakingFound:        func() PeerMessage { return &MatchmakingFound{} },
}

// Decodes the payload into the message variant named by the code.
// The returned message is always a pointer to the variant struct.
func (e Envelope) Decode() (PeerMessage, error) {
	newMsg, prs := peerMessageFactory[e.Code]
	if !prs {
		return nil, cerr.ErrInvalidCode(e.Code)
	}
	if len(e.Payload) == 0 {
		return nil, cerr.ErrNilPayload()
	}

	msg := newMsg()
	if err := json.Unmarshal(e.Payload, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
