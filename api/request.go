package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

// Request is one client frame. Its payload shape depends on the code.
type Request struct {
	payload []byte
}

func NewRequest(payload []byte) Request {
	return Request{payload: payload}
}

func decodePayload[T any](payload []byte) (T, error) {
	var msg mc.Message[T]
	if err := json.Unmarshal(payload, &msg); err != nil {
		return msg.Payload, cerr.ErrNilPayload()
	}
	return msg.Payload, nil
}

func isOperationCode(code uint8) bool {
	return code >= mc.CodeCreateRoom && code <= mc.CodeDeclineInvite
}

// Operation maps a client code to the local operation it stands for.
func (r Request) Operation(code uint8) (Operation, error) {
	switch code {
	case mc.CodeCreateRoom:
		req, err := decodePayload[mc.ReqCreateRoom](r.payload)
		return CreateRoom{HostName: req.HostName}, err

	case mc.CodeJoinRoom:
		req, err := decodePayload[mc.ReqJoinRoom](r.payload)
		return JoinRoom{HostAddress: req.HostAddress, PlayerName: req.PlayerName}, err

	case mc.CodeSearchPlayer:
		req, err := decodePayload[mc.ReqSearchPlayer](r.payload)
		return SearchPlayer{OrchestratorAddress: req.OrchestratorAddress, PlayerName: req.PlayerName}, err

	case mc.CodeSubmitBoard:
		req, err := decodePayload[mc.ReqSubmitBoard](r.payload)
		return SubmitBoard{Ships: req.Ships}, err

	case mc.CodeStartGame:
		return StartGame{}, nil

	case mc.CodeAttack:
		req, err := decodePayload[mc.ReqAttack](r.payload)
		return Attack{Row: req.Row, Col: req.Col}, err

	case mc.CodeLeaveRoom:
		return LeaveRoom{}, nil

	case mc.CodeRequestFriend:
		req, err := decodePayload[mc.ReqPeerAddress](r.payload)
		return RequestFriend{TargetAddress: req.Address}, err

	case mc.CodeAcceptFriend:
		req, err := decodePayload[mc.ReqPeerAddress](r.payload)
		return AcceptFriend{RequesterAddress: req.Address}, err

	case mc.CodeDeclineFriend:
		req, err := decodePayload[mc.ReqPeerAddress](r.payload)
		return DeclineFriend{RequesterAddress: req.Address}, err

	case mc.CodeInviteFriend:
		req, err := decodePayload[mc.ReqPeerAddress](r.payload)
		return InviteFriend{FriendAddress: req.Address}, err

	case mc.CodeAcceptInvite:
		req, err := decodePayload[mc.ReqAcceptInvite](r.payload)
		return AcceptInvite{HostAddress: req.HostAddress, PlayerName: req.PlayerName}, err

	case mc.CodeDeclineInvite:
		req, err := decodePayload[mc.ReqDeclineInvite](r.payload)
		return DeclineInvite{HostAddress: req.HostAddress}, err

	default:
		return nil, cerr.ErrInvalidCode(code)
	}
}
