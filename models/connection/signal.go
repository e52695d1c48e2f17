package connection

import (
	"encoding/json"
)

// Codes a local client sends to its own peer, plus the codes the peer
// answers with.
const (
	CodeSessionID uint8 = iota
	CodeCreateRoom
	CodeJoinRoom
	CodeSearchPlayer
	CodeSubmitBoard
	CodeStartGame
	CodeAttack
	CodeLeaveRoom
	CodeRequestFriend
	CodeAcceptFriend
	CodeDeclineFriend
	CodeInviteFriend
	CodeAcceptInvite
	CodeDeclineInvite

	// Ask for the current projection without changing anything
	CodeState

	// Pushed to clients after an inbound peer message changed the state
	CodeStateUpdate

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

// Codes of messages exchanged between peers.
const (
	CodeJoinRequest uint8 = iota + 100
	CodeInitialStateSync
	CodeRoomSync
	CodeBoardSubmittedNotice
	CodeAttackRequest
	CodeRevealResult
	CodeLeaveNotice
	CodeFriendRequest
	CodeFriendAccepted
	CodeRoomInvitation
	CodeRoomInvitationCancelled
	CodeMatchmakingEnqueue
	CodeMatchmakingEnqueued
	CodeMatchmakingStart
	CodeMatchmakingFound
)

type Signal struct {
	Code *uint8 `json:"code"`
}

// Reads only the "code" field of an incoming payload.
func FetchCode(payload []byte) (uint8, bool) {
	var signal Signal
	if err := json.Unmarshal(payload, &signal); err != nil || signal.Code == nil {
		return 0, false
	}
	return *signal.Code, true
}
