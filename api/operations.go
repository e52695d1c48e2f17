package api

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
	mb "github.com/saeidalz13/battleship-peer/models/battleship"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

// Operation is a command issued by the local client against its own peer.
type Operation interface {
	isOperation()
}

type CreateRoom struct {
	HostName string
}

type JoinRoom struct {
	HostAddress string
	PlayerName  string
}

type SearchPlayer struct {
	OrchestratorAddress string
	PlayerName          string
}

type SubmitBoard struct {
	Ships []mb.ShipPlacement
}

type StartGame struct{}

type Attack struct {
	Row uint8
	Col uint8
}

type LeaveRoom struct{}

type RequestFriend struct {
	TargetAddress string
}

type AcceptFriend struct {
	RequesterAddress string
}

type DeclineFriend struct {
	RequesterAddress string
}

type InviteFriend struct {
	FriendAddress string
}

type AcceptInvite struct {
	HostAddress string
	PlayerName  string
}

type DeclineInvite struct {
	HostAddress string
}

func (CreateRoom) isOperation()    {}
func (JoinRoom) isOperation()      {}
func (SearchPlayer) isOperation()  {}
func (SubmitBoard) isOperation()   {}
func (StartGame) isOperation()     {}
func (Attack) isOperation()        {}
func (LeaveRoom) isOperation()     {}
func (RequestFriend) isOperation() {}
func (AcceptFriend) isOperation()  {}
func (DeclineFriend) isOperation() {}
func (InviteFriend) isOperation()  {}
func (AcceptInvite) isOperation()  {}
func (DeclineInvite) isOperation() {}

// HandleOperation runs op against state. state is mutated in place, so
// callers pass a copy and keep it only if the error is nil.
func HandleOperation(env Env, state *mb.PeerState, op Operation) ([]Outbound, error) {
	switch o := op.(type) {
	case CreateRoom:
		return handleCreateRoom(env, state, o)
	case JoinRoom:
		return handleJoinRoom(env, o)
	case SearchPlayer:
		return handleSearchPlayer(env, state, o)
	case SubmitBoard:
		return handleSubmitBoard(env, state, o)
	case StartGame:
		return handleStartGame(env, state)
	case Attack:
		return handleAttack(env, state, o)
	case LeaveRoom:
		return handleLeaveRoom(env, state), nil
	case RequestFriend:
		return handleRequestFriend(env, state, o)
	case AcceptFriend:
		if state.Social.Accept(o.RequesterAddress) {
			return []Outbound{send(o.RequesterAddress, mc.FriendAccepted{TargetAddress: env.Self})}, nil
		}
		return nil, nil
	case DeclineFriend:
		state.Social.Decline(o.RequesterAddress)
		return nil, nil
	case InviteFriend:
		return handleInviteFriend(env, state, o)
	case AcceptInvite:
		return handleAcceptInvite(env, state, o), nil
	case DeclineInvite:
		state.TakeInvitation(o.HostAddress)
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown operation: %T", op)
	}
}

func handleCreateRoom(env Env, state *mb.PeerState, o CreateRoom) ([]Outbound, error) {
	state.ClearRoom()
	state.Room = mb.NewRoom(env.RoomId, env.Self, o.HostName)
	return nil, nil
}

func handleJoinRoom(env Env, o JoinRoom) ([]Outbound, error) {
	if err := validatePeerAddress(env.Self, o.HostAddress); err != nil {
		return nil, err
	}
	return []Outbound{send(o.HostAddress, mc.JoinRequest{PlayerAddress: env.Self, PlayerName: o.PlayerName})}, nil
}

// The orchestrator may be this peer itself.
func handleSearchPlayer(env Env, state *mb.PeerState, o SearchPlayer) ([]Outbound, error) {
	if err := validateAddress(o.OrchestratorAddress); err != nil {
		return nil, err
	}
	state.Notify("Matchmaking search started")
	return []Outbound{send(o.OrchestratorAddress, mc.MatchmakingEnqueue{PlayerAddress: env.Self, PlayerName: o.PlayerName})}, nil
}

func handleSubmitBoard(env Env, state *mb.PeerState, o SubmitBoard) ([]Outbound, error) {
	room := state.Room
	if room == nil {
		return nil, cerr.ErrRoomNotFound()
	}
	if room.GameState == mb.GameStateInGame || room.GameState == mb.GameStateEnded {
		return nil, cerr.ErrBoardsLocked(mb.GameStateName(room.GameState))
	}

	board, err := mb.BuildBoard(env.BoardSize, o.Ships)
	if err != nil {
		return nil, cerr.ErrInvalidBoard(err)
	}
	if err := room.MarkBoardSubmitted(env.Self); err != nil {
		return nil, err
	}
	state.Board = board

	if !room.IsHost(env.Self) {
		return []Outbound{send(room.HostAddress, mc.BoardSubmittedNotice{PlayerAddress: env.Self})}, nil
	}

	enemy, prs := room.Opponent(env.Self)
	if !prs {
		return nil, nil
	}
	state.EnsureEnemyView(env.Self, env.BoardSize)
	return []Outbound{send(enemy, mc.RoomSync{Room: *room.Clone()})}, nil
}

func handleStartGame(env Env, state *mb.PeerState) ([]Outbound, error) {
	room := state.Room
	if room == nil {
		return nil, cerr.ErrRoomNotFound()
	}
	if err := room.Start(env.Self); err != nil {
		return nil, err
	}

	outbound := cancelSentInvitations(env, state)
	if enemy, prs := room.Opponent(env.Self); prs {
		outbound = append(outbound, send(enemy, mc.RoomSync{Room: *room.Clone()}))
	}
	return outbound, nil
}

func handleAttack(env Env, state *mb.PeerState, o Attack) ([]Outbound, error) {
	room := state.Room
	if room == nil {
		return nil, cerr.ErrRoomNotFound()
	}
	if err := room.BeginAttack(env.Self, o.Row, o.Col); err != nil {
		return nil, err
	}

	// Out of bounds targets go through; the defender answers them with an
	// invalid reveal.
	if state.EnemyView != nil && state.EnemyView.IsKnown(o.Row, o.Col) {
		return nil, cerr.ErrCellAlreadyRevealed(o.Row, o.Col)
	}
	enemy, prs := room.Opponent(env.Self)
	if !prs {
		return nil, cerr.ErrEnemyNotFound()
	}

	state.LastReveal = nil
	return []Outbound{send(enemy, mc.AttackRequest{AttackerAddress: env.Self, Row: o.Row, Col: o.Col})}, nil
}

// Leaving never fails. An active room is handed to the opponent as a win.
func handleLeaveRoom(env Env, state *mb.PeerState) []Outbound {
	var outbound []Outbound

	if room := state.Room; room != nil && room.IsActive() {
		if enemy, prs := room.Opponent(env.Self); prs {
			outbound = append(outbound, send(enemy, mc.LeaveNotice{PlayerAddress: env.Self}))
		}
		if room.IsHost(env.Self) {
			outbound = append(outbound, cancelSentInvitations(env, state)...)
		}
	}

	state.ClearRoom()
	return outbound
}

func handleRequestFriend(env Env, state *mb.PeerState, o RequestFriend) ([]Outbound, error) {
	if err := validatePeerAddress(env.Self, o.TargetAddress); err != nil {
		return nil, err
	}
	if !state.Social.RequestSent(o.TargetAddress) {
		return nil, nil
	}
	return []Outbound{send(o.TargetAddress, mc.FriendRequest{RequesterAddress: env.Self})}, nil
}

func handleInviteFriend(env Env, state *mb.PeerState, o InviteFriend) ([]Outbound, error) {
	room := state.Room
	if room == nil {
		return nil, cerr.ErrRoomNotFound()
	}
	if !room.IsHost(env.Self) {
		return nil, cerr.ErrNotHost(env.Self)
	}
	if !room.IsActive() {
		return nil, cerr.ErrRoomNotActive(room.RoomId)
	}
	if len(room.Players) >= mb.MaxPlayers {
		return nil, cerr.ErrRoomFull(room.RoomId)
	}
	if !state.Social.IsFriend(o.FriendAddress) {
		return nil, cerr.ErrNotFriends(o.FriendAddress)
	}

	if !state.AddSentInvitation(o.FriendAddress) {
		return nil, nil
	}
	return []Outbound{send(o.FriendAddress, mc.RoomInvitation{HostAddress: env.Self, Timestamp: env.NowMicros})}, nil
}

// The invitation is consumed either way. A stale one is dropped without
// telling anybody.
func handleAcceptInvite(env Env, state *mb.PeerState, o AcceptInvite) []Outbound {
	inv, prs := state.TakeInvitation(o.HostAddress)
	if !prs || !inv.IsFresh(env.NowMicros) {
		return nil
	}
	return []Outbound{send(inv.HostAddress, mc.JoinRequest{PlayerAddress: env.Self, PlayerName: o.PlayerName})}
}

func cancelSentInvitations(env Env, state *mb.PeerState) []Outbound {
	sent := state.DrainSentInvitations()
	outbound := make([]Outbound, 0, len(sent))
	for _, target := range sent {
		outbound = append(outbound, send(target, mc.RoomInvitationCancelled{HostAddress: env.Self}))
	}
	return outbound
}
