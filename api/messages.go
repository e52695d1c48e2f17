package api

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
	mb "github.com/saeidalz13/battleship-peer/models/battleship"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

// HandleMessage applies a message received from another peer. msg is a
// pointer to the variant, as returned by Envelope.Decode. Like
// HandleOperation it mutates state in place.
//
// Every handler checks its room again. The sender's copy may be ahead
// of ours, and a message that no longer fits is either rejected with a
// precondition error or ignored without output.
func HandleMessage(env Env, state *mb.PeerState, msg mc.PeerMessage) ([]Outbound, error) {
	switch m := msg.(type) {
	case *mc.JoinRequest:
		return handleJoinRequest(env, state, m)

	case *mc.InitialStateSync:
		state.AdoptRoom(env.Self, &m.Room)
		state.Notify("Room ready")
		state.EnsureEnemyView(env.Self, env.BoardSize)
		return nil, nil

	case *mc.RoomSync:
		state.AdoptRoom(env.Self, &m.Room)
		state.EnsureEnemyView(env.Self, env.BoardSize)
		return nil, nil

	case *mc.BoardSubmittedNotice:
		return handleBoardSubmittedNotice(env, state, m)

	case *mc.AttackRequest:
		return handleAttackRequest(env, state, m)

	case *mc.RevealResult:
		handleRevealResult(env, state, m)
		return nil, nil

	case *mc.LeaveNotice:
		handleLeaveNotice(env, state, m)
		return nil, nil

	case *mc.FriendRequest:
		if m.RequesterAddress != env.Self {
			state.Social.ReceiveRequest(m.RequesterAddress)
		}
		return nil, nil

	case *mc.FriendAccepted:
		state.Social.ConfirmAccepted(m.TargetAddress)
		return nil, nil

	case *mc.RoomInvitation:
		state.AddInvitation(mb.Invitation{HostAddress: m.HostAddress, Timestamp: m.Timestamp})
		return nil, nil

	case *mc.RoomInvitationCancelled:
		state.TakeInvitation(m.HostAddress)
		return nil, nil

	case *mc.MatchmakingEnqueue:
		return handleMatchmakingEnqueue(env, state, m), nil

	case *mc.MatchmakingEnqueued:
		state.Notify("Enqueued on " + m.OrchestratorAddress)
		return nil, nil

	case *mc.MatchmakingStart:
		return handleMatchmakingStart(env, state, m), nil

	case *mc.MatchmakingFound:
		state.Notify("Match found. Host: " + m.HostAddress)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown peer message: %T", msg)
	}
}

func handleJoinRequest(env Env, state *mb.PeerState, m *mc.JoinRequest) ([]Outbound, error) {
	room := state.Room
	if room == nil {
		return nil, cerr.ErrRoomNotFound()
	}
	if !room.IsHost(env.Self) {
		return nil, cerr.ErrNotHost(env.Self)
	}
	if err := room.AddPlayer(m.PlayerAddress, m.PlayerName); err != nil {
		return nil, err
	}

	state.RemoveSentInvitation(m.PlayerAddress)
	state.EnsureEnemyView(env.Self, env.BoardSize)
	return []Outbound{send(m.PlayerAddress, mc.InitialStateSync{Room: *room.Clone()})}, nil
}

// Only the host aggregates submissions; everybody else gets the
// updated room.
func handleBoardSubmittedNotice(env Env, state *mb.PeerState, m *mc.BoardSubmittedNotice) ([]Outbound, error) {
	room := state.Room
	if room == nil {
		return nil, cerr.ErrRoomNotFound()
	}
	if !room.IsHost(env.Self) {
		return nil, nil
	}
	if err := room.MarkBoardSubmitted(m.PlayerAddress); err != nil {
		return nil, err
	}

	outbound := make([]Outbound, 0, len(room.Players))
	for _, p := range room.Players {
		if p.Address != env.Self {
			outbound = append(outbound, send(p.Address, mc.RoomSync{Room: *room.Clone()}))
		}
	}
	return outbound, nil
}

func handleAttackRequest(env Env, state *mb.PeerState, m *mc.AttackRequest) ([]Outbound, error) {
	room := state.Room
	if room == nil || room.GameState != mb.GameStateInGame || !room.IsAttacker(m.AttackerAddress) {
		return nil, nil
	}
	board := state.Board
	if board == nil {
		return nil, cerr.ErrBoardNotSubmitted()
	}

	reveal := mb.RevealInfo{
		AttackerAddress: m.AttackerAddress,
		DefenderAddress: env.Self,
		Row:             m.Row,
		Col:             m.Col,
		NextAttacker:    m.AttackerAddress,
		Timestamp:       env.NowMicros,
	}

	outcome, err := board.ApplyAttack(m.Row, m.Col)
	if err != nil {
		if _, isBoardErr := cerr.BoardErrKind(err); !isBoardErr {
			return nil, err
		}

		// Turn and pending attack stay where they are so the attacker
		// can pick another cell.
		desc := err.Error()
		reveal.Error = &desc
		state.LastReveal = &reveal
		return []Outbound{send(m.AttackerAddress, revealResultFrom(reveal))}, nil
	}

	reveal.Valid = true
	reveal.Hit = outcome.Hit
	reveal.Sunk = outcome.Sunk
	reveal.GameOver = outcome.GameOver
	if outcome.Sunk && outcome.ShipId != nil {
		shipCells, splash, err := board.ApplySunkPadding(*outcome.ShipId)
		if err != nil {
			return nil, err
		}
		reveal.SunkShipCells = shipCells
		reveal.AdjacentCoords = splash
	}
	if !outcome.Hit {
		reveal.NextAttacker = env.Self
	}
	if outcome.GameOver {
		winner := m.AttackerAddress
		reveal.WinnerAddress = &winner
	}

	room.ApplyResolution(reveal.NextAttacker, reveal.GameOver, reveal.WinnerAddress)
	state.LastReveal = &reveal
	return []Outbound{send(m.AttackerAddress, revealResultFrom(reveal))}, nil
}

func revealResultFrom(ri mb.RevealInfo) mc.RevealResult {
	clone := ri.Clone()
	return mc.RevealResult{
		DefenderAddress: clone.DefenderAddress,
		Row:             clone.Row,
		Col:             clone.Col,
		Valid:           clone.Valid,
		Error:           clone.Error,
		Hit:             clone.Hit,
		Sunk:            clone.Sunk,
		SunkShipCells:   clone.SunkShipCells,
		AdjacentCoords:  clone.AdjacentCoords,
		NextAttacker:    clone.NextAttacker,
		GameOver:        clone.GameOver,
		WinnerAddress:   clone.WinnerAddress,
	}
}

// A reply that does not answer the attack we are waiting for is
// dropped.
func handleRevealResult(env Env, state *mb.PeerState, m *mc.RevealResult) {
	room := state.Room
	if room == nil {
		return
	}
	if room.GameState != mb.GameStateInGame && room.GameState != mb.GameStateEnded {
		return
	}
	if !room.IsPendingAt(m.Row, m.Col) {
		return
	}

	reveal := mb.RevealInfo{
		AttackerAddress: env.Self,
		DefenderAddress: m.DefenderAddress,
		Row:             m.Row,
		Col:             m.Col,
		Valid:           m.Valid,
		Error:           m.Error,
		Hit:             m.Hit,
		Sunk:            m.Sunk,
		SunkShipCells:   m.SunkShipCells,
		AdjacentCoords:  m.AdjacentCoords,
		NextAttacker:    m.NextAttacker,
		GameOver:        m.GameOver,
		WinnerAddress:   m.WinnerAddress,
		Timestamp:       env.NowMicros,
	}
	state.LastReveal = reveal.Clone()

	if !m.Valid {
		room.ApplyResolution(env.Self, false, nil)
		return
	}

	if state.EnemyView == nil {
		state.EnemyView = mb.NewEnemyView(env.BoardSize)
	}
	state.EnemyView.ApplyReveal(m.Row, m.Col, m.Hit, m.Sunk, m.SunkShipCells, m.AdjacentCoords)

	state.Shots.Fired++
	if m.Hit {
		state.Shots.Hits++
	}
	room.ApplyResolution(m.NextAttacker, m.GameOver, m.WinnerAddress)
}

// The peer that stayed wins, whoever's turn it was.
func handleLeaveNotice(env Env, state *mb.PeerState, _ *mc.LeaveNotice) {
	if room := state.Room; room != nil {
		room.EndInFavorOf(env.Self)
	}
}

// Every enqueue is acknowledged, even a repeated one.
func handleMatchmakingEnqueue(env Env, state *mb.PeerState, m *mc.MatchmakingEnqueue) []Outbound {
	state.MatchmakingQueue.Enqueue(mb.MatchmakingPlayer{Address: m.PlayerAddress, Name: m.PlayerName})
	outbound := []Outbound{send(m.PlayerAddress, mc.MatchmakingEnqueued{OrchestratorAddress: env.Self})}

	host, guest, paired := state.MatchmakingQueue.PopPair()
	if !paired {
		return outbound
	}
	return append(outbound,
		send(host.Address, mc.MatchmakingStart{HostName: host.Name, GuestAddress: guest.Address, GuestName: guest.Name}),
		send(guest.Address, mc.MatchmakingFound{HostAddress: host.Address}),
	)
}

// An active room always wins over a new match.
func handleMatchmakingStart(env Env, state *mb.PeerState, m *mc.MatchmakingStart) []Outbound {
	if state.Room != nil && state.Room.IsActive() {
		return nil
	}

	state.ClearRoom()
	state.Room = mb.NewMatchedRoom(env.RoomId, env.Self, m.HostName, m.GuestAddress, m.GuestName)
	state.Notify("Match found (host)")
	state.EnsureEnemyView(env.Self, env.BoardSize)
	return []Outbound{send(m.GuestAddress, mc.InitialStateSync{Room: *state.Room.Clone()})}
}
