package connection

import (
	mb "github.com/saeidalz13/battleship-peer/models/battleship"
)

type JoinRequest struct {
	PlayerAddress string `json:"player_address"`
	PlayerName    string `json:"player_name"`
}

type InitialStateSync struct {
	Room mb.Room `json:"room"`
}

type RoomSync struct {
	Room mb.Room `json:"room"`
}

type BoardSubmittedNotice struct {
	PlayerAddress string `json:"player_address"`
}

type AttackRequest struct {
	AttackerAddress string `json:"attacker_address"`
	Row             uint8  `json:"row"`
	Col             uint8  `json:"col"`
}

// RevealResult is the defender's verdict on an AttackRequest. An invalid
// attack comes back with Valid false and the error text, and the
// attacker keeps the turn.
type RevealResult struct {
	DefenderAddress string           `json:"defender_address"`
	Row             uint8            `json:"row"`
	Col             uint8            `json:"col"`
	Valid           bool             `json:"valid"`
	Error           *string          `json:"error,omitempty"`
	Hit             bool             `json:"hit"`
	Sunk            bool             `json:"sunk"`
	SunkShipCells   []mb.Coordinates `json:"sunk_ship_cells,omitempty"`
	AdjacentCoords  []mb.Coordinates `json:"adjacent_coords,omitempty"`
	NextAttacker    string           `json:"next_attacker"`
	GameOver        bool             `json:"game_over"`
	WinnerAddress   *string          `json:"winner_address,omitempty"`
}

type LeaveNotice struct {
	PlayerAddress string `json:"player_address"`
}

type FriendRequest struct {
	RequesterAddress string `json:"requester_address"`
}

type FriendAccepted struct {
	TargetAddress string `json:"target_address"`
}

type RoomInvitation struct {
	HostAddress string `json:"host_address"`
	Timestamp   uint64 `json:"timestamp"`
}

type RoomInvitationCancelled struct {
	HostAddress string `json:"host_address"`
}

type MatchmakingEnqueue struct {
	PlayerAddress string `json:"player_address"`
	PlayerName    string `json:"player_name"`
}

type MatchmakingEnqueued struct {
	OrchestratorAddress string `json:"orchestrator_address"`
}

type MatchmakingStart struct {
	HostName     string `json:"host_name"`
	GuestAddress string `json:"guest_address"`
	GuestName    string `json:"guest_name"`
}

type MatchmakingFound struct {
	HostAddress string `json:"host_address"`
}

func (JoinRequest) Code() uint8             { return CodeJoinRequest }
func (InitialStateSync) Code() uint8        { return CodeInitialStateSync }
func (RoomSync) Code() uint8                { return CodeRoomSync }
func (BoardSubmittedNotice) Code() uint8    { return CodeBoardSubmittedNotice }
func (AttackRequest) Code() uint8           { return CodeAttackRequest }
func (RevealResult) Code() uint8            { return CodeRevealResult }
func (LeaveNotice) Code() uint8             { return CodeLeaveNotice }
func (FriendRequest) Code() uint8           { return CodeFriendRequest }
func (FriendAccepted) Code() uint8          { return CodeFriendAccepted }
func (RoomInvitation) Code() uint8          { return CodeRoomInvitation }
func (RoomInvitationCancelled) Code() uint8 { return CodeRoomInvitationCancelled }
func (MatchmakingEnqueue) Code() uint8      { return CodeMatchmakingEnqueue }
func (MatchmakingEnqueued) Code() uint8     { return CodeMatchmakingEnqueued }
func (MatchmakingStart) Code() uint8        { return CodeMatchmakingStart }
func (MatchmakingFound) Code() uint8        { return CodeMatchmakingFound }
