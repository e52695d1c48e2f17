package battleship

import (
	cerr "github.com/saeidalz13/battleship-peer/internal/error"
)

const MaxPlayers = 2

const (
	RoomStatusActive uint8 = iota
	RoomStatusEnded
)

const (
	GameStateWaitingForPlayer uint8 = iota
	GameStatePlacingBoards
	GameStateInGame
	GameStateEnded
)

var gameStateNames = map[uint8]string{
	GameStateWaitingForPlayer: "waiting_for_player",
	GameStatePlacingBoards:    "placing_boards",
	GameStateInGame:           "in_game",
	GameStateEnded:            "ended",
}

func GameStateName(state uint8) string {
	name, prs := gameStateNames[state]
	if !prs {
		return "unknown"
	}
	return name
}

type PlayerInfo struct {
	Address        string `json:"address"`
	Name           string `json:"name"`
	BoardSubmitted bool   `json:"board_submitted"`
}

// Room is the replicated descriptor of a match. Each peer holds its own
// copy; copies converge through RoomSync messages.
type Room struct {
	RoomId          string       `json:"room_id"`
	HostAddress     string       `json:"host_address"`
	Status          uint8        `json:"status"`
	GameState       uint8        `json:"game_state"`
	Players         []PlayerInfo `json:"players"`
	CurrentAttacker *string      `json:"current_attacker,omitempty"`
	PendingAttack   *Coordinates `json:"pending_attack,omitempty"`
	WinnerAddress   *string      `json:"winner_address,omitempty"`
}

func NewRoom(roomId, hostAddress, hostName string) *Room {
	return &Room{
		RoomId:      roomId,
		HostAddress: hostAddress,
		Status:      RoomStatusActive,
		GameState:   GameStateWaitingForPlayer,
		Players: []PlayerInfo{
			{Address: hostAddress, Name: hostName},
		},
	}
}

// Room built by the host of a matchmaking pair. Both players are known
// up front so it starts in the board placement phase.
func NewMatchedRoom(roomId, hostAddress, hostName, guestAddress, guestName string) *Room {
	room := NewRoom(roomId, hostAddress, hostName)
	room.Players = append(room.Players, PlayerInfo{Address: guestAddress, Name: guestName})
	room.GameState = GameStatePlacingBoards
	return room
}

func (r *Room) IsHost(address string) bool {
	return r.HostAddress == address
}

func (r *Room) IsActive() bool {
	return r.Status == RoomStatusActive
}

func (r *Room) FindPlayer(address string) (*PlayerInfo, bool) {
	for i := range r.Players {
		if r.Players[i].Address == address {
			return &r.Players[i], true
		}
	}
	return nil, false
}

// Returns the address of the first player that is not self.
func (r *Room) Opponent(self string) (string, bool) {
	for _, p := range r.Players {
		if p.Address != self {
			return p.Address, true
		}
	}
	return "", false
}

func (r *Room) IsAttacker(address string) bool {
	return r.CurrentAttacker != nil && *r.CurrentAttacker == address
}

func (r *Room) AddPlayer(address, name string) error {
	if !r.IsActive() {
		return cerr.ErrRoomNotActive(r.RoomId)
	}
	if len(r.Players) >= MaxPlayers {
		return cerr.ErrRoomFull(r.RoomId)
	}
	if _, prs := r.FindPlayer(address); prs {
		return cerr.ErrPlayerAlreadyInRoom(address)
	}

	r.Players = append(r.Players, PlayerInfo{Address: address, Name: name})
	r.GameState = GameStatePlacingBoards
	return nil
}

func (r *Room) MarkBoardSubmitted(address string) error {
	player, prs := r.FindPlayer(address)
	if !prs {
		return cerr.ErrPlayerNotInRoom(address)
	}
	player.BoardSubmitted = true
	return nil
}

func (r *Room) allBoardsSubmitted() bool {
	for _, p := range r.Players {
		if !p.BoardSubmitted {
			return false
		}
	}
	return true
}

func (r *Room) Start(by string) error {
	if !r.IsHost(by) {
		return cerr.ErrNotHost(by)
	}
	if !r.IsActive() {
		return cerr.ErrRoomNotActive(r.RoomId)
	}
	if len(r.Players) != MaxPlayers {
		return cerr.ErrNeedTwoPlayers(len(r.Players))
	}
	if !r.allBoardsSubmitted() {
		return cerr.ErrBoardsNotSubmitted()
	}
	if r.GameState != GameStatePlacingBoards {
		return cerr.ErrGameAlreadyStarted(GameStateName(r.GameState))
	}

	host := r.HostAddress
	r.GameState = GameStateInGame
	r.CurrentAttacker = &host
	r.PendingAttack = nil
	return nil
}

// Records the attacker's shot as pending until the defender answers.
func (r *Room) BeginAttack(by string, row, col uint8) error {
	if r.GameState != GameStateInGame {
		return cerr.ErrGameNotStarted()
	}
	if !r.IsAttacker(by) {
		return cerr.ErrNotYourTurn(by)
	}
	if r.PendingAttack != nil {
		return cerr.ErrPendingAttack(r.PendingAttack.Row, r.PendingAttack.Col)
	}

	target := NewCoordinates(row, col)
	r.PendingAttack = &target
	return nil
}

func (r *Room) IsPendingAt(row, col uint8) bool {
	return r.PendingAttack != nil && r.PendingAttack.Row == row && r.PendingAttack.Col == col
}

// Both sides of an exchange call this with the defender's verdict so
// the two copies advance the same way.
func (r *Room) ApplyResolution(nextAttacker string, gameOver bool, winner *string) {
	r.CurrentAttacker = &nextAttacker
	r.PendingAttack = nil
	if gameOver {
		r.GameState = GameStateEnded
		r.Status = RoomStatusEnded
		if winner != nil {
			w := *winner
			r.WinnerAddress = &w
		}
	}
}

// Ends an active room with the given peer as winner. It does not matter
// whose turn it was.
func (r *Room) EndInFavorOf(winner string) bool {
	if !r.IsActive() {
		return false
	}
	r.Status = RoomStatusEnded
	r.GameState = GameStateEnded
	r.WinnerAddress = &winner
	return true
}

func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Players = make([]PlayerInfo, len(r.Players))
	copy(clone.Players, r.Players)
	if r.CurrentAttacker != nil {
		a := *r.CurrentAttacker
		clone.CurrentAttacker = &a
	}
	if r.PendingAttack != nil {
		p := *r.PendingAttack
		clone.PendingAttack = &p
	}
	if r.WinnerAddress != nil {
		w := *r.WinnerAddress
		clone.WinnerAddress = &w
	}
	return &clone
}
