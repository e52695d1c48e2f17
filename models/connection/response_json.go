package connection

import (
	mb "github.com/saeidalz13/battleship-peer/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

// RespState is the read-only projection of a peer's state handed to
// clients. The enemy view is redacted; the board is the owner's own.
type RespState struct {
	Address                string          `json:"address"`
	Room                   *mb.Room        `json:"room,omitempty"`
	RoomStatus             *uint8          `json:"room_status,omitempty"`
	GameState              *uint8          `json:"game_state,omitempty"`
	IsMyTurn               bool            `json:"is_my_turn"`
	HasSubmittedBoard      bool            `json:"has_submitted_board"`
	EnemyView              *mb.EnemyView   `json:"enemy_view,omitempty"`
	MyBoard                *mb.MyBoardView `json:"my_board,omitempty"`
	LastReveal             *mb.RevealInfo  `json:"last_reveal,omitempty"`
	LastNotification       *string         `json:"last_notification,omitempty"`
	Friends                []string        `json:"friends"`
	FriendRequestsReceived []string        `json:"friend_requests_received"`
	FriendRequestsSent     []string        `json:"friend_requests_sent"`
	RoomInvitations        []mb.Invitation `json:"room_invitations"`
	ShotsFired             uint32          `json:"shots_fired"`
	Accuracy               float64         `json:"accuracy"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
