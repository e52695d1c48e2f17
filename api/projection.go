package api

import (
	"github.com/dariubs/percent"
	mb "github.com/saeidalz13/battleship-peer/models/battleship"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

// Project renders what a client may see of the state. It copies and
// reads; nothing is derived that the handlers did not already store.
func Project(self string, state *mb.PeerState) mc.RespState {
	clone := state.Clone()

	resp := mc.RespState{
		Address:                self,
		Room:                   clone.Room,
		EnemyView:              clone.EnemyView,
		LastReveal:             clone.LastReveal,
		LastNotification:       clone.LastNotification,
		Friends:                nonNil(clone.Social.Friends),
		FriendRequestsReceived: nonNil(clone.Social.RequestsReceived),
		FriendRequestsSent:     nonNil(clone.Social.RequestsSent),
		RoomInvitations:        clone.RoomInvitations,
		ShotsFired:             clone.Shots.Fired,
	}

	if room := clone.Room; room != nil {
		status, gameState := room.Status, room.GameState
		resp.RoomStatus = &status
		resp.GameState = &gameState
		resp.IsMyTurn = room.IsAttacker(self)
		if p, prs := room.FindPlayer(self); prs {
			resp.HasSubmittedBoard = p.BoardSubmitted
		}
	}

	if clone.Board != nil {
		view := clone.Board.View()
		resp.MyBoard = &view
	}

	if clone.Shots.Fired > 0 {
		resp.Accuracy = percent.PercentOf(int(clone.Shots.Hits), int(clone.Shots.Fired))
	}
	return resp
}

func nonNil(set []string) []string {
	if set == nil {
		return make([]string, 0)
	}
	return set
}
