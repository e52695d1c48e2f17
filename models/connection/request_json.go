package connection

import (
	mb "github.com/saeidalz13/battleship-peer/models/battleship"
)

type ReqCreateRoom struct {
	HostName string `json:"host_name"`
}

type ReqJoinRoom struct {
	HostAddress string `json:"host_address"`
	PlayerName  string `json:"player_name"`
}

type ReqSearchPlayer struct {
	OrchestratorAddress string `json:"orchestrator_address"`
	PlayerName          string `json:"player_name"`
}

type ReqSubmitBoard struct {
	Ships []mb.ShipPlacement `json:"ships"`
}

type ReqAttack struct {
	Row uint8 `json:"row"`
	Col uint8 `json:"col"`
}

// Used by request, accept and decline of friendships and by invites.
type ReqPeerAddress struct {
	Address string `json:"address"`
}

type ReqAcceptInvite struct {
	HostAddress string `json:"host_address"`
	PlayerName  string `json:"player_name"`
}

type ReqDeclineInvite struct {
	HostAddress string `json:"host_address"`
}
