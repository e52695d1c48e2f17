package battleship

type MatchmakingPlayer struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// MatchmakingQueue is the orchestrator's FIFO of waiting players.
// Pairing is greedy: the two oldest entries are always paired first.
type MatchmakingQueue struct {
	Players []MatchmakingPlayer `json:"players"`
}

func (q *MatchmakingQueue) Len() int {
	return len(q.Players)
}

func (q *MatchmakingQueue) Contains(address string) bool {
	for _, p := range q.Players {
		if p.Address == address {
			return true
		}
	}
	return false
}

// Returns false if the address was already queued.
func (q *MatchmakingQueue) Enqueue(player MatchmakingPlayer) bool {
	if q.Contains(player.Address) {
		return false
	}
	q.Players = append(q.Players, player)
	return true
}

// Removes the two oldest entries. The first one becomes the host.
func (q *MatchmakingQueue) PopPair() (MatchmakingPlayer, MatchmakingPlayer, bool) {
	if len(q.Players) < 2 {
		return MatchmakingPlayer{}, MatchmakingPlayer{}, false
	}
	host, guest := q.Players[0], q.Players[1]
	q.Players = append([]MatchmakingPlayer(nil), q.Players[2:]...)
	return host, guest, true
}

func (q MatchmakingQueue) clone() MatchmakingQueue {
	return MatchmakingQueue{Players: append([]MatchmakingPlayer(nil), q.Players...)}
}
