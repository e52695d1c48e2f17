package battleship

// RevealInfo is the last known attack exchange as seen by this peer.
// It is overwritten by the next exchange and drives nothing.
type RevealInfo struct {
	AttackerAddress string        `json:"attacker_address"`
	DefenderAddress string        `json:"defender_address"`
	Row             uint8         `json:"row"`
	Col             uint8         `json:"col"`
	Valid           bool          `json:"valid"`
	Error           *string       `json:"error,omitempty"`
	Hit             bool          `json:"hit"`
	Sunk            bool          `json:"sunk"`
	SunkShipCells   []Coordinates `json:"sunk_ship_cells,omitempty"`
	AdjacentCoords  []Coordinates `json:"adjacent_coords,omitempty"`
	NextAttacker    string        `json:"next_attacker"`
	GameOver        bool          `json:"game_over"`
	WinnerAddress   *string       `json:"winner_address,omitempty"`
	Timestamp       uint64        `json:"timestamp"`
}

func (ri *RevealInfo) Clone() *RevealInfo {
	if ri == nil {
		return nil
	}
	clone := *ri
	clone.SunkShipCells = cloneCoords(ri.SunkShipCells)
	clone.AdjacentCoords = cloneCoords(ri.AdjacentCoords)
	if ri.Error != nil {
		e := *ri.Error
		clone.Error = &e
	}
	if ri.WinnerAddress != nil {
		w := *ri.WinnerAddress
		clone.WinnerAddress = &w
	}
	return &clone
}

func cloneCoords(coords []Coordinates) []Coordinates {
	if coords == nil {
		return nil
	}
	clone := make([]Coordinates, len(coords))
	copy(clone, coords)
	return clone
}
