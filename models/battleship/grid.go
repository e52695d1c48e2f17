package battleship

const DefaultBoardSize uint8 = 10

const (
	AxisHorizontal uint8 = iota
	AxisVertical
)

type Coordinates struct {
	Row uint8 `json:"row"`
	Col uint8 `json:"col"`
}

func NewCoordinates(row, col uint8) Coordinates {
	return Coordinates{Row: row, Col: col}
}

type ShipPlacement struct {
	Row    uint8 `json:"row"`
	Col    uint8 `json:"col"`
	Length uint8 `json:"length"`
	Axis   uint8 `json:"axis"`
}

func cellIndex(size, row, col uint8) int {
	return int(row)*int(size) + int(col)
}

func inBounds(size uint8, row, col int) bool {
	return row >= 0 && col >= 0 && row < int(size) && col < int(size)
}

// Calls fn for every in-bounds cell of the 8-neighborhood of (row, col).
// The centre cell is included when withCentre is set.
func forEachNeighbor(size uint8, c Coordinates, withCentre bool, fn func(Coordinates)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 && !withCentre {
				continue
			}
			nr, nc := int(c.Row)+dr, int(c.Col)+dc
			if !inBounds(size, nr, nc) {
				continue
			}
			fn(NewCoordinates(uint8(nr), uint8(nc)))
		}
	}
}
