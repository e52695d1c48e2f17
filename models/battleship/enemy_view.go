package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
)

type EnemyCell uint8

const (
	EnemyCellUnknown EnemyCell = iota
	EnemyCellMiss
	EnemyCellHit
	EnemyCellSunk
)

var enemyCellNames = [...]string{"unknown", "miss", "hit", "sunk"}

func (c EnemyCell) String() string {
	if int(c) < len(enemyCellNames) {
		return enemyCellNames[c]
	}
	return fmt.Sprintf("enemy_cell(%d)", uint8(c))
}

// Cells travel as names so clients do not need the numbering.
func (c EnemyCell) MarshalText() ([]byte, error) {
	if int(c) >= len(enemyCellNames) {
		return nil, fmt.Errorf("invalid enemy cell: %d", uint8(c))
	}
	return []byte(enemyCellNames[c]), nil
}

func (c *EnemyCell) UnmarshalText(text []byte) error {
	for i, name := range enemyCellNames {
		if name == string(text) {
			*c = EnemyCell(i)
			return nil
		}
	}
	return fmt.Errorf("invalid enemy cell: %q", text)
}

// EnemyView is what the attacker knows about the opponent's board.
// It is built only from RevealResult replies and holds no ship ids.
type EnemyView struct {
	Size  uint8       `json:"size"`
	Cells []EnemyCell `json:"cells"`
}

func NewEnemyView(size uint8) *EnemyView {
	return &EnemyView{
		Size:  size,
		Cells: make([]EnemyCell, int(size)*int(size)),
	}
}

func (v *EnemyView) Get(row, col uint8) (EnemyCell, error) {
	if row >= v.Size || col >= v.Size {
		return EnemyCellUnknown, cerr.ErrCoordOutOfBounds(row, col)
	}
	return v.Cells[cellIndex(v.Size, row, col)], nil
}

func (v *EnemyView) Set(row, col uint8, state EnemyCell) error {
	if row >= v.Size || col >= v.Size {
		return cerr.ErrCoordOutOfBounds(row, col)
	}
	v.Cells[cellIndex(v.Size, row, col)] = state
	return nil
}

// Out of bounds coordinates are never known. The defender rejects
// them with an invalid reveal.
func (v *EnemyView) IsKnown(row, col uint8) bool {
	state, err := v.Get(row, col)
	return err == nil && state != EnemyCellUnknown
}

// Records a valid reveal. Sunk ships mark every ship cell as sunk and
// the splash border as missed, without overwriting anything already known.
func (v *EnemyView) ApplyReveal(row, col uint8, hit, sunk bool, sunkCells, splash []Coordinates) {
	switch {
	case sunk:
		_ = v.Set(row, col, EnemyCellSunk)
		for _, c := range sunkCells {
			_ = v.Set(c.Row, c.Col, EnemyCellSunk)
		}
		for _, c := range splash {
			if !v.IsKnown(c.Row, c.Col) {
				_ = v.Set(c.Row, c.Col, EnemyCellMiss)
			}
		}

	case hit:
		_ = v.Set(row, col, EnemyCellHit)

	default:
		_ = v.Set(row, col, EnemyCellMiss)
	}
}

func (v *EnemyView) Clone() *EnemyView {
	if v == nil {
		return nil
	}
	cells := make([]EnemyCell, len(v.Cells))
	copy(cells, v.Cells)
	return &EnemyView{Size: v.Size, Cells: cells}
}
