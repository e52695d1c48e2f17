package battleship

import (
	cerr "github.com/saeidalz13/battleship-peer/internal/error"
)

type Ship struct {
	Id    uint8         `json:"id"`
	Cells []Coordinates `json:"cells"`
}

// Occupied cells of a placement, in order from its start cell.
func placementCells(size uint8, p ShipPlacement) ([]Coordinates, error) {
	if p.Length == 0 {
		return nil, cerr.ErrInvalidShipLength()
	}
	if p.Axis != AxisHorizontal && p.Axis != AxisVertical {
		return nil, cerr.ErrInvalidAxis(p.Axis)
	}
	if p.Row >= size || p.Col >= size {
		return nil, cerr.ErrShipStartOutOfBounds(p.Row, p.Col)
	}

	cells := make([]Coordinates, 0, p.Length)
	for i := 0; i < int(p.Length); i++ {
		r, c := int(p.Row), int(p.Col)
		if p.Axis == AxisVertical {
			r += i
		} else {
			c += i
		}
		if !inBounds(size, r, c) {
			return nil, cerr.ErrShipOutOfBounds(r, c)
		}
		cells = append(cells, NewCoordinates(uint8(r), uint8(c)))
	}
	return cells, nil
}

func (sh *Ship) clone() Ship {
	cells := make([]Coordinates, len(sh.Cells))
	copy(cells, sh.Cells)
	return Ship{Id: sh.Id, Cells: cells}
}
