package battleship

import (
	cerr "github.com/saeidalz13/battleship-peer/internal/error"
)

type Cell struct {
	ShipId   *uint8 `json:"ship_id,omitempty"`
	Attacked bool   `json:"attacked"`
}

// Board is the defender's full board. It never leaves the peer
// that owns it.
type Board struct {
	Size  uint8  `json:"size"`
	Cells []Cell `json:"cells"`
	Ships []Ship `json:"ships"`
}

// Ship ids are a single byte on the wire.
const MaxShips = 256

type AttackOutcome struct {
	Hit      bool
	Sunk     bool
	ShipId   *uint8
	GameOver bool
}

// Validates the placements and builds the board. Ship ids are given
// in placement order starting from 0. Ships may not overlap or touch,
// diagonals included.
func BuildBoard(size uint8, placements []ShipPlacement) (*Board, error) {
	if size == 0 {
		return nil, cerr.ErrInvalidBoardSize(size)
	}
	if len(placements) > MaxShips {
		return nil, cerr.ErrTooManyShips(len(placements), MaxShips)
	}

	board := &Board{
		Size:  size,
		Cells: make([]Cell, int(size)*int(size)),
		Ships: make([]Ship, 0, len(placements)),
	}

	var nextShipId uint8
	for _, placement := range placements {
		shipCells, err := placementCells(size, placement)
		if err != nil {
			return nil, err
		}

		for _, coord := range shipCells {
			if board.cell(coord).ShipId != nil {
				return nil, cerr.ErrShipsOverlap(coord.Row, coord.Col)
			}

			var touching bool
			forEachNeighbor(size, coord, false, func(n Coordinates) {
				if board.cell(n).ShipId != nil {
					touching = true
				}
			})
			if touching {
				return nil, cerr.ErrShipsTouch(coord.Row, coord.Col)
			}
		}

		for _, coord := range shipCells {
			id := nextShipId
			board.cell(coord).ShipId = &id
		}
		board.Ships = append(board.Ships, Ship{Id: nextShipId, Cells: shipCells})
		nextShipId++
	}

	return board, nil
}

func (b *Board) cell(c Coordinates) *Cell {
	return &b.Cells[cellIndex(b.Size, c.Row, c.Col)]
}

func (b *Board) findShip(shipId uint8) (*Ship, bool) {
	for i := range b.Ships {
		if b.Ships[i].Id == shipId {
			return &b.Ships[i], true
		}
	}
	return nil, false
}

func (b *Board) isShipSunk(ship *Ship) bool {
	for _, c := range ship.Cells {
		if !b.cell(c).Attacked {
			return false
		}
	}
	return true
}

// Every ship is checked again on every attack, not only the one
// that was hit.
func (b *Board) allShipsSunk() bool {
	for i := range b.Ships {
		if !b.isShipSunk(&b.Ships[i]) {
			return false
		}
	}
	return true
}

func (b *Board) ApplyAttack(row, col uint8) (AttackOutcome, error) {
	if row >= b.Size || col >= b.Size {
		return AttackOutcome{}, cerr.ErrAttackOutOfBounds(row, col)
	}

	cell := b.cell(NewCoordinates(row, col))
	if cell.Attacked {
		return AttackOutcome{}, cerr.ErrCellAlreadyAttacked(row, col)
	}
	cell.Attacked = true

	outcome := AttackOutcome{}
	if cell.ShipId != nil {
		id := *cell.ShipId
		outcome.Hit = true
		outcome.ShipId = &id
		if ship, prs := b.findShip(id); prs {
			outcome.Sunk = b.isShipSunk(ship)
		}
	}
	outcome.GameOver = b.allShipsSunk()

	return outcome, nil
}

// Marks the empty, unattacked border of a sunk ship as attacked and
// returns the ship cells along with the newly revealed border cells.
func (b *Board) ApplySunkPadding(shipId uint8) ([]Coordinates, []Coordinates, error) {
	ship, prs := b.findShip(shipId)
	if !prs {
		return nil, nil, cerr.ErrShipNotFound(shipId)
	}

	splash := make([]Coordinates, 0)
	for _, coord := range ship.Cells {
		forEachNeighbor(b.Size, coord, true, func(n Coordinates) {
			cell := b.cell(n)
			if cell.ShipId != nil || cell.Attacked {
				return
			}
			cell.Attacked = true
			splash = append(splash, n)
		})
	}

	shipCells := make([]Coordinates, len(ship.Cells))
	copy(shipCells, ship.Cells)
	return shipCells, splash, nil
}

func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cells := make([]Cell, len(b.Cells))
	for i, c := range b.Cells {
		cells[i].Attacked = c.Attacked
		if c.ShipId != nil {
			id := *c.ShipId
			cells[i].ShipId = &id
		}
	}
	ships := make([]Ship, len(b.Ships))
	for i := range b.Ships {
		ships[i] = b.Ships[i].clone()
	}
	return &Board{Size: b.Size, Cells: cells, Ships: ships}
}

type MyCellView struct {
	Row      uint8  `json:"row"`
	Col      uint8  `json:"col"`
	ShipId   *uint8 `json:"ship_id,omitempty"`
	Attacked bool   `json:"attacked"`
}

type MyBoardView struct {
	Size  uint8        `json:"size"`
	Cells []MyCellView `json:"cells"`
	Ships []Ship       `json:"ships"`
}

// Owner-only projection of the board, ship identities included.
func (b *Board) View() MyBoardView {
	clone := b.Clone()
	view := MyBoardView{
		Size:  clone.Size,
		Cells: make([]MyCellView, 0, len(clone.Cells)),
		Ships: clone.Ships,
	}
	for i, c := range clone.Cells {
		view.Cells = append(view.Cells, MyCellView{
			Row:      uint8(i / int(clone.Size)),
			Col:      uint8(i % int(clone.Size)),
			ShipId:   c.ShipId,
			Attacked: c.Attacked,
		})
	}
	return view
}
