package battleship

import (
	"reflect"
	"testing"

	cerr "github.com/saeidalz13/battleship-peer/internal/error"
)

func TestBuildBoard(t *testing.T) {
	tests := []struct {
		name         string
		size         uint8
		placements   []ShipPlacement
		expectedKind uint8
		expectedErr  bool
	}{
		{
			name: "valid fleet",
			size: 10,
			placements: []ShipPlacement{
				{Row: 0, Col: 0, Length: 4, Axis: AxisHorizontal},
				{Row: 2, Col: 0, Length: 3, Axis: AxisVertical},
				{Row: 9, Col: 9, Length: 1, Axis: AxisHorizontal},
			},
		},
		{
			name:         "zero size",
			size:         0,
			placements:   []ShipPlacement{{Row: 0, Col: 0, Length: 1}},
			expectedErr:  true,
			expectedKind: cerr.BoardErrInvalidSize,
		},
		{
			name:         "zero length",
			size:         10,
			placements:   []ShipPlacement{{Row: 0, Col: 0, Length: 0}},
			expectedErr:  true,
			expectedKind: cerr.BoardErrInvalidLength,
		},
		{
			name:         "start out of bounds",
			size:         5,
			placements:   []ShipPlacement{{Row: 5, Col: 0, Length: 1}},
			expectedErr:  true,
			expectedKind: cerr.BoardErrOutOfBounds,
		},
		{
			name:         "runs off the board",
			size:         5,
			placements:   []ShipPlacement{{Row: 4, Col: 3, Length: 3, Axis: AxisHorizontal}},
			expectedErr:  true,
			expectedKind: cerr.BoardErrOutOfBounds,
		},
		{
			name:         "runs off the bottom",
			size:         5,
			placements:   []ShipPlacement{{Row: 3, Col: 0, Length: 3, Axis: AxisVertical}},
			expectedErr:  true,
			expectedKind: cerr.BoardErrOutOfBounds,
		},
		{
			name: "overlap",
			size: 10,
			placements: []ShipPlacement{
				{Row: 0, Col: 0, Length: 3, Axis: AxisHorizontal},
				{Row: 0, Col: 2, Length: 2, Axis: AxisVertical},
			},
			expectedErr:  true,
			expectedKind: cerr.BoardErrOverlap,
		},
		{
			name: "side by side",
			size: 10,
			placements: []ShipPlacement{
				{Row: 0, Col: 0, Length: 3, Axis: AxisHorizontal},
				{Row: 1, Col: 0, Length: 3, Axis: AxisHorizontal},
			},
			expectedErr:  true,
			expectedKind: cerr.BoardErrAdjacency,
		},
		{
			name: "diagonal touch",
			size: 10,
			placements: []ShipPlacement{
				{Row: 0, Col: 0, Length: 1, Axis: AxisHorizontal},
				{Row: 1, Col: 1, Length: 1, Axis: AxisHorizontal},
			},
			expectedErr:  true,
			expectedKind: cerr.BoardErrAdjacency,
		},
		{
			name:         "unknown axis",
			size:         10,
			placements:   []ShipPlacement{{Row: 0, Col: 0, Length: 2, Axis: 7}},
			expectedErr:  true,
			expectedKind: cerr.BoardErrInvalidAxis,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := BuildBoard(test.size, test.placements)

			if !test.expectedErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				if len(board.Ships) != len(test.placements) {
					t.Fatalf("expected %d ships, got: %d", len(test.placements), len(board.Ships))
				}
				return
			}

			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			kind, ok := cerr.BoardErrKind(err)
			if !ok {
				t.Fatalf("expected a board error, got: %T", err)
			}
			if kind != test.expectedKind {
				t.Fatalf("expected kind: %d\tgot: %d (%v)", test.expectedKind, kind, err)
			}
		})
	}
}

// Isolated one-cell ships, two cells apart.
func spreadFleet(size uint8, count int) []ShipPlacement {
	placements := make([]ShipPlacement, 0, count)
	for r := 0; r < int(size) && len(placements) < count; r += 2 {
		for c := 0; c < int(size) && len(placements) < count; c += 2 {
			placements = append(placements, ShipPlacement{Row: uint8(r), Col: uint8(c), Length: 1})
		}
	}
	return placements
}

func TestBuildBoardShipLimit(t *testing.T) {
	full := spreadFleet(32, MaxShips)
	board, err := BuildBoard(32, full)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	last := board.Ships[len(board.Ships)-1]
	if last.Id != MaxShips-1 {
		t.Fatalf("expected last ship id %d, got: %d", MaxShips-1, last.Id)
	}

	outcome, err := board.ApplyAttack(last.Cells[0].Row, last.Cells[0].Col)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Hit || !outcome.Sunk || *outcome.ShipId != last.Id {
		t.Fatalf("expected last ship sunk, got: %+v", outcome)
	}

	_, err = BuildBoard(34, spreadFleet(34, MaxShips+33))
	if kind, ok := cerr.BoardErrKind(err); !ok || kind != cerr.BoardErrTooManyShips {
		t.Fatalf("expected too many ships error, got: %v", err)
	}
}

func TestBuildBoardAssignsIdsInOrder(t *testing.T) {
	board, err := BuildBoard(10, []ShipPlacement{
		{Row: 0, Col: 0, Length: 2, Axis: AxisHorizontal},
		{Row: 5, Col: 5, Length: 3, Axis: AxisVertical},
	})
	if err != nil {
		t.Fatal(err)
	}

	for i, ship := range board.Ships {
		if ship.Id != uint8(i) {
			t.Fatalf("expected ship id %d, got: %d", i, ship.Id)
		}
		for _, c := range ship.Cells {
			if id := board.cell(c).ShipId; id == nil || *id != ship.Id {
				t.Fatalf("cell %+v does not point at ship %d", c, ship.Id)
			}
		}
	}

	expectedCells := []Coordinates{{Row: 5, Col: 5}, {Row: 6, Col: 5}, {Row: 7, Col: 5}}
	if !reflect.DeepEqual(board.Ships[1].Cells, expectedCells) {
		t.Fatalf("expected cells: %+v\tgot: %+v", expectedCells, board.Ships[1].Cells)
	}
}

// No two ships share a cell or come within one cell of each other.
func TestBuildBoardSeparation(t *testing.T) {
	board, err := BuildBoard(10, []ShipPlacement{
		{Row: 0, Col: 0, Length: 4, Axis: AxisHorizontal},
		{Row: 0, Col: 5, Length: 3, Axis: AxisVertical},
		{Row: 2, Col: 0, Length: 2, Axis: AxisVertical},
		{Row: 5, Col: 3, Length: 3, Axis: AxisHorizontal},
		{Row: 9, Col: 0, Length: 1, Axis: AxisHorizontal},
	})
	if err != nil {
		t.Fatal(err)
	}

	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}

	for i := range board.Ships {
		for j := i + 1; j < len(board.Ships); j++ {
			for _, a := range board.Ships[i].Cells {
				for _, b := range board.Ships[j].Cells {
					dr := abs(int(a.Row) - int(b.Row))
					dc := abs(int(a.Col) - int(b.Col))
					if dr <= 1 && dc <= 1 {
						t.Fatalf("ships %d and %d too close at %+v and %+v", i, j, a, b)
					}
				}
			}
		}
	}
}

func TestApplyAttack(t *testing.T) {
	board, err := BuildBoard(3, []ShipPlacement{{Row: 0, Col: 0, Length: 2, Axis: AxisHorizontal}})
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := board.ApplyAttack(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Hit || outcome.Sunk || outcome.GameOver {
		t.Fatalf("expected hit only, got: %+v", outcome)
	}

	if _, err := board.ApplyAttack(0, 0); err == nil {
		t.Fatal("expected error attacking the same cell twice")
	} else if kind, _ := cerr.BoardErrKind(err); kind != cerr.BoardErrAlreadyAttacked {
		t.Fatalf("expected already attacked kind, got: %d", kind)
	}

	if _, err := board.ApplyAttack(3, 0); err == nil {
		t.Fatal("expected out of bounds error")
	} else if kind, _ := cerr.BoardErrKind(err); kind != cerr.BoardErrOutOfBounds {
		t.Fatalf("expected out of bounds kind, got: %d", kind)
	}

	outcome, err = board.ApplyAttack(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Hit || !outcome.Sunk || !outcome.GameOver {
		t.Fatalf("expected hit, sunk and game over, got: %+v", outcome)
	}
	if outcome.ShipId == nil || *outcome.ShipId != 0 {
		t.Fatalf("expected ship id 0, got: %v", outcome.ShipId)
	}
}

func TestApplyAttackRejectedTwiceLeavesBoardAlone(t *testing.T) {
	board, err := BuildBoard(5, []ShipPlacement{{Row: 2, Col: 2, Length: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := board.ApplyAttack(0, 0); err != nil {
		t.Fatal(err)
	}

	before := board.Clone()
	if _, err := board.ApplyAttack(0, 0); err == nil {
		t.Fatal("expected error")
	}
	if !reflect.DeepEqual(before, board) {
		t.Fatal("rejected attack changed the board")
	}
}

func TestGameOverNeedsEveryShip(t *testing.T) {
	board, err := BuildBoard(5, []ShipPlacement{
		{Row: 0, Col: 0, Length: 1},
		{Row: 4, Col: 4, Length: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	outcome, _ := board.ApplyAttack(4, 4)
	if !outcome.Sunk || outcome.GameOver {
		t.Fatalf("expected sunk without game over, got: %+v", outcome)
	}

	outcome, _ = board.ApplyAttack(2, 2)
	if outcome.Hit || outcome.GameOver {
		t.Fatalf("expected plain miss, got: %+v", outcome)
	}

	outcome, _ = board.ApplyAttack(0, 0)
	if !outcome.Sunk || !outcome.GameOver {
		t.Fatalf("expected game over, got: %+v", outcome)
	}
}

func TestApplySunkPadding(t *testing.T) {
	board, err := BuildBoard(3, []ShipPlacement{{Row: 0, Col: 0, Length: 2, Axis: AxisHorizontal}})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = board.ApplyAttack(0, 0)
	_, _ = board.ApplyAttack(0, 1)

	shipCells, splash, err := board.ApplySunkPadding(0)
	if err != nil {
		t.Fatal(err)
	}

	expectedShip := []Coordinates{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	if !reflect.DeepEqual(shipCells, expectedShip) {
		t.Fatalf("expected ship cells: %+v\tgot: %+v", expectedShip, shipCells)
	}
	expectedSplash := []Coordinates{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}
	if !reflect.DeepEqual(splash, expectedSplash) {
		t.Fatalf("expected splash: %+v\tgot: %+v", expectedSplash, splash)
	}
	for _, c := range splash {
		if !board.cell(c).Attacked {
			t.Fatalf("splash cell %+v not marked attacked", c)
		}
	}
	if board.cell(NewCoordinates(2, 2)).Attacked {
		t.Fatal("cell outside the border was marked")
	}

	if _, _, err := board.ApplySunkPadding(9); err == nil {
		t.Fatal("expected ship not found")
	} else if kind, _ := cerr.BoardErrKind(err); kind != cerr.BoardErrShipNotFound {
		t.Fatalf("expected ship not found kind, got: %d", kind)
	}
}

func TestApplySunkPaddingSkipsAttackedCells(t *testing.T) {
	board, err := BuildBoard(3, []ShipPlacement{{Row: 1, Col: 1, Length: 1}})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = board.ApplyAttack(0, 0)
	_, _ = board.ApplyAttack(1, 1)

	_, splash, err := board.ApplySunkPadding(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(splash) != 7 {
		t.Fatalf("expected 7 splash cells, got: %d", len(splash))
	}
	for _, c := range splash {
		if c == NewCoordinates(0, 0) {
			t.Fatal("already attacked cell returned as splash")
		}
	}
}

func TestBoardView(t *testing.T) {
	board, err := BuildBoard(2, []ShipPlacement{{Row: 0, Col: 0, Length: 1}})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = board.ApplyAttack(1, 1)

	view := board.View()
	if len(view.Cells) != 4 {
		t.Fatalf("expected 4 cells, got: %d", len(view.Cells))
	}
	if view.Cells[0].ShipId == nil || *view.Cells[0].ShipId != 0 {
		t.Fatal("expected ship id on cell (0,0)")
	}
	last := view.Cells[3]
	if last.Row != 1 || last.Col != 1 || !last.Attacked {
		t.Fatalf("expected attacked (1,1), got: %+v", last)
	}
}
