package battleship

import (
	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

type Orientation uint8

const (
	OrientationInvalid Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "invalid"
	}
}

// Placement is the outcome of a successful validation. Cells run from
// the lower endpoint to the higher one.
type Placement struct {
	Orientation Orientation
	Cells       []Coordinates
}

var invalidPlacement = Placement{Orientation: OrientationInvalid}

// ValidatePlacement checks whether a ship of the given length can go
// between endpoints a and z on board. It never mutates the board.
//
// Every cell of the ship, and each of its orthogonal neighbours that
// lies inside the grid, must be empty. Diagonal contact is allowed.
func ValidatePlacement(a, z Coordinates, length int, board *Board) (Placement, error) {
	if length < MinShipLength || length > MaxShipLength {
		return invalidPlacement, cerr.ErrShipLengthInvalid(length)
	}

	orientation, err := orientationOf(a, z, length)
	if err != nil {
		return invalidPlacement, err
	}

	cells := spanCells(a, z, orientation, length)
	for _, c := range cells {
		if !c.IsInGrid() {
			return invalidPlacement, cerr.ErrCellOutOfGridBound(c.Row, c.Col)
		}
		if !board.isAreaFree(c) {
			return invalidPlacement, cerr.ErrCellTooClose(c.Row, c.Col)
		}
	}

	return Placement{Orientation: orientation, Cells: cells}, nil
}

func orientationOf(a, z Coordinates, length int) (Orientation, error) {
	switch {
	case a.Row == z.Row && a.Col == z.Col:
		return OrientationInvalid, cerr.ErrPlacementSpanMismatch(1, length)

	case a.Row == z.Row:
		if span := absInt(a.Col-z.Col) + 1; span != length {
			return OrientationInvalid, cerr.ErrPlacementSpanMismatch(span, length)
		}
		return OrientationHorizontal, nil

	case a.Col == z.Col:
		if span := absInt(a.Row-z.Row) + 1; span != length {
			return OrientationInvalid, cerr.ErrPlacementSpanMismatch(span, length)
		}
		return OrientationVertical, nil

	default:
		return OrientationInvalid, cerr.ErrPlacementDiagonal(a.Row, a.Col, z.Row, z.Col)
	}
}

func spanCells(a, z Coordinates, orientation Orientation, length int) []Coordinates {
	cells := make([]Coordinates, 0, length)

	if orientation == OrientationHorizontal {
		start := min(a.Col, z.Col)
		for i := 0; i < length; i++ {
			cells = append(cells, NewCoordinates(a.Row, start+i))
		}
		return cells
	}

	start := min(a.Row, z.Row)
	for i := 0; i < length; i++ {
		cells = append(cells, NewCoordinates(start+i, a.Col))
	}
	return cells
}

func (b *Board) isAreaFree(c Coordinates) bool {
	if b.grid[c.Row][c.Col] != CellStateEmpty {
		return false
	}
	for _, n := range c.Neighbours() {
		if b.grid[n.Row][n.Col] != CellStateEmpty {
			return false
		}
	}
	return true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
