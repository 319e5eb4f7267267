package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

// Board is owned by a single session and is not safe for
// concurrent use.
type Board struct {
	grid   Grid
	owners [GridSize][GridSize]string
}

func NewBoard() *Board {
	return &Board{grid: NewGrid()}
}

func (b *Board) CellAt(c Coordinates) (CellState, error) {
	if !c.IsInGrid() {
		return CellStateEmpty, cerr.ErrCellOutOfGridBound(c.Row, c.Col)
	}
	return b.grid[c.Row][c.Col], nil
}

// Returns the marker of the ship covering c, or an empty string.
func (b *Board) ShipAt(c Coordinates) string {
	if !c.IsInGrid() {
		return ""
	}
	return b.owners[c.Row][c.Col]
}

func (b *Board) OccupiedCount() int {
	count := 0
	for row := range b.grid {
		for col := range b.grid[row] {
			if b.grid[row][col] == CellStateOccupied {
				count++
			}
		}
	}
	return count
}

// Commit marks every cell as occupied by shipMarker. Either all
// cells are written or none are.
func (b *Board) Commit(cells []Coordinates, shipMarker string) error {
	seen := make(map[Coordinates]bool, len(cells))
	for _, c := range cells {
		if !c.IsInGrid() {
			return cerr.ErrCellOutOfGridBound(c.Row, c.Col)
		}
		if seen[c] || b.grid[c.Row][c.Col] != CellStateEmpty {
			return cerr.ErrCellAlreadyOccupied(c.Row, c.Col)
		}
		seen[c] = true
	}

	for _, c := range cells {
		b.grid[c.Row][c.Col] = CellStateOccupied
		b.owners[c.Row][c.Col] = shipMarker
	}
	return nil
}

// PlaceShip validates the endpoints against the current state and
// commits the ship only when the whole placement is valid.
func (b *Board) PlaceShip(a, z Coordinates, ship *Ship) (Placement, error) {
	if ship == nil {
		return invalidPlacement, cerr.ErrShipNil()
	}
	if ship.IsPlaced() {
		return invalidPlacement, cerr.ErrShipAlreadyPlaced(ship.Name(), ship.Uuid())
	}

	placement, err := ValidatePlacement(a, z, ship.Length(), b)
	if err != nil {
		return placement, err
	}

	if err := b.Commit(placement.Cells, ship.Uuid()); err != nil {
		return invalidPlacement, err
	}
	ship.setCells(placement.Cells)
	return placement, nil
}

func (b *Board) Render() string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 1; col <= GridSize; col++ {
		sb.WriteString(" " + strconv.Itoa(col))
	}
	sb.WriteString("\n")

	for row := 0; row < GridSize; row++ {
		sb.WriteRune(rune('A' + row))
		for col := 0; col < GridSize; col++ {
			sb.WriteString(" " + b.grid[row][col].Glyph())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render()
}
