package battleship

const GridSize int = 10

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateOccupied
	CellStateHit
	CellStateMiss
)

var cellGlyphs = map[CellState]string{
	CellStateEmpty:    "~",
	CellStateOccupied: "O",
	CellStateHit:      "X",
	CellStateMiss:     "M",
}

func (c CellState) Glyph() string {
	glyph, prs := cellGlyphs[c]
	if !prs {
		return "?"
	}
	return glyph
}

func (c CellState) String() string {
	return c.Glyph()
}

// Coordinates are zero-based; Row 0 is "A" and Col 0 is "1".
type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

func (c Coordinates) IsInGrid() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// Returns the four orthogonal neighbours that lie inside the grid.
func (c Coordinates) Neighbours() []Coordinates {
	candidates := [4]Coordinates{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}

	neighbours := make([]Coordinates, 0, len(candidates))
	for _, n := range candidates {
		if n.IsInGrid() {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// Grid is always indexed [row][col].
type Grid [GridSize][GridSize]CellState

// Creates a new default grid
// All indexes are zero/CellStateEmpty
func NewGrid() Grid {
	return Grid{}
}
