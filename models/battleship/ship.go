package battleship

import "github.com/google/uuid"

const (
	MinShipLength = 2
	MaxShipLength = 5
)

const (
	ShipCodeAircraftCarrier uint8 = iota
	ShipCodeBattleship
	ShipCodeSubmarine
	ShipCodeCruiser
	ShipCodeDestroyer
)

type Ship struct {
	uuid   string
	code   uint8
	name   string
	length int
	cells  []Coordinates
}

func NewShip(code uint8, name string, length int) *Ship {
	return &Ship{
		uuid:   uuid.NewString()[:6],
		code:   code,
		name:   name,
		length: length,
		cells:  make([]Coordinates, 0, length),
	}
}

// Returns the ships in the order they are placed.
func NewFleet() []*Ship {
	return []*Ship{
		NewShip(ShipCodeAircraftCarrier, "Aircraft Carrier", 5),
		NewShip(ShipCodeBattleship, "Battleship", 4),
		NewShip(ShipCodeSubmarine, "Submarine", 3),
		NewShip(ShipCodeCruiser, "Cruiser", 3),
		NewShip(ShipCodeDestroyer, "Destroyer", 2),
	}
}

func (sh *Ship) Uuid() string {
	return sh.uuid
}

func (sh *Ship) Code() uint8 {
	return sh.code
}

func (sh *Ship) Name() string {
	return sh.name
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Cells() []Coordinates {
	return sh.cells
}

func (sh *Ship) IsPlaced() bool {
	return len(sh.cells) == sh.length
}

func (sh *Ship) setCells(cells []Coordinates) {
	sh.cells = append(sh.cells[:0], cells...)
}
