package error

import (
	"errors"
	"fmt"
)

const (
	ErrCodeParse uint8 = iota
	ErrCodeWrongLength
	ErrCodeWrongLocation
	ErrCodeOutOfBounds
	ErrCodeTooClose
	ErrCodeShipUnavailable
)

// PlacementErr is returned by every failed parse or placement
// check. None of them are fatal; callers are expected to ask
// for another input.
type PlacementErr struct {
	code uint8
	desc string
}

func NewPlacementErr(code uint8) *PlacementErr {
	return &PlacementErr{code: code}
}

func (p *PlacementErr) AddDesc(desc string) *PlacementErr {
	p.desc = desc
	return p
}

func (p *PlacementErr) Error() string {
	return fmt.Sprintf("placement error - Code: %d\tdesc: %s", p.code, p.desc)
}

func (p *PlacementErr) Code() uint8 {
	return p.code
}

func (p *PlacementErr) Desc() string {
	return p.desc
}

// Returns the code of err if it is (or wraps) a PlacementErr.
func CodeOf(err error) (uint8, bool) {
	var pErr *PlacementErr
	if errors.As(err, &pErr) {
		return pErr.code, true
	}
	return 0, false
}

func IsParseErr(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeParse
}

func IsInvalidPlacement(err error) bool {
	code, ok := CodeOf(err)
	return ok && code != ErrCodeParse
}

func ErrCoordinatesMalformed(token string) error {
	return NewPlacementErr(ErrCodeParse).AddDesc(fmt.Sprintf("coordinates must be a row letter followed by a 1-2 digit column, got: %q", token))
}

func ErrPlacementLineMalformed(line string) error {
	return NewPlacementErr(ErrCodeParse).AddDesc(fmt.Sprintf("expected two coordinates separated by a space, got: %q", line))
}

func ErrShipLengthInvalid(length int) error {
	return NewPlacementErr(ErrCodeWrongLength).AddDesc(fmt.Sprintf("ship length must be between 2 and 5\tlength: %d", length))
}

func ErrPlacementDiagonal(rowA, colA, rowB, colB int) error {
	return NewPlacementErr(ErrCodeWrongLocation).AddDesc(fmt.Sprintf("endpoints share neither row nor column\ta: (%d, %d)\tb: (%d, %d)", rowA, colA, rowB, colB))
}

func ErrPlacementSpanMismatch(span, length int) error {
	return NewPlacementErr(ErrCodeWrongLength).AddDesc(fmt.Sprintf("endpoints span %d cells but ship needs %d", span, length))
}

func ErrCellOutOfGridBound(row, col int) error {
	return NewPlacementErr(ErrCodeOutOfBounds).AddDesc(fmt.Sprintf("cell is out of grid bound\trow: %d\tcol: %d", row, col))
}

func ErrCellTooClose(row, col int) error {
	return NewPlacementErr(ErrCodeTooClose).AddDesc(fmt.Sprintf("cell or one of its neighbours is taken\trow: %d\tcol: %d", row, col))
}

func ErrCellAlreadyOccupied(row, col int) error {
	return NewPlacementErr(ErrCodeTooClose).AddDesc(fmt.Sprintf("current position in grid already taken\trow: %d\tcol: %d", row, col))
}

func ErrShipNil() error {
	return NewPlacementErr(ErrCodeShipUnavailable).AddDesc("ship to place is nil")
}

func ErrShipAlreadyPlaced(name, marker string) error {
	return NewPlacementErr(ErrCodeShipUnavailable).AddDesc(fmt.Sprintf("ship is already on the board\tname: %s\tmarker: %s", name, marker))
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}
