package console

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	msgWrongLocation = "Error! Wrong ship location! Try again:"
	msgTooClose      = "Error! You placed it too close to another one. Try again:"
)

func promptForShip(ship *mb.Ship) string {
	return fmt.Sprintf("Enter the coordinates of the %s (%d cells):", ship.Name(), ship.Length())
}

// Maps a parse or placement error to what the player sees.
func rejectionMessage(err error, ship *mb.Ship) string {
	code, _ := cerr.CodeOf(err)

	switch code {
	case cerr.ErrCodeWrongLength:
		return fmt.Sprintf("Error! Wrong length of the %s! Try again:", ship.Name())
	case cerr.ErrCodeTooClose:
		return msgTooClose
	default:
		return msgWrongLocation
	}
}
