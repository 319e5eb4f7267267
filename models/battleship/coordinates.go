package battleship

import (
	"strconv"
	"strings"
	"unicode"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
)

const maxColumnDigits = 2

// ParseCoordinates turns a token such as "B4" or "j10" into zero-based
// coordinates. The row letter is case-insensitive. Letters past "J" and
// columns past 10 parse fine; bounds are the validator's business.
func ParseCoordinates(token string) (Coordinates, error) {
	token = strings.TrimSpace(token)

	letters := 0
	for _, r := range token {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			break
		}
		letters++
	}
	if letters != 1 {
		return Coordinates{}, cerr.ErrCoordinatesMalformed(token)
	}

	digits := token[letters:]
	if len(digits) == 0 || len(digits) > maxColumnDigits {
		return Coordinates{}, cerr.ErrCoordinatesMalformed(token)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Coordinates{}, cerr.ErrCoordinatesMalformed(token)
		}
	}

	col, err := strconv.Atoi(digits)
	if err != nil {
		return Coordinates{}, cerr.ErrCoordinatesMalformed(token)
	}

	row := int(unicode.ToUpper(rune(token[0])) - 'A')
	return NewCoordinates(row, col-1), nil
}

// ParsePlacementLine reads a request like "A1 A4".
func ParsePlacementLine(line string) (Coordinates, Coordinates, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return Coordinates{}, Coordinates{}, cerr.ErrPlacementLineMalformed(line)
	}

	a, err := ParseCoordinates(tokens[0])
	if err != nil {
		return Coordinates{}, Coordinates{}, err
	}
	b, err := ParseCoordinates(tokens[1])
	if err != nil {
		return Coordinates{}, Coordinates{}, err
	}
	return a, b, nil
}

// Label is the inverse of ParseCoordinates for in-grid cells, e.g. "J10".
func (c Coordinates) Label() string {
	return string(rune('A'+c.Row)) + strconv.Itoa(c.Col+1)
}
