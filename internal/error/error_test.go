package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestPlacementErrKinds(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    uint8
		expectedParse   bool
		expectedInvalid bool
	}{
		{"malformed token", ErrCoordinatesMalformed("A"), ErrCodeParse, true, false},
		{"malformed line", ErrPlacementLineMalformed("A1"), ErrCodeParse, true, false},
		{"ship length", ErrShipLengthInvalid(7), ErrCodeWrongLength, false, true},
		{"span mismatch", ErrPlacementSpanMismatch(2, 3), ErrCodeWrongLength, false, true},
		{"diagonal", ErrPlacementDiagonal(0, 0, 1, 1), ErrCodeWrongLocation, false, true},
		{"out of bound", ErrCellOutOfGridBound(0, 10), ErrCodeOutOfBounds, false, true},
		{"too close", ErrCellTooClose(1, 1), ErrCodeTooClose, false, true},
		{"already occupied", ErrCellAlreadyOccupied(3, 3), ErrCodeTooClose, false, true},
		{"nil ship", ErrShipNil(), ErrCodeShipUnavailable, false, true},
		{"ship already placed", ErrShipAlreadyPlaced("Destroyer", "abc123"), ErrCodeShipUnavailable, false, true},
		{"wrapped", fmt.Errorf("placing: %w", ErrCellTooClose(1, 1)), ErrCodeTooClose, false, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, ok := CodeOf(test.err)
			if !ok {
				t.Fatalf("expected a placement error\t got: %T", test.err)
			}
			if code != test.expectedCode {
				t.Fatalf("expected code: %d\t got: %d", test.expectedCode, code)
			}
			if IsParseErr(test.err) != test.expectedParse {
				t.Fatalf("expected parse: %t\t got: %t", test.expectedParse, !test.expectedParse)
			}
			if IsInvalidPlacement(test.err) != test.expectedInvalid {
				t.Fatalf("expected invalid placement: %t\t got: %t", test.expectedInvalid, !test.expectedInvalid)
			}
		})
	}
}

func TestNonPlacementErr(t *testing.T) {
	err := errors.New("boom")
	if _, ok := CodeOf(err); ok {
		t.Fatal("expected plain error not to carry a code")
	}
	if IsParseErr(err) || IsInvalidPlacement(err) {
		t.Fatal("expected plain error to be neither parse nor placement error")
	}
}

func TestErrInvalidStage(t *testing.T) {
	err := ErrInvalidStage("staging")
	if err == nil {
		t.Fatal("expected an error for an unknown stage")
	}
	if _, ok := CodeOf(err); ok {
		t.Fatal("expected stage error not to carry a placement code")
	}
	if IsParseErr(err) || IsInvalidPlacement(err) {
		t.Fatal("expected stage error to be neither parse nor placement error")
	}
	if !strings.Contains(err.Error(), "staging") {
		t.Fatalf("expected stage in message\t got: %s", err.Error())
	}
}
