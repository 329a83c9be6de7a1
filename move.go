/*
Package konane provides the move notation used by Konane (Hawaiian checkers)
on an 8x8 board.

A move is a pair of zero-based (row, column) coordinates. Rows are written as
the letters A through H and columns as the digits 1 through 8, so the move
from the top-left corner to the square diagonally below it reads "A1 - B2".
Example usage:

	// Read a move typed by a player
	m, err := konane.ParseMove("a1b2")
	if errors.Is(err, konane.ErrIncompleteMove) {
		// ask again
	}

	// Display it
	fmt.Println(m) // A1 - B2

The package does not check whether a move is legal.
*/
package konane

import (
	"fmt"
	"io"
	"os"
)

// A Move relocates a piece from a start coordinate to an end coordinate.
// Moves are plain values and are comparable with ==.
type Move struct {
	StartRow int `json:"startRow"`
	StartCol int `json:"startCol"`
	EndRow   int `json:"endRow"`
	EndCol   int `json:"endCol"`
}

// NewMove returns a move between two coordinates. The coordinates are not
// range checked.
func NewMove(startRow, startCol, endRow, endCol int) Move {
	return Move{
		StartRow: startRow,
		StartCol: startCol,
		EndRow:   endRow,
		EndCol:   endCol,
	}
}

// Equal reports whether both moves have the same start and end coordinates.
// A move is not equal to its reverse.
func (m Move) Equal(o Move) bool {
	return m.StartRow == o.StartRow &&
		m.StartCol == o.StartCol &&
		m.EndRow == o.EndRow &&
		m.EndCol == o.EndCol
}

// Valid reports whether all four coordinates lie on the board.
func (m Move) Valid() bool {
	return ValidCoordinate(m.StartRow) && ValidCoordinate(m.StartCol) &&
		ValidCoordinate(m.EndRow) && ValidCoordinate(m.EndCol)
}

// String implements the fmt.Stringer interface. Rows without a letter are
// written as NoLetter; use Render to detect them.
func (m Move) String() string {
	return fmt.Sprintf("%c%d - %c%d",
		RowToLetter(m.StartRow),
		m.StartCol+1,
		RowToLetter(m.EndRow),
		m.EndCol+1)
}

// Render returns the notation for m, or ErrCoordinateOutOfRange when a
// coordinate is off the board.
func (m Move) Render() (string, error) {
	if !m.Valid() {
		return "", fmt.Errorf("%w: (%d,%d),(%d,%d)", ErrCoordinateOutOfRange,
			m.StartRow, m.StartCol, m.EndRow, m.EndCol)
	}
	return m.String(), nil
}

// Print writes the notation for m to standard output.
func (m Move) Print() {
	_ = m.Fprint(os.Stdout)
}

// Fprint writes the notation for m to w.
func (m Move) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, m.String())
	return err
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m Move) MarshalText() ([]byte, error) {
	s, err := m.Render()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Move) UnmarshalText(text []byte) error {
	mv, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = mv
	return nil
}
