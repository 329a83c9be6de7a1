package konane

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Size is the number of rows and columns on the board.
const Size = 8

// NoLetter is returned by RowToLetter for rows that have no letter.
const NoLetter byte = 0

var (
	// ErrIncompleteMove is returned when move text does not contain
	// every letter/digit token needed to build a move.
	ErrIncompleteMove = errors.New("konane: incomplete move text")
	// ErrInvalidLetter is returned when a row token is not an ASCII letter.
	ErrInvalidLetter = errors.New("konane: invalid row letter")
	// ErrCoordinateOutOfRange is returned when a row or column is outside 0..Size-1.
	ErrCoordinateOutOfRange = errors.New("konane: coordinate out of range")
)

// rowLetters maps a row index to its display letter.
var rowLetters = [Size]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H'}

// NotationError describes a failure to read move notation.
type NotationError struct {
	Message  string
	Input    string
	Position int
	Err      error
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("konane: %s in %q at position %d", e.Message, e.Input, e.Position)
}

// Unwrap returns the sentinel error classifying the failure.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// ValidCoordinate reports whether i is a usable row or column index.
func ValidCoordinate[T constraints.Integer](i T) bool {
	return i >= 0 && i < Size
}

// RowToLetter returns the letter for a row, 'A' for row 0 through 'H' for
// row 7. Any other row yields NoLetter.
func RowToLetter(row int) byte {
	if !ValidCoordinate(row) {
		return NoLetter
	}
	return rowLetters[row]
}

// LetterToRow returns the row named by the first byte of s, ignoring case.
// Letters past 'H' map to rows outside the board without error; use
// ValidCoordinate to reject them.
func LetterToRow(s string) (int, error) {
	if s == "" {
		return 0, &NotationError{Message: "missing row letter", Input: s, Err: ErrInvalidLetter}
	}
	c := s[0]
	if !isAlpha(c) {
		return 0, &NotationError{Message: "row is not a letter", Input: s, Err: ErrInvalidLetter}
	}
	return int(toUpper(c) - 'A'), nil
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
