package konane

import (
	"fmt"
	"os"
	"strings"
)

// Cell values used by the board helpers. Other bytes are stored and printed
// unchanged.
const (
	Empty byte = '.'
	Black byte = 'B'
	White byte = 'W'
)

// A State is a board layout and the player to move. It carries no rules.
type State struct {
	Player byte
	Board  [Size][Size]byte
}

// NewState returns a state holding a copy of board.
func NewState(board [Size][Size]byte, player byte) *State {
	return &State{
		Player: player,
		Board:  board,
	}
}

// StartingState returns the full Konane board with black on squares whose
// row and column sum to an even number, and black to move.
func StartingState() *State {
	var board [Size][Size]byte
	for r := range board {
		for c := range board[r] {
			if (r+c)%2 == 0 {
				board[r][c] = Black
			} else {
				board[r][c] = White
			}
		}
	}
	return NewState(board, Black)
}

// Equal reports whether both states have the same player and board.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	return *s == *o
}

// At returns the cell at row and col.
func (s *State) At(row, col int) (byte, error) {
	if !ValidCoordinate(row) || !ValidCoordinate(col) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrCoordinateOutOfRange, row, col)
	}
	return s.Board[row][col], nil
}

// String implements the fmt.Stringer interface. The board is drawn with the
// row letters down the left and the column numbers across the top.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for c := 0; c < Size; c++ {
		fmt.Fprintf(&sb, " %d", c+1)
	}
	sb.WriteByte('\n')
	for r := 0; r < Size; r++ {
		sb.WriteByte(RowToLetter(r))
		for c := 0; c < Size; c++ {
			cell := s.Board[r][c]
			if cell == 0 {
				cell = Empty
			}
			sb.WriteByte(' ')
			sb.WriteByte(cell)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Player: %c\n", s.Player)
	return sb.String()
}

// Print writes the board to standard output.
func (s *State) Print() {
	fmt.Fprint(os.Stdout, s.String())
}
