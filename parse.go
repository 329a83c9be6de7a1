package konane

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// ScanLimit is the number of leading bytes of input examined when parsing a move.
const ScanLimit = 20

// scanState is the token the scanner is currently looking for.
type scanState int

const (
	seekFirstLetter scanState = iota
	seekFirstDigit
	seekSecondLetter
	seekSecondDigit
	scanDone
)

func (s scanState) String() string {
	switch s {
	case seekFirstLetter:
		return "start row"
	case seekFirstDigit:
		return "start column"
	case seekSecondLetter:
		return "end row"
	case seekSecondDigit:
		return "end column"
	}
	return "done"
}

func (s scanState) accepts(c byte) bool {
	if s == seekFirstLetter || s == seekSecondLetter {
		return isAlpha(c)
	}
	return isDigit(c)
}

// scanner pulls alternating letter and digit tokens out of free-form text.
// Bytes that do not match the expected class are skipped; there is no
// backtracking.
type scanner struct {
	input  string
	limit  int
	pos    int
	state  scanState
	tokens [4]byte
}

func newScanner(s string) *scanner {
	limit := min(len(s), ScanLimit)
	// input ends at the first NUL, as it does for C strings
	if i := strings.IndexByte(s[:limit], 0); i >= 0 {
		limit = i
	}
	return &scanner{input: s, limit: limit}
}

// scan advances until the scanner reaches stop or runs out of input.
func (sc *scanner) scan(stop scanState) error {
	for sc.state < stop {
		for sc.pos < sc.limit && !sc.state.accepts(sc.input[sc.pos]) {
			sc.pos++
		}
		if sc.pos >= sc.limit {
			log.Debug().
				Str("input", sc.input).
				Int("position", sc.pos).
				Stringer("missing", sc.state).
				Msg("incomplete move text")
			return &NotationError{
				Message:  "missing " + sc.state.String(),
				Input:    sc.input,
				Position: sc.pos,
				Err:      ErrIncompleteMove,
			}
		}
		sc.tokens[sc.state] = sc.input[sc.pos]
		sc.pos++
		sc.state++
	}
	return nil
}

// endpoint converts the letter and digit tokens at i and i+1 to a coordinate.
func (sc *scanner) endpoint(i int) (row, col int, err error) {
	row, err = LetterToRow(string(sc.tokens[i]))
	if err != nil {
		return 0, 0, err
	}
	return row, int(sc.tokens[i+1]-'0') - 1, nil
}

// ParseMove extracts a move from loosely formatted text such as "A1 - B2",
// "a1b2" or "(c3)->(c5)". Only the first ScanLimit bytes are read. The first
// letter, the next digit, the next letter and the next digit are taken in
// that order and everything else is ignored. Any letter counts as a row, so
// words in the input are misread, and each column is a single digit:
// "A10 - B2" reads as A1 - B2.
//
// ParseMove returns a *NotationError wrapping ErrIncompleteMove when fewer
// than four tokens are found. Letters after 'H' and the digit '0' produce
// coordinates off the board; check Move.Valid before using the result.
func ParseMove(s string) (Move, error) {
	sc := newScanner(s)
	if err := sc.scan(scanDone); err != nil {
		return Move{}, err
	}
	startRow, startCol, err := sc.endpoint(0)
	if err != nil {
		return Move{}, err
	}
	endRow, endCol, err := sc.endpoint(2)
	if err != nil {
		return Move{}, err
	}
	return NewMove(startRow, startCol, endRow, endCol), nil
}

// ParseFirstEndpoint reads only the first letter and the digit after it,
// returning a move whose start is that coordinate. The end row and column of
// the result are always 0 and carry no meaning.
func ParseFirstEndpoint(s string) (Move, error) {
	sc := newScanner(s)
	if err := sc.scan(seekSecondLetter); err != nil {
		return Move{}, err
	}
	row, col, err := sc.endpoint(0)
	if err != nil {
		return Move{}, err
	}
	return NewMove(row, col, 0, 0), nil
}
