package konane

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadMoves reads a transcript holding one move per line. Blank lines and
// lines starting with '#' are skipped. Each move line is read with ParseMove,
// so "a3a5" is accepted and a move number in front of the first letter, as in
// "1. A3 - A5", is ignored. An error names the line it came from and wraps
// the underlying notation error.
func ReadMoves(r io.Reader) ([]Move, error) {
	var moves []Move
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		m, err := ParseMove(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		moves = append(moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}

// WriteMoves writes each move on its own line. Moves with coordinates off
// the board are rejected with ErrCoordinateOutOfRange.
func WriteMoves(w io.Writer, moves []Move) error {
	bw := bufio.NewWriter(w)
	for i, m := range moves {
		s, err := m.Render()
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if _, err := fmt.Fprintln(bw, s); err != nil {
			return err
		}
	}
	return bw.Flush()
}
