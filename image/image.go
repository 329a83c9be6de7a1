// Package image draws Konane boards as SVG.
package image

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/konane-go/konane"
)

// SVG writes an SVG picture of the board in s to w. Cells holding
// konane.Black or konane.White are drawn as stones; any other non-empty cell
// is drawn as a grey stone labelled with its byte.
func SVG(w io.Writer, s *konane.State, options ...func(*encoder)) error {
	e := newEncoder(w, options)
	return e.encode(s)
}

// SquareSize sets the side length of one square in pixels.
func SquareSize(px int) func(*encoder) {
	return func(e *encoder) {
		if px > 0 {
			e.sqSize = px
		}
	}
}

// Colors sets the light and dark square colors, e.g. "#f0d9b5".
func Colors(light, dark string) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkMoves highlights the start and end squares of the given moves.
// Moves with coordinates off the board are ignored.
func MarkMoves(moves ...konane.Move) func(*encoder) {
	return func(e *encoder) {
		for _, m := range moves {
			if !m.Valid() {
				continue
			}
			e.marks[[2]int{m.StartRow, m.StartCol}] = true
			e.marks[[2]int{m.EndRow, m.EndCol}] = true
		}
	}
}

type encoder struct {
	w      io.Writer
	sqSize int
	light  string
	dark   string
	mark   string
	marks  map[[2]int]bool
}

func newEncoder(w io.Writer, options []func(*encoder)) *encoder {
	e := &encoder{
		w:      w,
		sqSize: 45,
		light:  "#f0d9b5",
		dark:   "#ab8a6b",
		mark:   "#e8e86f",
		marks:  map[[2]int]bool{},
	}
	for _, op := range options {
		if op != nil {
			op(e)
		}
	}
	return e
}

func (e *encoder) encode(s *konane.State) error {
	if s == nil {
		return errors.New("image: nil state")
	}
	// one extra square on the top and left for the labels
	side := e.sqSize * (konane.Size + 1)
	canvas := svg.New(e.w)
	canvas.Start(side, side)
	canvas.Rect(0, 0, side, side, "fill:#ffffff")

	label := fmt.Sprintf("font-size:%dpx;text-anchor:middle;fill:#333333", e.sqSize/3)
	for i := 0; i < konane.Size; i++ {
		x, y := e.origin(i, i)
		canvas.Text(x+e.sqSize/2, e.sqSize*2/3, fmt.Sprint(i+1), label)
		canvas.Text(e.sqSize/2, y+e.sqSize*2/3, string(konane.RowToLetter(i)), label)
	}

	for r := 0; r < konane.Size; r++ {
		for c := 0; c < konane.Size; c++ {
			x, y := e.origin(r, c)
			canvas.Rect(x, y, e.sqSize, e.sqSize, "fill:"+e.squareColor(r, c))
			cell, err := s.At(r, c)
			if err != nil {
				return err
			}
			e.drawCell(canvas, x, y, cell)
		}
	}
	canvas.End()
	return nil
}

func (e *encoder) origin(row, col int) (x, y int) {
	return (col + 1) * e.sqSize, (row + 1) * e.sqSize
}

func (e *encoder) squareColor(row, col int) string {
	if e.marks[[2]int{row, col}] {
		return e.mark
	}
	if (row+col)%2 == 0 {
		return e.light
	}
	return e.dark
}

func (e *encoder) drawCell(canvas *svg.SVG, x, y int, cell byte) {
	cx, cy, radius := x+e.sqSize/2, y+e.sqSize/2, e.sqSize*2/5
	switch cell {
	case 0, konane.Empty:
	case konane.Black:
		canvas.Circle(cx, cy, radius, "fill:#111111;stroke:#000000")
	case konane.White:
		canvas.Circle(cx, cy, radius, "fill:#fafafa;stroke:#000000")
	default:
		canvas.Circle(cx, cy, radius, "fill:#999999;stroke:#000000")
		canvas.Text(cx, cy+e.sqSize/8, string(cell),
			fmt.Sprintf("font-size:%dpx;text-anchor:middle", e.sqSize/3))
	}
}
