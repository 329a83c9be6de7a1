package image

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konane-go/konane"
)

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, konane.StartingState()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, konane.Size*konane.Size, strings.Count(out, "<circle"))
	assert.Equal(t, konane.Size*konane.Size/2, strings.Count(out, "fill:#111111"))
	assert.Contains(t, out, ">H</text>")
	assert.Contains(t, out, ">8</text>")
	var doc struct{}
	assert.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
}

func TestSVGEmptyCells(t *testing.T) {
	s := konane.StartingState()
	s.Board[0][0] = konane.Empty
	s.Board[0][2] = 0
	s.Board[1][1] = 'K'

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, s))
	out := buf.String()
	assert.Equal(t, konane.Size*konane.Size-2, strings.Count(out, "<circle"))
	assert.Contains(t, out, ">K</text>")
}

func TestSVGMarkMoves(t *testing.T) {
	var buf bytes.Buffer
	err := SVG(&buf, konane.StartingState(),
		SquareSize(30),
		Colors("#eeeeee", "#333333"),
		MarkMoves(konane.NewMove(0, 0, 0, 2), konane.NewMove(9, 9, 9, 9)),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `width="270"`)
	assert.Equal(t, 2, strings.Count(out, "fill:#e8e86f"))
	assert.Contains(t, out, "fill:#333333")
}

func TestSVGNilState(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, SVG(&buf, nil))
}
