package diagram

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/testutil"
)

func TestDefaultOptionsDimensions(t *testing.T) {
	w, h := DefaultOptions().Dimensions()
	testutil.AssertEqual(t, w, 536)
	testutil.AssertEqual(t, h, 536)

	w, h = Options{SquareSize: 32}.Dimensions()
	testutil.AssertEqual(t, w, 256)
	testutil.AssertEqual(t, h, 256)
}

func TestSquareAt(t *testing.T) {
	tests := []struct {
		col, row int
		flip     bool
		want     board.Square
	}{
		{0, 0, false, board.A8},
		{7, 0, false, board.H8},
		{0, 7, false, board.A1},
		{7, 7, false, board.H1},
		{4, 4, false, board.E4},
		{0, 0, true, board.H1},
		{7, 7, true, board.A8},
		{3, 4, true, board.E5},
	}
	for _, tt := range tests {
		if got := squareAt(tt.col, tt.row, tt.flip); got != tt.want {
			t.Errorf("squareAt(%d, %d, %v) = %v, want %v", tt.col, tt.row, tt.flip, got, tt.want)
		}
	}
}

func TestWriteSVGSquareColors(t *testing.T) {
	pos := board.EmptyPosition()

	var buf bytes.Buffer
	WriteSVG(&buf, &pos, board.Empty, Options{SquareSize: 8, Coords: false})
	out := buf.String()

	if !strings.Contains(out, "<svg") {
		t.Fatalf("output is not an SVG document:\n%s", out)
	}
	testutil.AssertEqual(t, strings.Count(out, "fill:#f0d9b5"), 32)
	testutil.AssertEqual(t, strings.Count(out, "fill:#b58863"), 32)
}

func TestWriteSVGStartPosition(t *testing.T) {
	pos := board.NewPosition()

	var buf bytes.Buffer
	WriteSVG(&buf, &pos, board.Empty, DefaultOptions())
	out := buf.String()

	testutil.AssertContains(t, out, `width="536"`)
	testutil.AssertContains(t, out, "<polygon")
	testutil.AssertContains(t, out, ">a</text>")
	testutil.AssertContains(t, out, ">8</text>")
	if strings.Contains(out, "fill-opacity") {
		t.Error("no highlights requested, but highlight dots were drawn")
	}
}

func TestWriteSVGFlipped(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Armies[board.White].PlacePieces(board.Rook, board.A1)

	opts := DefaultOptions()
	opts.Flip = true
	var buf bytes.Buffer
	WriteSVG(&buf, &pos, board.Empty, opts)
	out := buf.String()

	testutil.AssertContains(t, out, ">h</text>")
	testutil.AssertContains(t, out, ">1</text>")
}

func TestWriteSVGHighlights(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Armies[board.White].PlacePieces(board.Knight, board.G1)

	targets := pos.PossibleMoves(board.G1)
	var buf bytes.Buffer
	WriteSVG(&buf, &pos, targets, DefaultOptions())

	testutil.AssertEqual(t, strings.Count(buf.String(), "fill-opacity:0.6"), targets.PopCount())
}

func TestPieceSVG(t *testing.T) {
	data := PieceSVG(board.WhiteKing, 90)
	out := string(data)

	testutil.AssertContains(t, out, "<svg")
	testutil.AssertContains(t, out, `width="90"`)
	testutil.AssertContains(t, out, "<polygon")

	empty := string(PieceSVG(board.NoPiece, 90))
	if strings.Contains(empty, "<polygon") {
		t.Error("PieceSVG(NoPiece) should draw nothing")
	}
}

func TestWritePNG(t *testing.T) {
	pos := board.NewPosition()

	var buf bytes.Buffer
	err := WritePNG(&buf, &pos, board.Empty, DefaultOptions())
	testutil.AssertNoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Width, 536)
	testutil.AssertEqual(t, cfg.Height, 536)
}

func TestWritePNGNoCoords(t *testing.T) {
	pos := board.EmptyPosition()

	var buf bytes.Buffer
	err := WritePNG(&buf, &pos, board.Empty, Options{SquareSize: 16})
	testutil.AssertNoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Width, 128)
	testutil.AssertEqual(t, cfg.Height, 128)
}

func TestRasterizeRejectsGarbage(t *testing.T) {
	// A truncated document. Plain text would tokenize as top-level
	// chardata and slip through the XML decoder.
	_, err := Rasterize([]byte(`<svg width="10`), 10, 10)
	testutil.AssertError(t, err)
}
