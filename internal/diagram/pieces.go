package diagram

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chesscore/internal/board"
)

// PieceSVG returns a standalone SVG document of a single piece on a
// transparent background, size pixels on a side. The UI rasterizes
// these into sprites.
func PieceSVG(p board.Piece, size int) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size)
	if p != board.NoPiece {
		drawPiece(canvas, p, 0, 0, size)
	}
	canvas.End()
	return buf.Bytes()
}

// drawPiece draws one piece into the square at (x, y). The glyphs are
// simple silhouettes built from polygons so any SVG rasterizer can
// handle them.
func drawPiece(canvas *svg.SVG, p board.Piece, x, y, s int) {
	fill, stroke := "#f8f8f8", "#1f1f1f"
	if p.Color() == board.Black {
		fill, stroke = "#2f2f2f", "#e8e8e8"
	}
	style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d;stroke-linejoin:round",
		fill, stroke, max(1, s/32))

	px := func(fx float64) int { return x + int(fx*float64(s)) }
	py := func(fy float64) int { return y + int(fy*float64(s)) }
	r := func(fr float64) int { return int(fr * float64(s)) }

	// Every piece stands on the same plinth.
	canvas.Rect(px(0.22), py(0.76), r(0.56), r(0.10), style)

	switch p.Type() {
	case board.Pawn:
		canvas.Polygon(
			[]int{px(0.36), px(0.64), px(0.56), px(0.44)},
			[]int{py(0.76), py(0.76), py(0.46), py(0.46)},
			style)
		canvas.Circle(px(0.50), py(0.38), r(0.12), style)
	case board.Knight:
		canvas.Polygon(
			[]int{px(0.30), px(0.66), px(0.66), px(0.58), px(0.62), px(0.44), px(0.34), px(0.44)},
			[]int{py(0.76), py(0.76), py(0.52), py(0.40), py(0.26), py(0.22), py(0.44), py(0.50)},
			style)
		canvas.Circle(px(0.52), py(0.32), max(1, r(0.02)), "fill:"+stroke)
	case board.Bishop:
		canvas.Polygon(
			[]int{px(0.38), px(0.62), px(0.55), px(0.45)},
			[]int{py(0.76), py(0.76), py(0.50), py(0.50)},
			style)
		canvas.Circle(px(0.50), py(0.40), r(0.13), style)
		canvas.Circle(px(0.50), py(0.21), r(0.05), style)
	case board.Rook:
		canvas.Rect(px(0.32), py(0.40), r(0.36), r(0.36), style)
		canvas.Rect(px(0.30), py(0.26), r(0.11), r(0.14), style)
		canvas.Rect(px(0.45), py(0.26), r(0.11), r(0.14), style)
		canvas.Rect(px(0.60), py(0.26), r(0.11), r(0.14), style)
	case board.Queen:
		canvas.Polygon(
			[]int{px(0.30), px(0.70), px(0.66), px(0.58), px(0.50), px(0.42), px(0.34)},
			[]int{py(0.76), py(0.76), py(0.34), py(0.52), py(0.30), py(0.52), py(0.34)},
			style)
		canvas.Circle(px(0.34), py(0.30), r(0.04), style)
		canvas.Circle(px(0.50), py(0.26), r(0.04), style)
		canvas.Circle(px(0.66), py(0.30), r(0.04), style)
	case board.King:
		canvas.Polygon(
			[]int{px(0.34), px(0.66), px(0.60), px(0.40)},
			[]int{py(0.76), py(0.76), py(0.44), py(0.44)},
			style)
		canvas.Rect(px(0.46), py(0.16), r(0.08), r(0.28), style)
		canvas.Rect(px(0.38), py(0.24), r(0.24), r(0.08), style)
	}
}
