// Package diagram renders board positions as SVG documents and PNG
// images. The SVG is built from plain shapes so the same bytes can be
// rasterized without a text stack.
package diagram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/chesscore/internal/board"
)

// Board is the position view the renderer consumes.
type Board interface {
	PieceAt(board.Square) board.Piece
}

// Options control the rendered board.
type Options struct {
	SquareSize int    // edge of one square in pixels
	Light      string // CSS color of the light squares
	Dark       string // CSS color of the dark squares
	Highlight  string // CSS color of the highlight dots
	Coords     bool   // draw file letters and rank digits
	Flip       bool   // show the board from Black's side
}

// DefaultOptions returns the renderer defaults: 64px squares in the
// usual wood colors, with coordinates.
func DefaultOptions() Options {
	return Options{
		SquareSize: 64,
		Light:      "#f0d9b5",
		Dark:       "#b58863",
		Highlight:  "#2a9d8f",
		Coords:     true,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SquareSize <= 0 {
		o.SquareSize = def.SquareSize
	}
	if o.Light == "" {
		o.Light = def.Light
	}
	if o.Dark == "" {
		o.Dark = def.Dark
	}
	if o.Highlight == "" {
		o.Highlight = def.Highlight
	}
	return o
}

// margin is the label gutter on the left and bottom edges.
func (o Options) margin() int {
	if !o.Coords {
		return 0
	}
	return o.SquareSize * 3 / 8
}

// Dimensions returns the pixel width and height of the rendered board.
func (o Options) Dimensions() (int, int) {
	o = o.withDefaults()
	m := o.margin()
	return 8*o.SquareSize + m, 8*o.SquareSize + m
}

// squareAt maps a screen column and row (top-left origin) to a board
// square under the given orientation.
func squareAt(col, row int, flip bool) board.Square {
	if flip {
		return board.NewSquare(board.File(7-col), board.Rank(row))
	}
	return board.NewSquare(board.File(col), board.Rank(7-row))
}

// WriteSVG writes the position as an SVG document. Squares set in
// highlights get a dot overlay, the usual way to show candidate moves.
func WriteSVG(w io.Writer, b Board, highlights board.Bitboard, opts Options) {
	writeSVG(w, b, highlights, opts.withDefaults(), true)
}

func writeSVG(w io.Writer, b Board, highlights board.Bitboard, opts Options, withText bool) {
	s := opts.SquareSize
	m := opts.margin()
	width, height := opts.Dimensions()

	canvas := svg.New(w)
	canvas.Start(width, height)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := squareAt(col, row, opts.Flip)
			x, y := m+col*s, row*s

			fill := opts.Light
			if (int(sq.File())+int(sq.Rank()))%2 == 0 {
				fill = opts.Dark
			}
			canvas.Rect(x, y, s, s, "fill:"+fill)

			if p := b.PieceAt(sq); p != board.NoPiece {
				drawPiece(canvas, p, x, y, s)
			}
			if highlights.IsSet(sq) {
				canvas.Circle(x+s/2, y+s/2, s/6,
					"fill:"+opts.Highlight+";fill-opacity:0.6")
			}
		}
	}

	if opts.Coords && withText {
		style := fmt.Sprintf("font-family:sans-serif;font-size:%dpx;text-anchor:middle;fill:#404040", s/4)
		for i := 0; i < 8; i++ {
			canvas.Text(m+i*s+s/2, 8*s+m*3/4, string(fileLabel(i, opts.Flip)), style)
			canvas.Text(m/2, i*s+s/2+s/8, string(rankLabel(i, opts.Flip)), style)
		}
	}

	canvas.End()
}

func fileLabel(col int, flip bool) byte {
	if flip {
		return byte('h' - col)
	}
	return byte('a' + col)
}

func rankLabel(row int, flip bool) byte {
	if flip {
		return byte('1' + row)
	}
	return byte('8' - row)
}

// WritePNG rasterizes the position and encodes it as a PNG. The SVG
// text elements are not rasterized, so coordinate labels are stamped
// onto the image afterwards.
func WritePNG(w io.Writer, b Board, highlights board.Bitboard, opts Options) error {
	opts = opts.withDefaults()
	width, height := opts.Dimensions()

	var buf bytes.Buffer
	writeSVG(&buf, b, highlights, opts, false)

	rgba, err := Rasterize(buf.Bytes(), width, height)
	if err != nil {
		return err
	}
	if opts.Coords {
		drawCoords(rgba, opts)
	}
	return png.Encode(w, rgba)
}

// Rasterize renders an SVG document into an RGBA image of the given
// size, anti-aliased.
func Rasterize(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// drawCoords stamps the file letters and rank digits into the label
// gutter of a rasterized board.
func drawCoords(img *image.RGBA, opts Options) {
	s := opts.SquareSize
	m := opts.margin()
	gray := color.RGBA{0x40, 0x40, 0x40, 0xFF}

	for i := 0; i < 8; i++ {
		drawLabel(img, m+i*s+s/2-3, 8*s+m*3/4, string(fileLabel(i, opts.Flip)), gray)
		drawLabel(img, m/2-3, i*s+s/2+4, string(rankLabel(i, opts.Flip)), gray)
	}
}

func drawLabel(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
