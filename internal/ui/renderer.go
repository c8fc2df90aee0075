package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chesscore/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	TargetColor    color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		TargetColor:    color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},  // Softer yellow-green
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
	}
}

// Renderer handles all board drawing.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool    // Black at the bottom
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped shows the board from Black's side.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether the board is shown from Black's side.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the board squares and coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(board.File(file), board.Rank(rank))
			x, y := r.SquareToScreen(sq)

			c := r.theme.LightSquare
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}

	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters along the bottom edge and rank
// digits along the left edge, inside the squares. Each label takes the
// color of the opposite square shade so it reads on both.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	size := 14.0 * r.scale

	for i := 0; i < 8; i++ {
		fileCh := string(rune('a' + i))
		rankCh := string(rune('8' - i))
		if r.flipped {
			fileCh = string(rune('h' - i))
			rankCh = string(rune('1' + i))
		}

		fx := float64(r.s(i*r.squareSize + r.squareSize - 12))
		fy := float64(r.s(8*r.squareSize - 18))
		drawText(screen, fileCh, size, fx, fy, r.labelColor(i, 7))

		rx := float64(r.s(3))
		ry := float64(r.s(i * r.squareSize))
		drawText(screen, rankCh, size, rx, ry, r.labelColor(0, i))
	}
}

// labelColor returns the contrasting shade for the square at the given
// screen column and row.
func (r *Renderer) labelColor(col, row int) color.RGBA {
	sq := r.ScreenToSquare(col*r.squareSize, row*r.squareSize)
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return r.theme.LightSquare // Dark square, light label
	}
	return r.theme.DarkSquare
}

// DrawHighlights draws the last move, the selected square and the
// candidate target dots.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets board.Bitboard, lastMove board.Move) {
	if lastMove.IsValid() {
		r.highlightSquare(screen, lastMove.From(), r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To(), r.theme.LastMoveColor)
	}
	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}
	targets.ForEach(func(sq board.Square) {
		r.drawTargetDot(screen, sq)
	})
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// drawTargetDot draws a circle on a candidate landing square.
func (r *Renderer) drawTargetDot(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2
	radius := r.s(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.TargetColor, false)
}

// DrawPieces draws all pieces, skipping the one being dragged.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pos *board.Position, dragging bool, dragSquare board.Square) {
	for sq := board.A1; sq <= board.H8; sq++ {
		if dragging && sq == dragSquare {
			continue
		}
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, piece, int(r.s(x)), int(r.s(y)))
	}
}

// DrawDraggedPiece draws the piece being dragged, centered on the
// mouse position. mouseX and mouseY are logical coordinates.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	if piece == board.NoPiece {
		return
	}
	halfSize := int(r.s(r.squareSize)) / 2
	x := int(r.s(mouseX)) - halfSize
	y := int(r.s(mouseY)) - halfSize

	r.sprites.DrawPieceAt(screen, piece, x, y)
}

// SquareToScreen converts a board square to logical screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	file, rank := int(sq.File()), int(sq.Rank())
	if r.flipped {
		file, rank = 7-file, 7-rank
	}
	x := file * r.squareSize
	y := (7 - rank) * r.squareSize // Rank 1 at the bottom
	return x, y
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - (y / r.squareSize)
	if r.flipped {
		file, rank = 7-file, 7-rank
	}
	return board.NewSquare(board.File(file), board.Rank(rank))
}

// BoardSize returns the board size in logical pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// SquareSize returns the size of one square in logical pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
