package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/storage"
)

// UI constants
const (
	BoardSize  = 640
	SquareSize = BoardSize / 8
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Explorer.Layout and read when converting cursor coordinates.
var UIScale float64 = 1.0

// Explorer implements ebiten.Game. It shows a position, marks the
// candidate landing squares of a clicked piece and plays moves onto
// the board. Either side's pieces can be moved, so lines can be
// explored freely.
//
// Keys: F flips the board, N resets to the starting position, M mutes
// and Escape clears the selection.
type Explorer struct {
	position board.Position

	selected   board.Square
	targets    board.Bitboard
	dragging   bool
	dragPiece  board.Piece
	dragSquare board.Square
	lastMove   board.Move

	store *storage.Store

	renderer *Renderer
	input    *InputHandler
	audio    *AudioManager

	scale float64
}

// NewExplorer creates an explorer showing the given position. store
// may be nil; when set, the shown position is persisted across runs.
func NewExplorer(pos board.Position, store *storage.Store) *Explorer {
	e := &Explorer{
		position: pos,
		selected: board.NoSquare,
		lastMove: board.NullMove,
		store:    store,
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		audio:    NewAudioManager(),
	}
	e.updateTitle()
	return e
}

// Update advances the input state and applies clicks to the board.
func (e *Explorer) Update() error {
	e.input.Update()

	switch {
	case IsKeyJustPressed(ebiten.KeyF):
		e.renderer.SetFlipped(!e.renderer.Flipped())
	case IsKeyJustPressed(ebiten.KeyN):
		e.SetPosition(board.NewPosition())
	case IsKeyJustPressed(ebiten.KeyM):
		e.audio.SetEnabled(!e.audio.IsEnabled())
	case IsKeyJustPressed(ebiten.KeyEscape):
		e.clearSelection()
	}

	e.handleBoardInput()
	return nil
}

// handleBoardInput processes mouse interactions with the board.
func (e *Explorer) handleBoardInput() {
	mx, my := e.input.MousePosition()
	if mx >= BoardSize || my >= BoardSize {
		return
	}

	if e.input.IsLeftJustPressed() {
		sq := e.renderer.ScreenToSquare(mx, my)
		if sq == board.NoSquare {
			return
		}

		// A click on a marked square plays the move.
		if e.selected != board.NoSquare && e.targets.IsSet(sq) {
			e.playMove(e.selected, sq)
			return
		}

		if piece := e.position.PieceAt(sq); piece != board.NoPiece {
			e.selectSquare(sq)
			e.startDrag(sq)
			return
		}
		e.clearSelection()
	}

	if e.dragging && e.input.IsLeftJustReleased() {
		e.handleDragRelease(mx, my)
	}
}

// selectSquare selects a square and computes its candidate targets.
func (e *Explorer) selectSquare(sq board.Square) {
	e.selected = sq
	e.targets = e.position.PossibleMoves(sq)
}

// clearSelection clears the current selection and drag state.
func (e *Explorer) clearSelection() {
	e.selected = board.NoSquare
	e.targets = board.Empty
	e.dragging = false
	e.dragPiece = board.NoPiece
	e.dragSquare = board.NoSquare
}

// startDrag begins dragging a piece.
func (e *Explorer) startDrag(sq board.Square) {
	e.dragging = true
	e.dragPiece = e.position.PieceAt(sq)
	e.dragSquare = sq
}

// handleDragRelease drops a dragged piece.
func (e *Explorer) handleDragRelease(mx, my int) {
	target := e.renderer.ScreenToSquare(mx, my)
	e.dragging = false
	e.dragPiece = board.NoPiece

	if target == e.dragSquare {
		// A click, not a drag. Keep the selection visible.
		e.dragSquare = board.NoSquare
		return
	}

	from := e.dragSquare
	e.dragSquare = board.NoSquare
	if target != board.NoSquare && e.targets.IsSet(target) {
		e.playMove(from, target)
		return
	}
	if target != board.NoSquare {
		e.audio.Play(SoundInvalid)
	}
	e.clearSelection()
}

// playMove applies the move from from to to. Promotions take the
// queen.
func (e *Explorer) playMove(from, to board.Square) {
	m := e.findMove(from, to)
	if !m.IsValid() {
		e.clearSelection()
		return
	}
	e.position.MakeMove(m)
	e.lastMove = m
	if m.IsCapture() {
		e.audio.Play(SoundCapture)
	} else {
		e.audio.Play(SoundMove)
	}
	e.clearSelection()
	e.persist()
	e.updateTitle()
}

// findMove picks the encoded move between the two squares. When a
// promotion fans out, the queen comes first.
func (e *Explorer) findMove(from, to board.Square) board.Move {
	for _, m := range e.position.Moves(from) {
		if m.To() == to {
			return m
		}
	}
	return board.NullMove
}

// SetPosition replaces the shown position.
func (e *Explorer) SetPosition(pos board.Position) {
	e.position = pos
	e.lastMove = board.NullMove
	e.clearSelection()
	e.persist()
	e.updateTitle()
}

// Position returns the position being shown.
func (e *Explorer) Position() *board.Position {
	return &e.position
}

// persist saves the shown position so the next run resumes from it.
func (e *Explorer) persist() {
	if e.store == nil {
		return
	}
	if err := e.store.SaveLastFEN(e.position.ToFEN()); err != nil {
		log.Printf("Warning: failed to persist position: %v", err)
	}
}

func (e *Explorer) updateTitle() {
	ebiten.SetWindowTitle("chesscore (" + e.position.SideToMove.String() + " to move)")
}

// Draw renders the board, highlights and pieces.
func (e *Explorer) Draw(screen *ebiten.Image) {
	e.renderer.SetScale(e.scale)

	screen.Fill(e.renderer.Theme().Background)
	e.renderer.DrawBoard(screen)
	e.renderer.DrawHighlights(screen, e.selected, e.targets, e.lastMove)
	e.renderer.DrawPieces(screen, &e.position, e.dragging, e.dragSquare)

	if e.dragging {
		mx, my := e.input.MousePosition()
		e.renderer.DrawDraggedPiece(screen, e.dragPiece, mx, my)
	}
}

// Layout scales the window by the device scale factor so the board
// stays crisp on HiDPI displays.
func (e *Explorer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.scale = ebiten.Monitor().DeviceScaleFactor()
	if e.scale < 1.0 {
		e.scale = 1.0
	}
	UIScale = e.scale
	return int(float64(BoardSize) * e.scale), int(float64(BoardSize) * e.scale)
}

// Close persists the shown position before shutdown.
func (e *Explorer) Close() {
	e.persist()
}
