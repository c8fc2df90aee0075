// Package ui implements the position explorer using Ebitengine.
package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
)

// SpriteManager rasterizes and caches piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
	hidpi       float64 // Device scale factor applied when drawing
}

// NewSpriteManager creates a sprite manager with pieces of the given
// display size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
		hidpi:       1.0,
	}
	sm.loadPieces()
	return sm
}

// SetScale sets the HiDPI scale factor applied when drawing.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.hidpi = scale
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// loadPieces renders every piece glyph into a sprite.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for p := board.WhiteKing; p <= board.BlackPawn; p++ {
		data := diagram.PieceSVG(p, renderSize)
		rgba, err := diagram.Rasterize(data, renderSize, renderSize)
		if err != nil {
			log.Printf("Failed to rasterize sprite for %v: %v", p, err)
			continue
		}
		sm.pieces[p] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	if p == board.NoPiece {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to the scaled display size
	scale := sm.hidpi / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
