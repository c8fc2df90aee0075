// chesscore - a bitboard position explorer built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/storage"
	"github.com/hailam/chesscore/internal/ui"
)

func main() {
	store, err := storage.OpenDefault()
	if err != nil {
		log.Printf("Warning: storage unavailable: %v", err)
	}

	pos := board.NewPosition()
	if store != nil {
		defer store.Close()
		if fen, err := store.LoadLastFEN(); err == nil {
			if p, err := board.ParseFEN(fen); err == nil {
				pos = *p
			}
		}
	}

	explorer := ui.NewExplorer(pos, store)
	defer explorer.Close()

	ebiten.SetWindowSize(ui.BoardSize, ui.BoardSize)
	ebiten.SetWindowTitle("chesscore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(explorer); err != nil {
		log.Fatal(err)
	}
}
