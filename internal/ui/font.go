package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// regularFace is the face used for coordinate labels.
var regularFace *text.GoTextFace

const labelFontSize = 14.0

func init() {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load font: %v", err)
		return
	}
	regularFace = &text.GoTextFace{
		Source: source,
		Size:   labelFontSize,
	}
}

// faceWithSize returns a font face with a custom size.
func faceWithSize(size float64) *text.GoTextFace {
	if regularFace == nil {
		return nil
	}
	return &text.GoTextFace{
		Source: regularFace.Source,
		Size:   size,
	}
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, size, x, y float64, col color.Color) {
	face := faceWithSize(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}
