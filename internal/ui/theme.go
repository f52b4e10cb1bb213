package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/robalobadob/wordle/apps/desktop/internal/game"
)

var (
	colorBackground = color.RGBA{18, 18, 19, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorDim        = color.RGBA{129, 131, 132, 255}
	colorSelected   = color.RGBA{255, 196, 0, 255}
	colorError      = color.RGBA{230, 80, 80, 255}
	colorEmptyTile  = color.RGBA{58, 58, 60, 255}
	colorActiveTile = color.RGBA{86, 87, 88, 255}
	colorCorrect    = color.RGBA{83, 141, 78, 255}
	colorPresent    = color.RGBA{181, 159, 59, 255}
	colorAbsent     = color.RGBA{40, 40, 42, 255}
)

// codeColor maps an evaluation code to its tile colour.
func codeColor(c game.Code) color.Color {
	switch c {
	case game.Correct:
		return colorCorrect
	case game.Present:
		return colorPresent
	}
	return colorAbsent
}

// faces holds the fonts shared by every scene.
type faces struct {
	title  text.Face
	normal text.Face
	tile   text.Face
	small  text.Face
}

func loadFaces() (*faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &faces{
		title:  &text.GoTextFace{Source: src, Size: 32},
		normal: &text.GoTextFace{Source: src, Size: 18},
		tile:   &text.GoTextFace{Source: src, Size: 24},
		small:  &text.GoTextFace{Source: src, Size: 13},
	}, nil
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawCentered draws s horizontally centred on cx with its top at y.
func drawCentered(dst *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// drawInBox draws s centred on (cx, cy).
func drawInBox(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// drawWrapped centres s on cx, breaking it into lines that fit width.
func drawWrapped(dst *ebiten.Image, s string, face text.Face, cx, y, width float64, clr color.Color) {
	lineHeight := face.Metrics().HAscent + face.Metrics().HDescent + 4
	for _, line := range wrap(s, face, width) {
		drawCentered(dst, line, face, cx, y, clr)
		y += lineHeight
	}
}

func wrap(s string, face text.Face, width float64) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if w, _ := text.Measure(next, face, 0); w > width && cur != "" {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
