package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, GetFace(size), op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size), 0)
}

// DrawTextWrapped draws txt broken into lines no wider than maxWidth and
// returns the height used.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	lineHeight := size * 1.4
	cy := y
	for _, line := range wrapWords(txt, maxWidth, func(s string) float64 {
		w, _ := MeasureText(s, size)
		return w
	}) {
		DrawText(dst, line, x, cy, size, clr)
		cy += lineHeight
	}
	return cy - y
}

// wrapWords splits txt into lines whose measured width stays within
// maxWidth. A single word wider than maxWidth gets a line of its own.
func wrapWords(txt string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	return append(lines, line)
}

// truncateText shortens s with an ellipsis until it fits maxWidth.
func truncateText(s string, maxWidth float64, fontSize float64) string {
	if w, _ := MeasureText(s, fontSize); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "…"
		if w, _ := MeasureText(candidate, fontSize); w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
