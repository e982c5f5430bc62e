package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const hueModulus = 256

// Dead is the fill color of dead cells
var Dead = color.RGBA{A: 0xff}

// Hue returns the cosmetic hue of a live cell, (height*(row-col)) mod 256.
// The result is in [0, 256) and is read as degrees on the HSV wheel.
func Hue(height, row, col int) int {
	h := (height * (row - col)) % hueModulus
	if h < 0 {
		h += hueModulus
	}
	return h
}

// CellColor returns black for dead cells and a fully saturated, full value color for live ones.
// It depends only on the coordinates and board height.
func CellColor(height, row, col int, alive bool) color.RGBA {
	if !alive {
		return Dead
	}
	r, g, b := colorful.Hsv(float64(Hue(height, row, col)), 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
