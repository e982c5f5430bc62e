// Package render projects a board onto a drawing surface.
//
// It knows nothing about windows: anything that can clear itself and fill a
// rectangle satisfies Canvas.
package render

import (
	"image/color"

	"github.com/sheikhrachel/go-life/model"
)

// Canvas is a surface the board is drawn onto
type Canvas interface {
	Clear()
	FillRect(r Rect, c color.Color)
}

// DrawBoard clears the canvas and draws every cell of the board, dead cells in black
func DrawBoard(canvas Canvas, board *model.Board, layout Layout) {
	canvas.Clear()

	height := board.GetHeight()
	for row := range height {
		for col := range board.GetWidth() {
			canvas.FillRect(layout.CellRect(row, col), CellColor(height, row, col, board.Get(row, col)))
		}
	}
}
