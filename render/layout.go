package render

// Layout maps board cells onto window pixels
type Layout struct {
	CellWidth  int
	CellHeight int
}

// Rect is an axis-aligned rectangle in window pixels
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewLayout sizes each cell as the window dimension divided by the board dimension, rounded up
func NewLayout(windowWidth, windowHeight, boardWidth, boardHeight int) Layout {
	return Layout{
		CellWidth:  ceilDiv(windowWidth, boardWidth),
		CellHeight: ceilDiv(windowHeight, boardHeight),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// CellRect returns the screen rectangle of the cell at (row, col)
func (l Layout) CellRect(row, col int) Rect {
	return Rect{
		X:      float32(col * l.CellWidth),
		Y:      float32(row * l.CellHeight),
		Width:  float32(l.CellWidth),
		Height: float32(l.CellHeight),
	}
}
