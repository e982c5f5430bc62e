package model

// Pattern is a small block of cells, indexed [row][col]
type Pattern [][]bool

var (
	// Glider travels one cell down and one cell right every 4 generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	// Blinker oscillates between a horizontal and vertical bar
	Blinker = Pattern{
		{true, true, true},
	}
)

// Stamp copies the pattern onto the board with its top-left corner at (row, col).
// Cells wrap around the board edges.
func (b *Board) Stamp(p Pattern, row, col int) {
	for dr, cells := range p {
		for dc, alive := range cells {
			b.Set(row+dr, col+dc, alive)
		}
	}
}
