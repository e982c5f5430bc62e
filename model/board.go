package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	boardPosBlock = "██"
	boardPosEmpty = "  "
)

// Board is a fixed-size toroidal grid of cells, indexed by (row, column).
// Coordinates outside the grid wrap around, so there are no edge cells.
type Board struct {
	width  int
	height int
	cells  [][]bool
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(width, height int) *Board {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewRandomBoard creates a board where every cell is independently alive with probability density
func NewRandomBoard(width, height int, density float64, rng *rand.Rand) *Board {
	b := NewBoard(width, height)
	b.Randomize(density, rng)
	return b
}

// GetWidth returns the number of columns
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the number of rows
func (b *Board) GetHeight() int {
	return b.height
}

// Reset resizes the board to new dimensions and kills every cell
func (b *Board) Reset(width, height int) {
	b.width = width
	b.height = height

	if len(b.cells) != height {
		b.cells = make([][]bool, height)
	}
	for i := range b.cells {
		if len(b.cells[i]) != width {
			b.cells[i] = make([]bool, width)
		} else {
			clear(b.cells[i])
		}
	}
}

// Clear kills every cell
func (b *Board) Clear() {
	for row := range b.cells {
		clear(b.cells[row])
	}
}

// wrap maps any index onto [0, n)
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Set sets a cell to alive (true) or dead (false), wrapping the coordinate
func (b *Board) Set(row, col int, alive bool) {
	b.cells[wrap(row, b.height)][wrap(col, b.width)] = alive
}

// Get returns the state of a cell, wrapping the coordinate
func (b *Board) Get(row, col int) bool {
	return b.cells[wrap(row, b.height)][wrap(col, b.width)]
}

// CountNeighbors counts the live cells among the 8 cells adjacent to (row, col),
// looking across the edges of the board
func (b *Board) CountNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.Get(row+dr, col+dc) {
				count++
			}
		}
	}
	return count
}

// newNext returns an all-dead board with the same dimensions, from the pool when one is given
func (b *Board) newNext(pool *BoardPool) *Board {
	if pool != nil {
		return pool.Get(b.width, b.height)
	}
	return NewBoard(b.width, b.height)
}

// stepRows writes rows [startRow, endRow) of the next generation into next.
// It only reads from b.
func (b *Board) stepRows(next *Board, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range b.width {
			next.cells[row][col] = rules.ApplyConwayRules(b.CountNeighbors(row, col), b.cells[row][col])
		}
	}
}

// NextGeneration computes the next generation into a new board. The receiver is not modified.
func (b *Board) NextGeneration(pool *BoardPool) *Board {
	next := b.newNext(pool)
	b.stepRows(next, 0, b.height)
	return next
}

// NextGenerationParallel calculates the next generation using parallel processing.
// Workers own disjoint row ranges of the new board and share the old one read-only.
func (b *Board) NextGenerationParallel(pool *BoardPool) (*Board, error) {
	next := b.newNext(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (b.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.height)
		)
		if startRow >= b.height {
			break
		}

		eg.Go(func() error {
			b.stepRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return next, err
	}

	return next, nil
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for row := range b.height {
		for col := range b.width {
			if b.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for row := range b.height {
		for col := range b.width {
			if b.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := NewBoard(b.width, b.height)
	for row := range b.cells {
		copy(c.cells[row], b.cells[row])
	}
	return c
}

// Hash returns an MD5 hash of the board state
func (b *Board) Hash() string {
	h := md5.New()
	for row := range b.height {
		for col := range b.width {
			if b.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize makes every cell independently alive with probability density
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for row := range b.height {
		for col := range b.width {
			b.cells[row][col] = rng.Float64() < density
		}
	}
}

// String renders the board as text, one line per row
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			if b.cells[row][col] {
				sb.WriteString(boardPosBlock)
			} else {
				sb.WriteString(boardPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
