package model

import (
	"math/rand"
	"testing"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(7, 4)
	if b.GetWidth() != 7 || b.GetHeight() != 4 {
		t.Fatalf("dimensions = %dx%d, want 7x4", b.GetWidth(), b.GetHeight())
	}
	if n := b.CountLivingCells(); n != 0 {
		t.Errorf("new board has %d living cells, want 0", n)
	}
}

func TestNewRandomBoardDensity(t *testing.T) {
	b := NewRandomBoard(50, 50, 0.25, newTestRNG())

	// 2500 cells at p=0.25: mean 625, stddev ~21.7
	if n := b.CountLivingCells(); n < 500 || n > 750 {
		t.Errorf("random board has %d living cells, want about 625", n)
	}
}

func TestNewRandomBoardSeeded(t *testing.T) {
	a := NewRandomBoard(20, 20, 0.25, rand.New(rand.NewSource(7)))
	b := NewRandomBoard(20, 20, 0.25, rand.New(rand.NewSource(7)))
	if !a.Equal(b) {
		t.Error("boards from identically seeded sources differ")
	}
}

func TestGetWrapsAroundEdges(t *testing.T) {
	const width, height = 6, 5
	b := NewRandomBoard(width, height, 0.5, newTestRNG())

	tests := []struct {
		name             string
		row, col         int
		wantRow, wantCol int
	}{
		{"top edge", -1, 2, height - 1, 2},
		{"bottom edge", height, 2, 0, 2},
		{"left edge", 3, -1, 3, width - 1},
		{"right edge", 3, width, 3, 0},
		{"top-left corner", -1, -1, height - 1, width - 1},
		{"top-right corner", -1, width, height - 1, 0},
		{"bottom-left corner", height, -1, 0, width - 1},
		{"bottom-right corner", height, width, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := b.Get(tt.row, tt.col), b.Get(tt.wantRow, tt.wantCol); got != want {
				t.Errorf("Get(%d, %d) = %v, want Get(%d, %d) = %v",
					tt.row, tt.col, got, tt.wantRow, tt.wantCol, want)
			}
		})
	}
}

func TestGetWrapsRowMinusOne(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(4, 0, true)
	if !b.Get(-1, 0) {
		t.Error("Get(-1, 0) should read the last row")
	}
}

func TestCountNeighborsRange(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		b := NewRandomBoard(13, 11, 0.5, rand.New(rand.NewSource(seed)))
		for row := range b.GetHeight() {
			for col := range b.GetWidth() {
				if n := b.CountNeighbors(row, col); n < 0 || n > 8 {
					t.Fatalf("CountNeighbors(%d, %d) = %d, out of range", row, col, n)
				}
			}
		}
	}
}

func TestCountNeighborsAcrossCorners(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(4, 4, true)
	b.Set(0, 4, true)
	b.Set(4, 0, true)

	if got := b.CountNeighbors(0, 0); got != 3 {
		t.Errorf("CountNeighbors(0, 0) = %d, want 3", got)
	}
}

func TestCountNeighborsFullBoard(t *testing.T) {
	b := NewRandomBoard(4, 4, 1, newTestRNG())
	if got := b.CountNeighbors(2, 1); got != 8 {
		t.Errorf("CountNeighbors on a full board = %d, want 8", got)
	}
}

func TestCountNeighborsExcludesSelf(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(2, 2, true)
	if got := b.CountNeighbors(2, 2); got != 0 {
		t.Errorf("CountNeighbors(2, 2) = %d, want 0", got)
	}
}

func TestNextGenerationBirth(t *testing.T) {
	tests := []struct {
		name      string
		neighbors [][2]int
		want      bool
	}{
		{"two neighbors", [][2]int{{0, 0}, {0, 1}}, false},
		{"three neighbors", [][2]int{{0, 0}, {0, 1}, {0, 2}}, true},
		{"four neighbors", [][2]int{{0, 0}, {0, 1}, {0, 2}, {2, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(8, 8)
			for _, n := range tt.neighbors {
				b.Set(n[0], n[1], true)
			}
			if got := b.NextGeneration(nil).Get(1, 1); got != tt.want {
				t.Errorf("dead cell with %d neighbors: alive = %v, want %v\n%s", len(tt.neighbors), got, tt.want, b)
			}
		})
	}
}

func TestNextGenerationSurvival(t *testing.T) {
	around := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

	for count := 0; count <= 8; count++ {
		b := NewBoard(8, 8)
		b.Set(1, 1, true)
		for _, n := range around[:count] {
			b.Set(n[0], n[1], true)
		}

		want := count == 2 || count == 3
		if got := b.NextGeneration(nil).Get(1, 1); got != want {
			t.Errorf("live cell with %d neighbors: alive = %v, want %v\n%s", count, got, want, b)
		}
	}
}

func TestNextGenerationDeterministic(t *testing.T) {
	b := NewRandomBoard(30, 20, 0.25, newTestRNG())
	before := b.Clone()

	first := b.NextGeneration(nil)
	second := b.NextGeneration(nil)

	if !first.Equal(second) {
		t.Error("stepping the same board twice gave different results")
	}
	if !b.Equal(before) {
		t.Error("NextGeneration modified its input board")
	}
	if first == b {
		t.Error("NextGeneration must return a distinct board")
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	b := NewBoard(10, 10)
	for i := range 10 {
		b = b.NextGeneration(nil)
		if n := b.CountLivingCells(); n != 0 {
			t.Fatalf("generation %d has %d living cells", i+1, n)
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	const width, height = 7, 6
	for row := range height {
		for col := range width {
			b := NewBoard(width, height)
			b.Set(row, col, true)
			if n := b.NextGeneration(nil).CountLivingCells(); n != 0 {
				t.Errorf("isolated cell at (%d, %d) left %d living cells", row, col, n)
			}
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	b := NewBoard(12, 12)
	b.Stamp(Glider, 1, 1)

	for range 4 {
		b = b.NextGeneration(nil)
	}

	want := NewBoard(12, 12)
	want.Stamp(Glider, 2, 2)
	if !b.Equal(want) {
		t.Errorf("glider after 4 steps:\n%s\nwant:\n%s", b, want)
	}
}

func TestGliderWrapsAround(t *testing.T) {
	const size = 8
	b := NewBoard(size, size)
	b.Stamp(Glider, 0, 0)
	start := b.Clone()

	// A glider crosses the whole torus diagonally in 4*size generations
	for range 4 * size {
		b = b.NextGeneration(nil)
	}

	if !b.Equal(start) {
		t.Errorf("glider did not return to its start:\n%s", b)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	b := NewBoard(5, 5)
	b.Stamp(Blinker, 2, 1)
	start := b.Clone()

	mid := b.NextGeneration(nil)
	vertical := NewBoard(5, 5)
	vertical.Set(1, 2, true)
	vertical.Set(2, 2, true)
	vertical.Set(3, 2, true)
	if !mid.Equal(vertical) {
		t.Errorf("blinker after 1 step:\n%s", mid)
	}

	if end := mid.NextGeneration(nil); !end.Equal(start) {
		t.Errorf("blinker after 2 steps:\n%s", end)
	}
}

func TestNextGenerationParallelMatchesSequential(t *testing.T) {
	sizes := []struct{ width, height int }{
		{1, 1},
		{3, 2},
		{50, 50},
		{17, 63},
	}

	for _, s := range sizes {
		b := NewRandomBoard(s.width, s.height, 0.3, newTestRNG())
		for gen := range 5 {
			want := b.NextGeneration(nil)
			got, err := b.NextGenerationParallel(nil)
			if err != nil {
				t.Fatalf("NextGenerationParallel: %v", err)
			}
			if !got.Equal(want) {
				t.Fatalf("%dx%d generation %d: parallel result differs from sequential", s.width, s.height, gen)
			}
			b = want
		}
	}
}

func TestNextGenerationWithPool(t *testing.T) {
	pool := NewBoardPool()
	b := NewRandomBoard(20, 20, 0.25, newTestRNG())

	for range 10 {
		want := b.NextGeneration(nil)
		got := b.NextGeneration(pool)
		if !got.Equal(want) {
			t.Fatal("pooled step differs from freshly allocated step")
		}
		BoardToPool(b, pool)
		b = got
	}
}

func TestHash(t *testing.T) {
	a := NewBoard(4, 4)
	b := NewBoard(4, 4)
	if a.Hash() != b.Hash() {
		t.Error("equal boards hash differently")
	}
	b.Set(1, 2, true)
	if a.Hash() == b.Hash() {
		t.Error("different boards hash the same")
	}
}

func TestString(t *testing.T) {
	b := NewBoard(2, 2)
	b.Set(0, 1, true)
	want := boardPosEmpty + boardPosBlock + "\n" + boardPosEmpty + boardPosEmpty + "\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
