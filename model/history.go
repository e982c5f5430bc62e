package model

const (
	historySize   = 5
	maxCycleCheck = 3
)

// History remembers hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds the board state to the history, keeping only the most recent entries
func (h *History) Record(b *Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether b repeats one of the last few recorded states,
// i.e. the board is static or cycling with period at most 3
func (h *History) IsStagnant(b *Board) bool {
	if len(h.hashes) == 0 {
		return false
	}

	current := b.Hash()
	for i := 1; i <= maxCycleCheck && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
