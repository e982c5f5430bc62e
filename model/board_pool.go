package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles boards between generations
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() any {
				return &Board{}
			},
		},
	}
}

// Get retrieves an all-dead board from the pool, resetting its dimensions
func (p *BoardPool) Get(width, height int) *Board {
	b := p.pool.Get().(*Board)
	b.Reset(width, height)
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	b.Clear()
	p.pool.Put(b)
}
