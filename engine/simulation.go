// Package engine advances the board on a fixed interval.
//
// The Simulation is the single owner of the current board. Tick replaces it
// wholesale: the next generation is computed from the old board into a
// separate one, and only then swapped in.
package engine

import (
	"math/rand"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Status describes how the board has been evolving recently
type Status string

const (
	StatusActive   Status = "active"
	StatusStagnant Status = "stagnant"
	StatusExtinct  Status = "extinct"
)

// Simulation owns the board and advances it once per interval
type Simulation struct {
	board      *model.Board
	pool       *model.BoardPool
	clock      Clock
	interval   time.Duration
	parallel   bool
	generation int
	status     Status
	history    model.History
	stats      *utils.Stats
	log        *utils.Logger
}

// Option configures a Simulation
type Option func(*Simulation)

// WithClock replaces the wall clock, mainly for tests
func WithClock(c Clock) Option {
	return func(s *Simulation) { s.clock = c }
}

// WithPool recycles replaced boards through pool
func WithPool(pool *model.BoardPool) Option {
	return func(s *Simulation) { s.pool = pool }
}

// WithParallel computes each generation with one worker per CPU
func WithParallel(parallel bool) Option {
	return func(s *Simulation) { s.parallel = parallel }
}

// WithLogger sets the logger
func WithLogger(l *utils.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// NewSimulation starts a simulation from board, advancing every interval
func NewSimulation(board *model.Board, interval time.Duration, opts ...Option) *Simulation {
	s := &Simulation{
		board:    board,
		interval: interval,
		status:   StatusActive,
		stats:    utils.NewStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewWallClock()
	}
	if s.log == nil {
		s.log = utils.NewLogger()
	}
	s.history.Record(board)
	return s
}

// NewSimulationFromConfig builds a random board and a simulation as described by config
func NewSimulationFromConfig(config utils.Config, rng *rand.Rand, opts ...Option) *Simulation {
	board := model.NewRandomBoard(config.BoardWidth, config.BoardHeight, config.LiveProbability, rng)

	base := []Option{WithParallel(config.UseParallel)}
	if config.UseMemoryPool {
		base = append(base, WithPool(model.NewBoardPool()))
	}
	return NewSimulation(board, config.Interval(), append(base, opts...)...)
}

// Board returns the current generation. It must not be modified by the caller.
func (s *Simulation) Board() *model.Board {
	return s.board
}

// Generation returns the number of updates applied so far
func (s *Simulation) Generation() int {
	return s.generation
}

// Status returns the most recently observed status
func (s *Simulation) Status() Status {
	return s.status
}

// Stats returns the running statistics
func (s *Simulation) Stats() *utils.Stats {
	return s.stats
}

// Tick advances the board if at least one interval has elapsed since the last
// advance, and reports whether it did
func (s *Simulation) Tick() bool {
	if s.clock.Elapsed() < s.interval {
		return false
	}
	s.Step()
	s.clock.Restart()
	return true
}

// Step unconditionally replaces the board with its next generation
func (s *Simulation) Step() {
	start := time.Now()

	next := s.nextGeneration()
	previous := s.board
	s.board = next
	model.BoardToPool(previous, s.pool)

	s.generation++
	living := s.board.CountLivingCells()
	s.stats.Update(s.generation, living, time.Since(start))
	s.updateStatus(living)
	s.history.Record(s.board)

	s.log.Info("generation %d: %d living cells", s.generation, living)
}

func (s *Simulation) nextGeneration() *model.Board {
	if !s.parallel {
		return s.board.NextGeneration(s.pool)
	}

	next, err := s.board.NextGenerationParallel(s.pool)
	if err != nil {
		s.log.Error("parallel step failed, falling back to sequential: %v", err)
		model.BoardToPool(next, s.pool)
		return s.board.NextGeneration(s.pool)
	}
	return next
}

// updateStatus logs once each time the status changes
func (s *Simulation) updateStatus(living int) {
	status := StatusActive
	switch {
	case living == 0:
		status = StatusExtinct
	case s.history.IsStagnant(s.board):
		status = StatusStagnant
	}

	if status != s.status {
		s.log.Info("board is now %s at generation %d", status, s.generation)
		s.status = status
	}
}

// Close logs the final statistics
func (s *Simulation) Close() {
	s.log.Info("final stats: %d generations in %.1f seconds, %.1f avg population",
		s.generation, s.stats.Runtime().Seconds(), s.stats.AveragePopulation)
}
