package model

import (
	"context"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegrid/rules"
)

// Simulator owns a single square grid and advances it one generation at a time.
//
// A Simulator is not safe for concurrent use: Step, Run and DefineBoard must not
// be called from more than one goroutine at a time.
type Simulator struct {
	grid       *Grid
	pool       *GridPool
	rng        *rand.Rand
	generation int
}

// Option configures a Simulator at construction time
type Option func(*Simulator)

// WithSeed makes the initial random board reproducible
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
}

// WithRand uses rng for every random board the simulator produces
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithPool shares a scratch grid pool between simulators
func WithPool(pool *GridPool) Option {
	return func(s *Simulator) {
		if pool != nil {
			s.pool = pool
		}
	}
}

// New creates a simulator with a size x size grid where every cell is
// independently alive or dead with equal probability.
func New(size int, opts ...Option) (*Simulator, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	s := &Simulator{grid: NewGrid(size)}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.pool == nil {
		s.pool = NewGridPool()
	}

	s.grid.Randomize(s.rng)
	return s, nil
}

// Size returns the current grid dimension
func (s *Simulator) Size() int {
	return s.grid.Size()
}

// Generation returns the number of steps taken since the board was last defined
func (s *Simulator) Generation() int {
	return s.generation
}

// Population returns the number of live cells
func (s *Simulator) Population() int {
	return s.grid.CountLivingCells()
}

// Grid exposes the live grid for read-only inspection such as hashing
func (s *Simulator) Grid() *Grid {
	return s.grid
}

// Rand returns the random source used for boards built by this simulator
func (s *Simulator) Rand() *rand.Rand {
	return s.rng
}

// Randomize refills the current grid with a uniform random board
func (s *Simulator) Randomize() {
	s.grid.Randomize(s.rng)
	s.generation = 0
}

// DefineBoard replaces the grid with a copy of candidate.
//
// The candidate must be a non-empty rectangular matrix of 0/1 values with as many
// rows as columns. On failure a *ValidationError is returned and the current grid
// is left untouched.
func (s *Simulator) DefineBoard(candidate [][]int) error {
	if len(candidate) == 0 {
		return ErrNotNumeric
	}

	cols := len(candidate[0])
	for _, row := range candidate {
		if len(row) != cols {
			return ErrNotNumeric
		}
	}
	if len(candidate) != cols {
		return ErrNotSquare
	}

	for _, row := range candidate {
		for _, v := range row {
			if v != int(rules.Dead) && v != int(rules.Alive) {
				return ErrNotNumeric
			}
		}
	}

	next := NewGrid(len(candidate))
	for y, row := range candidate {
		for x, v := range row {
			next.cells[y][x] = uint8(v)
		}
	}

	s.grid = next
	s.generation = 0
	return nil
}

// Step advances the grid by exactly one generation.
// Every cell is computed from a frozen copy of the current generation.
func (s *Simulator) Step() {
	snapshot := s.pool.Get(s.grid.size)
	snapshot.CopyFrom(s.grid)

	for y := range snapshot.size {
		for x := range snapshot.size {
			s.grid.cells[y][x] = rules.Next(snapshot.cells[y][x], snapshot.CountNeighbors(x, y))
		}
	}

	s.pool.Put(snapshot)
	s.generation++
}

// Run executes Step steps times. When capture is true it returns an independent
// copy of the grid taken after each step, in order; otherwise it returns nil.
func (s *Simulator) Run(steps int, capture bool) []Board {
	var history []Board
	if capture && steps > 0 {
		history = make([]Board, 0, steps)
	}

	for range max(steps, 0) {
		s.Step()
		if capture {
			history = append(history, s.grid.Board())
		}
	}
	return history
}

// Stream executes Step steps times and hands a snapshot of every new generation
// to fn. It stops at the first error returned by fn or when ctx is done.
func (s *Simulator) Stream(ctx context.Context, steps int, fn func(gen int, b Board) error) error {
	for range max(steps, 0) {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "[Stream] stopped at generation %d", s.generation)
		}

		s.Step()
		if err := fn(s.generation, s.grid.Board()); err != nil {
			return errors.Wrapf(err, "[Stream] generation %d", s.generation)
		}
	}
	return nil
}

// View returns a read-only snapshot of the current grid
func (s *Simulator) View() Board {
	return s.grid.Board()
}
