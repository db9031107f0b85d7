package model

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

var (
	glider = [][]int{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
	blinker = [][]int{
		{1, 1, 1},
	}
	block = [][]int{
		{1, 1},
		{1, 1},
	}
)

type patternBuilder func(size int, density float64, rng *rand.Rand) [][]int

var patterns = map[string]patternBuilder{
	"random": func(size int, _ float64, rng *rand.Rand) [][]int {
		board := emptyBoard(size)
		for y := range board {
			for x := range board[y] {
				board[y][x] = rng.IntN(2)
			}
		}
		return board
	},
	"glider": func(size int, _ float64, _ *rand.Rand) [][]int {
		board := emptyBoard(size)
		stamp(board, glider, 1, 1)
		return board
	},
	"blinker": func(size int, _ float64, _ *rand.Rand) [][]int {
		board := emptyBoard(size)
		stamp(board, blinker, size/2-1, size/2)
		return board
	},
	"block": func(size int, _ float64, _ *rand.Rand) [][]int {
		board := emptyBoard(size)
		stamp(board, block, size/2-1, size/2-1)
		return board
	},
	"interesting": interestingPatterns,
}

// Patterns lists the names accepted by Pattern
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern builds a size x size candidate board for Simulator.DefineBoard.
// density only affects the random life sprinkled by the "interesting" pattern.
func Pattern(name string, size int, density float64, rng *rand.Rand) ([][]int, error) {
	build, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[Pattern] unknown pattern %q (available: %v)", name, Patterns())
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return build(size, density, rng), nil
}

// interestingPatterns lays out gliders and blinkers, then sprinkles random life
func interestingPatterns(size int, density float64, rng *rand.Rand) [][]int {
	board := emptyBoard(size)

	if size >= 10 {
		stamp(board, glider, 5, 5)
		if size >= 20 {
			stamp(board, glider, size-8, 5)
		}

		stamp(board, blinker, size/4, size/4)
		if size >= 30 {
			stamp(board, blinker, 3*size/4, 3*size/4)
		}
	}

	for y := range board {
		for x := range board[y] {
			if rng.Float64() < density {
				board[y][x] = 1
			}
		}
	}
	return board
}

func emptyBoard(size int) [][]int {
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}
	return board
}

// stamp copies pattern onto board with its top-left corner at (startX, startY),
// dropping cells that fall off the board
func stamp(board, pattern [][]int, startX, startY int) {
	for y, row := range pattern {
		for x, cell := range row {
			by, bx := startY+y, startX+x
			if by >= 0 && by < len(board) && bx >= 0 && bx < len(board[by]) {
				board[by][bx] = cell
			}
		}
	}
}
