package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/sheikhrachel/lifegrid/rules"
)

// Board is a size x size value snapshot of a grid, indexed [row][col].
type Board [][]uint8

// Size returns the dimension of the board
func (b Board) Size() int {
	return len(b)
}

// Population returns the number of live cells on the board
func (b Board) Population() (count int) {
	for _, row := range b {
		for _, c := range row {
			count += int(c)
		}
	}
	return
}

// Grid is a square matrix of binary cells with a zero-padded boundary
type Grid struct {
	size  int
	cells [][]uint8
}

// NewGrid creates a new all-dead grid with the specified dimension
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Reset(size)
	return g
}

// Size returns the dimension of the grid
func (g *Grid) Size() int {
	return g.size
}

// Reset resizes the grid to size x size and kills every cell
func (g *Grid) Reset(size int) {
	if size < 0 {
		size = 0
	}
	g.size = size

	// Resize cells if needed
	if len(g.cells) != size {
		g.cells = make([][]uint8, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]uint8, size)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.size {
		clear(g.cells[y])
	}
}

// Set sets a cell to alive (true) or dead (false); positions off the grid are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.size && y >= 0 && y < g.size {
		if alive {
			g.cells[y][x] = rules.Alive
		} else {
			g.cells[y][x] = rules.Dead
		}
	}
}

// Get returns the state of a cell; positions off the grid are always dead
func (g *Grid) Get(x, y int) uint8 {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return rules.Dead
	}
	return g.cells[y][x]
}

// CountNeighbors counts the living cells among the 8 neighbors of (x, y).
// Neighbors that fall outside the grid count as dead.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for _, off := range rules.NeighborOffsets {
		count += int(g.Get(x+off[0], y+off[1]))
	}
	return count
}

// CopyFrom makes g a cell-for-cell copy of src
func (g *Grid) CopyFrom(src *Grid) {
	g.Reset(src.size)
	for y := range src.size {
		copy(g.cells[y], src.cells[y])
	}
}

// Board returns an independent copy of the grid cells
func (g *Grid) Board() Board {
	b := make(Board, g.size)
	for y := range g.size {
		b[y] = make([]uint8, g.size)
		copy(b[y], g.cells[y])
	}
	return b
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.size {
		for x := range g.size {
			count += int(g.cells[y][x])
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.size {
		h.Write(g.cells[y])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize sets every cell independently to dead or alive with equal probability
func (g *Grid) Randomize(rng *rand.Rand) {
	for y := range g.size {
		for x := range g.size {
			g.cells[y][x] = uint8(rng.IntN(2))
		}
	}
}
