package rules

// Cell states.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// NeighborOffsets lists the (dx, dy) offsets of the 8 cells surrounding a position.
var NeighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

/*
Next returns the state of a cell in the following generation.

A dead cell with exactly 3 live neighbors is born, a live cell with fewer than 2
or more than 3 live neighbors dies, and every other cell keeps its state.
*/
func Next(curr uint8, neighbors int) uint8 {
	if ApplyConwayRules(neighbors, curr == Alive) {
		return Alive
	}
	return Dead
}
