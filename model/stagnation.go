package model

const historyDepth = 5

// StagnationTracker detects still lifes and short cycles from recent grid hashes
type StagnationTracker struct {
	history []string
}

// Observe adds the grid's current state to the history, keeping the last 5 states
func (t *StagnationTracker) Observe(g *Grid) {
	t.history = append(t.history, g.GetGridHash())
	if len(t.history) > historyDepth {
		t.history = t.history[1:]
	}
}

// IsStagnant checks whether the grid repeats one of the last 3 observed states
func (t *StagnationTracker) IsStagnant(g *Grid) bool {
	if len(t.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if t.history[len(t.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// Reset forgets every observed state
func (t *StagnationTracker) Reset() {
	t.history = nil
}
