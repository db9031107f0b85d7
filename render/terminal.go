package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sheikhrachel/lifegrid/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\x1b[H\x1b[2J"
)

// TerminalRenderer draws board snapshots as colored blocks
type TerminalRenderer struct {
	Out io.Writer

	alive lipgloss.Style
	dead  lipgloss.Style
}

// NewTerminalRenderer creates a renderer writing to out with the given palette
func NewTerminalRenderer(out io.Writer, p Palette) *TerminalRenderer {
	deadHex, aliveHex := p.Hex()
	return &TerminalRenderer{
		Out:   out,
		alive: lipgloss.NewStyle().Foreground(lipgloss.Color(aliveHex)),
		dead:  lipgloss.NewStyle().Background(lipgloss.Color(deadHex)),
	}
}

// Render returns the board as one line of cells per row
func (r *TerminalRenderer) Render(b model.Board) string {
	var sb strings.Builder
	for _, row := range b {
		for _, c := range row {
			if c != 0 {
				sb.WriteString(r.alive.Render(gridPosBlock))
			} else {
				sb.WriteString(r.dead.Render(gridPosEmpty))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display renders the board to the output
func (r *TerminalRenderer) Display(b model.Board) {
	fmt.Fprint(r.Out, r.Render(b))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, clearScreen)
}
