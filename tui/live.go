package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sheikhrachel/lifegrid/model"
	"github.com/sheikhrachel/lifegrid/render"
)

const (
	minInterval = 10 * time.Millisecond
	maxInterval = 2 * time.Second
)

var (
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// TickMsg advances the simulation when the player is running
type TickMsg time.Time

// Model is an interactive player for a single simulator
type Model struct {
	sim      *model.Simulator
	renderer *render.TerminalRenderer
	tracker  model.StagnationTracker
	interval time.Duration
	running  bool
	stagnant bool
}

// NewModel creates a player stepping sim every interval
func NewModel(sim *model.Simulator, palette render.Palette, interval time.Duration) Model {
	return Model{
		sim:      sim,
		renderer: render.NewTerminalRenderer(nil, palette),
		interval: min(max(interval, minInterval), maxInterval),
		running:  true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles key presses and ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.step()
		case "r":
			m.sim.Randomize()
			m.tracker.Reset()
			m.stagnant = false
		case "+", "=":
			m.interval = max(m.interval/2, minInterval)
		case "-", "_":
			m.interval = min(m.interval*2, maxInterval)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.tracker.Observe(m.sim.Grid())
	m.sim.Step()
	m.stagnant = m.tracker.IsStagnant(m.sim.Grid())
}

// View draws the board next to a status panel
func (m Model) View() string {
	status := valueStyle.Render("running")
	if !m.running {
		status = pausedStyle.Render("paused")
	}
	stagnant := "no"
	if m.stagnant {
		stagnant = "yes"
	}

	rows := []string{
		headerStyle.Render("game of life"),
		labelStyle.Render("generation") + valueStyle.Render(fmt.Sprint(m.sim.Generation())),
		labelStyle.Render("population") + valueStyle.Render(fmt.Sprint(m.sim.Population())),
		labelStyle.Render("size") + valueStyle.Render(fmt.Sprintf("%dx%d", m.sim.Size(), m.sim.Size())),
		labelStyle.Render("interval") + valueStyle.Render(m.interval.String()),
		labelStyle.Render("stagnant") + valueStyle.Render(stagnant),
		labelStyle.Render("status") + status,
		helpStyle.Render("space pause · n step · r reseed\n+/- speed · q quit"),
	}

	board := strings.TrimRight(m.renderer.Render(m.sim.View()), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, board, statsStyle.Render(strings.Join(rows, "\n")))
}

// Run starts the interactive player and blocks until it exits
func Run(sim *model.Simulator, palette render.Palette, interval time.Duration) error {
	_, err := tea.NewProgram(NewModel(sim, palette, interval), tea.WithAltScreen()).Run()
	return err
}
