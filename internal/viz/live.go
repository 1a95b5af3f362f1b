package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/springmesh/internal/mesh"
	"github.com/san-kum/springmesh/internal/scenario"
)

const (
	canvasWidth     = 60
	canvasHeight    = 20
	historyCapacity = 200
	stepsPerFrame   = 4
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates a scenario in the terminal, stepping the system at a
// fixed frame rate and drawing the mesh on a braille canvas.
type Model struct {
	sc      scenario.Scenario
	sys     *mesh.System
	canvas  *Canvas
	view    Viewport
	step    int
	t       float64
	running bool
	done    bool
	stepErr error
	energy  []float64
}

func NewModel(sc scenario.Scenario) (Model, error) {
	sys, err := sc.System()
	if err != nil {
		return Model{}, err
	}
	return Model{
		sc:      sc,
		sys:     sys,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		view:    FitSystem(sys, 0.3),
		running: true,
		energy:  make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			sys, err := m.sc.System()
			if err == nil {
				m.sys = sys
				m.step = 0
				m.t = 0
				m.done = false
				m.stepErr = nil
				m.energy = m.energy[:0]
			}
		}
	case TickMsg:
		if m.running && !m.done {
			for i := 0; i < stepsPerFrame && m.step < m.sc.Steps; i++ {
				if err := m.sys.Step(m.sc.Dt); err != nil {
					m.stepErr = err
				}
				m.step++
				m.t += m.sc.Dt
			}
			if m.step >= m.sc.Steps {
				m.done = true
			}
			m.energy = append(m.energy, m.sys.Energy())
			if len(m.energy) > historyCapacity {
				m.energy = m.energy[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	m.canvas.DrawSystem(m.sys, m.view)

	left := canvasStyle.Render(m.canvas.String())

	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.done {
		status = "done"
	}

	stats := headerStyle.Render(m.sc.Name) + "\n"
	stats += labelStyle.Render("status") + valueStyle.Render(status) + "\n"
	stats += labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n"
	stats += labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%d / %d", m.step, m.sc.Steps)) + "\n"
	stats += labelStyle.Render("energy") + valueStyle.Render(fmt.Sprintf("%.4f", m.sys.Energy())) + "\n"
	p := m.sys.Momentum()
	stats += labelStyle.Render("momentum") + valueStyle.Render(fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)) + "\n"
	for _, i := range m.sc.Track {
		snap := m.sys.Snapshot(i)
		stats += labelStyle.Render(fmt.Sprintf("mass %d", i)) +
			valueStyle.Render(fmt.Sprintf("(%.3f, %.3f)", snap.Position.X, snap.Position.Y)) + "\n"
	}
	if m.stepErr != nil {
		stats += errorStyle.Render(m.stepErr.Error()) + "\n"
	}

	if len(m.energy) > 2 {
		graph := asciigraph.Plot(m.energy,
			asciigraph.Height(6),
			asciigraph.Width(34),
			asciigraph.Caption("energy"),
		)
		stats += graphStyle.Render(graph)
	}

	right := statsStyle.Render(stats)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return body + "\n" + helpStyle.Render("space pause · r reset · q quit")
}
