// Package tui is an interactive terminal viewer for beam analysis
// results: shear, moment and deflection curves, stepped through the
// method's load combinations.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nateranda/beampy/internal/asce"
	"github.com/nateranda/beampy/internal/beam"
	"github.com/nateranda/beampy/internal/diagram"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type mode int

const (
	modeShear mode = iota
	modeMoment
	modeDeflection
)

func (m mode) String() string {
	switch m {
	case modeMoment:
		return "moment"
	case modeDeflection:
		return "deflection"
	}
	return "shear"
}

type model struct {
	beam   *beam.Beam
	combos []asce.Combination

	mode     mode
	comboIdx int // -1 shows the unfactored service loads

	sm   *beam.ShearMomentResult
	defl *beam.DeflectionResult
	err  error

	width  int
	height int
}

func newModel(b *beam.Beam) model {
	m := model{
		beam:     b,
		combos:   asce.Combinations(b.Method),
		comboIdx: -1,
		width:    80,
		height:   24,
	}
	m.recompute()
	return m
}

// recompute refreshes the cached results for the current combination
// selection. Deflection always reflects the unfactored service loads.
func (m *model) recompute() {
	var err error
	if m.comboIdx < 0 {
		m.sm, err = m.beam.CalculateShearMoment()
	} else {
		m.sm, err = m.beam.CalculateCombination(m.combos[m.comboIdx])
	}
	if err != nil {
		m.err = err
		return
	}
	m.defl, m.err = m.beam.CalculateDeflection()
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "s":
		m.mode = modeShear
	case "m":
		m.mode = modeMoment
	case "d":
		m.mode = modeDeflection
	case "tab":
		m.mode = (m.mode + 1) % 3
	case "left", "h":
		if m.comboIdx > -1 {
			m.comboIdx--
			m.recompute()
		}
	case "right", "l":
		if m.comboIdx < len(m.combos)-1 {
			m.comboIdx++
			m.recompute()
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n   " + cyan.Render("beampy") + "  " +
		dim.Render(fmt.Sprintf("L=%g  EI=%g  %s", m.beam.Length, m.beam.EI, m.beam.Method)) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 40)) + "\n")

	if m.err != nil {
		b.WriteString("\n   " + red.Render("error: "+m.err.Error()) + "\n")
		b.WriteString("\n" + dim.Render("   q quit") + "\n")
		return b.String()
	}

	b.WriteString(m.viewSelector())
	b.WriteString(m.viewElevation())
	b.WriteString(m.viewPlot())
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m model) viewSelector() string {
	label := "service loads"
	if m.comboIdx >= 0 {
		c := m.combos[m.comboIdx]
		label = fmt.Sprintf("combination %s: %s", c.ID, c.Description)
	}
	note := ""
	if m.mode == modeDeflection && m.comboIdx >= 0 {
		note = yellow.Render("  (deflection shows service loads)")
	}
	return "\n   " + white.Render(m.mode.String()) + dim.Render("  ·  ") +
		cyan.Render(label) + note + "\n"
}

func (m model) viewElevation() string {
	data := diagram.BeamData{
		Length:       m.beam.Length,
		LeftSupport:  m.beam.LeftSupport,
		RightSupport: m.beam.RightSupport,
		Cantilever:   m.beam.Cantilever,
	}
	for _, l := range m.beam.Loads() {
		switch v := l.(type) {
		case beam.PointLoad:
			data.PointLoads = append(data.PointLoads, diagram.PointMarker{
				Position:  v.Dist,
				Magnitude: v.Mag,
				Moment:    v.IsMoment,
			})
		case beam.DistLoad:
			data.DistLoads = append(data.DistLoads, diagram.SpanMarker{
				Start: v.Start, End: v.End,
				StartMagnitude: v.StartMag, EndMagnitude: v.EndMag,
			})
		}
	}
	return dim.Render(diagram.DrawBeamElevation(data))
}

func (m model) viewPlot() string {
	w := m.width - 14
	if w < 40 {
		w = 40
	}
	h := m.height - 18
	if h < 8 {
		h = 8
	}

	var series []float64
	switch m.mode {
	case modeMoment:
		series = m.sm.Moment
	case modeDeflection:
		series = m.defl.Deflection
	default:
		series = m.sm.Shear
	}

	plot := diagram.PlotSeries(series, m.mode.String(), w, h)
	indented := "   " + strings.ReplaceAll(plot, "\n", "\n   ")
	return "\n" + indented + "\n"
}

func (m model) viewFooter() string {
	var stats string
	switch m.mode {
	case modeMoment:
		stats = fmt.Sprintf("max %.4g  min %.4g", m.sm.MaxMoment, m.sm.MinMoment)
	case modeDeflection:
		stats = fmt.Sprintf("max %.4g  min %.4g  rotation %.4g",
			m.defl.MaxDeflection, m.defl.MinDeflection, m.defl.InitialRotation)
	default:
		stats = fmt.Sprintf("max %.4g  min %.4g  reactions %.4g / %.4g",
			m.sm.MaxShear, m.sm.MinShear, m.sm.Reactions.Left, m.sm.Reactions.Right)
	}

	return "\n   " + white.Render(stats) + "\n\n" +
		dim.Render("   s/m/d view  ←→ combination  tab cycle  q quit") + "\n"
}

// Run opens the interactive viewer for an analyzable beam.
func Run(b *beam.Beam) error {
	p := tea.NewProgram(newModel(b), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
