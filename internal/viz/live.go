package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/approach"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/deform"
	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// ProfileFactory rebuilds the approach profile after the object has
// been reconfigured from the keyboard.
type ProfileFactory func(obj astro.Object) approach.Profile

// Model owns the live view: physics stepping, the stretch window, and
// the render state.
type Model struct {
	object      astro.Object
	makeProfile ProfileFactory
	profile     approach.Profile
	engine      *deform.Engine

	t, dt   float64
	fps     int
	stopAt  float64 // pending Stop time, -1 while no window is armed
	backlog float64 // sim time owed to the wall clock

	canvas *Canvas
	scene  *Scene
	spanKm float64

	distanceKm   float64
	sample       astro.Sample
	command      deform.Command
	tidalHistory []float64

	running  bool
	showHelp bool
	err      error
}

// NewModel initializes the live view for one object and approach.
func NewModel(obj astro.Object, makeProfile ProfileFactory, spanKm, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		object:      obj,
		makeProfile: makeProfile,
		profile:     makeProfile(obj),
		engine:      deform.NewEngine(),
		dt:          dt,
		fps:         fps,
		stopAt:      -1,
		canvas:      NewCanvas(width, height),
		scene:       NewScene(obj, spanKm),
		spanKm:      spanKm,
		distanceKm:  spanKm,
		command:     deform.Identity(),
		running:     true,
	}
	m.sample, m.err = astro.NewSample(obj, spanKm)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			m.engine.Trigger()
			m.stopAt = m.t + sim.DefaultWindowSeconds
		case "r":
			m.reset()
		case "k":
			kind := astro.BlackHole
			if m.object.Kind == astro.BlackHole {
				kind = astro.NeutronStar
			}
			m.reconfigure(kind, astro.ClampMass(kind, m.object.MassSolar))
		case "up":
			kind := m.object.Kind
			m.reconfigure(kind, astro.ClampMass(kind, m.object.MassSolar+massStep(kind)))
		case "down":
			kind := m.object.Kind
			m.reconfigure(kind, astro.ClampMass(kind, m.object.MassSolar-massStep(kind)))
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			// Run enough fixed steps to keep sim time tracking the
			// wall clock, bounded so a stalled terminal cannot
			// trigger a catch-up spiral.
			m.backlog += 1.0 / float64(m.fps)
			if limit := math.Max(0.25, m.dt); m.backlog > limit {
				m.backlog = limit
			}
			for m.backlog >= m.dt {
				m.step()
				m.backlog -= m.dt
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// massStep is the keyboard increment, coarse for holes and fine for
// the narrow neutron star band.
func massStep(kind astro.Kind) float64 {
	if kind == astro.NeutronStar {
		return 0.1
	}
	return 1.0
}

// step advances physics by one display tick.
func (m *Model) step() {
	if m.err != nil {
		return
	}
	if m.stopAt >= 0 && m.t >= m.stopAt {
		m.engine.Stop()
		m.stopAt = -1
	}

	d := m.profile.Advance(m.dt)
	sample, err := astro.NewSample(m.object, d)
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.command = m.engine.Advance(m.dt, sample)
	m.t += m.dt
	m.distanceKm = d
	m.sample = sample

	m.tidalHistory = append(m.tidalHistory, sample.TidalForce)
	if len(m.tidalHistory) > historyCapacity {
		m.tidalHistory = m.tidalHistory[1:]
	}
}

// reset rewinds the run without touching object or theme.
func (m *Model) reset() {
	m.engine.Reset()
	m.profile = m.makeProfile(m.object)
	m.t = 0
	m.stopAt = -1
	m.backlog = 0
	m.tidalHistory = m.tidalHistory[:0]
	m.distanceKm = m.spanKm
	m.command = deform.Identity()
	m.sample, m.err = astro.NewSample(m.object, m.spanKm)
	m.running = true
}

// reconfigure swaps in a new object and restarts the approach.
func (m *Model) reconfigure(kind astro.Kind, massSolar float64) {
	obj, err := astro.Properties(kind, massSolar)
	if err != nil {
		m.err = err
		return
	}
	m.object = obj
	m.scene = NewScene(obj, m.spanKm)
	m.reset()
}

func (m *Model) draw() {
	m.scene.Render(m.canvas, m.distanceKm, m.command)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	theme := CurrentTheme
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.object.Color)).Bold(true).MarginBottom(1)

	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.object.Name)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.tidalHistory) > 1 {
		chart := asciigraph.Plot(m.tidalHistory, asciigraph.Height(4), asciigraph.Width(34), asciigraph.Caption("tidal force (N)"))
		s.WriteString(graphStyle.Foreground(theme.Secondary).Render(chart) + "\n\n")
	}

	s.WriteString(statLine("Time", fmt.Sprintf("%.2fs", m.t)))
	s.WriteString(statLine("Mass", fmt.Sprintf("%.1f %s", m.object.MassSolar, m.object.MassUnit)))
	s.WriteString(statLine("Radius", fmt.Sprintf("%.2f km", m.object.RadiusKm)))
	s.WriteString(statLine("Distance", fmt.Sprintf("%.1f km", m.distanceKm)))
	if sp, ok := m.profile.(approach.SpeedReporter); ok {
		s.WriteString(statLine("Speed", fmt.Sprintf("%.1f km/s", sp.SpeedKmS())))
	}
	s.WriteString(statLine("Gravity", fmtSci(m.sample.SurfaceGravity, "m/s²")))
	s.WriteString(statLine("Tidal", fmtSci(m.sample.TidalForce, "N")))
	s.WriteString(statLine("Breakup", fmtSci(m.sample.BreakupDistanceKm, "km")))
	s.WriteString(statLine("Stretch", stretchBar(m.engine.Stretch())))
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Danger)
		s.WriteString("\n" + errStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("\n──────────────────────\nSP:Pause S:Stretch R:Reset\nK:Object ↑↓:Mass T:Theme\nQ:Quit ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  S        - Start stretch window     ║
║  R        - Restart the approach     ║
║  K        - Switch object type       ║
║  Up/Down  - Adjust mass (restarts)   ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// status summarizes run state, window countdown, and contact.
func (m Model) status() string {
	parts := make([]string, 0, 3)
	if m.running {
		parts = append(parts, "RUNNING")
	} else {
		parts = append(parts, "PAUSED")
	}
	if m.engine.Active() {
		if m.stopAt >= 0 {
			parts = append(parts, fmt.Sprintf("STRETCHING %.1fs", m.stopAt-m.t))
		} else {
			parts = append(parts, "STRETCHING")
		}
	}
	if m.profile.Done() {
		if m.object.Kind == astro.BlackHole {
			parts = append(parts, "PAST THE HORIZON")
		} else {
			parts = append(parts, "SURFACE CONTACT")
		}
	}
	return strings.Join(parts, "  ")
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// fmtSci renders large magnitudes compactly, with the infinity glyph
// for the zero-radius limit.
func fmtSci(v float64, unit string) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.3e %s", v, unit)
}

func stretchBar(s float64) string {
	const barWidth = 10
	filled := int(s * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return fmt.Sprintf("[%s%s] %.2f", strings.Repeat("=", filled), strings.Repeat("-", barWidth-filled), s)
}
