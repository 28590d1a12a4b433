package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/netbg/internal/background"
	"github.com/san-kum/netbg/internal/config"
	"github.com/san-kum/netbg/internal/event"
	"github.com/san-kum/netbg/internal/render"
	"github.com/san-kum/netbg/internal/schedule"
)

const (
	statusLines     = 1
	statsLines      = 8
	historyCapacity = 240
)

type TickMsg time.Time

// Model hosts the particle network in a terminal. Bubble Tea delivers
// every message on one goroutine, so the Frame scheduler and the bus run
// in step with Update.
type Model struct {
	engine  *background.Engine
	bus     *event.Bus
	frame   *schedule.Frame
	canvas  *Canvas
	surface *Surface

	fps          int
	opacity      float64
	dark         bool
	width        int
	height       int
	showStats    bool
	linkHistory  []float64
	lastFrame    time.Time
	frameSeconds float64
	err          error
}

// NewModel wires an engine to a terminal surface. The engine attaches on
// the first window size message.
func NewModel(cfg *config.Config) Model {
	bus := event.NewBus()
	frame := schedule.NewFrame()
	canvas := NewCanvas(0, 0)
	opts := background.Options{
		Field:  cfg.FieldParams(),
		Render: cfg.RenderParams(),
		Scheme: cfg.Scheme(),
		Seed:   cfg.Seed,
	}
	return Model{
		engine:      background.New(bus, frame, opts),
		bus:         bus,
		frame:       frame,
		canvas:      canvas,
		surface:     NewSurface(canvas, cfg.CellScale),
		fps:         cfg.FPS,
		opacity:     cfg.LayerOpacity,
		dark:        cfg.Dark,
		linkHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.MouseMsg:
		m.pointer(msg)
	case tea.BlurMsg:
		m.bus.Publish(event.NewPointerLeave())
	case TickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			m.frameSeconds = now.Sub(m.lastFrame).Seconds()
		}
		m.lastFrame = now
		if m.frame.Fire() {
			m.linkHistory = append(m.linkHistory, float64(m.engine.Stats().Links))
			if len(m.linkHistory) > historyCapacity {
				m.linkHistory = m.linkHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.engine.Detach()
		return m, tea.Quit
	case "t":
		m.dark = !m.dark
		if m.engine.Attached() {
			m.err = m.engine.SetTheme(m.dark)
		}
	case "p":
		m.err = m.engine.SetScheme(render.NextScheme(m.engine.Scheme().Name))
	case "s":
		m.showStats = !m.showStats
		m.layout()
	}
	return m, nil
}

// layout sizes the canvas to the window minus the status area, then
// either attaches the engine or reports the new size to it.
func (m *Model) layout() {
	rows := m.height - statusLines
	if m.showStats {
		rows -= statsLines
	}
	m.canvas.Resize(m.width, max(rows, 0))

	if !m.engine.Attached() {
		m.err = m.engine.Attach(m.surface, m.dark)
		return
	}
	m.bus.Publish(event.NewResize(m.surface.Size()))
}

func (m *Model) pointer(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return
	}
	if msg.Y >= m.canvas.Height || msg.X >= m.canvas.Width || msg.X < 0 || msg.Y < 0 {
		m.bus.Publish(event.NewPointerLeave())
		return
	}
	m.bus.Publish(event.NewPointerMove(m.surface.CellCenter(msg.X, msg.Y)))
}

func (m Model) View() string {
	pal := m.engine.Palette()
	var s strings.Builder
	s.WriteString(Paint(m.canvas, pal.Background, m.opacity))

	if m.showStats {
		s.WriteString(m.statsView())
		s.WriteString("\n")
	}
	s.WriteString(m.statusLine())
	return s.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return ErrorStyle.Render(m.err.Error())
	}
	pal := m.engine.Palette()
	theme := "light"
	if m.engine.Dark() {
		theme = "dark"
	}
	st := m.engine.Stats()
	parts := []string{
		GradientText("netbg", pal.Link, pal.Pointer),
		MetricLabel.Render(m.engine.Scheme().Name + "/" + theme),
		MetricLabel.Render("particles ") + MetricValue.Render(fmt.Sprint(st.Particles)),
		MetricLabel.Render("links ") + MetricValue.Render(fmt.Sprint(st.Links)),
		MetricLabel.Render("pointer ") + MetricValue.Render(fmt.Sprint(st.PointerLinks)),
		KeyHint.Render("t:theme p:palette s:stats q:quit"),
	}
	return strings.Join(parts, Subtle.Render(" │ "))
}

func (m Model) statsView() string {
	if len(m.linkHistory) < 2 {
		return GlassPanel.Render(Subtle.Render("collecting frames..."))
	}
	width := max(min(m.width-20, 60), 10)
	chart := asciigraph.Plot(m.linkHistory, asciigraph.Height(statsLines-4), asciigraph.Width(width), asciigraph.Caption("links per frame"))
	fps := 0.0
	if m.frameSeconds > 0 {
		fps = 1 / m.frameSeconds
	}
	side := lipgloss.JoinVertical(lipgloss.Left,
		MetricLabel.Render("frame ")+MetricValue.Render(fmt.Sprint(m.engine.Frames())),
		MetricLabel.Render("fps   ")+MetricValue.Render(fmt.Sprintf("%.0f", fps)),
		MetricLabel.Render("trend ")+SparklineChart(m.linkHistory, 12),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, GlassPanel.Render(chart), " ", side)
}

// RunInteractive starts the terminal host and blocks until the user quits.
func RunInteractive(cfg *config.Config) error {
	m := NewModel(cfg)
	defer m.engine.Detach()
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus()).Run()
	return err
}
