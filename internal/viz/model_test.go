package viz

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/netbg/internal/background"
	"github.com/san-kum/netbg/internal/config"
	"github.com/san-kum/netbg/internal/field"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 5
	m := NewModel(cfg)
	t.Cleanup(m.engine.Detach)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestSurfaceScale(t *testing.T) {
	s := NewSurface(NewCanvas(100, 25), 4)
	w, h := s.Size()
	if w != 800 || h != 400 {
		t.Errorf("expected 800x400, got %.0fx%.0f", w, h)
	}
	if x, y := s.CellCenter(0, 0); x != 4 || y != 8 {
		t.Errorf("unexpected cell center (%f, %f)", x, y)
	}
	if _, err := NewSurface(NewCanvas(0, 0), 4).Acquire(); err == nil {
		t.Error("acquire should fail before the terminal has a size")
	}
}

func TestModelAttachesOnResize(t *testing.T) {
	m := newTestModel(t)
	if m.engine.Attached() {
		t.Fatal("engine should wait for a window size")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	if !m.engine.Attached() {
		t.Fatalf("engine should attach on first size, err=%v", m.err)
	}
	if m.canvas.Width != 120 || m.canvas.Height != 40 {
		t.Errorf("expected 120x40 canvas, got %dx%d", m.canvas.Width, m.canvas.Height)
	}
	snap := m.engine.Snapshot()
	if snap.Width != 960 || snap.Height != 640 {
		t.Errorf("unexpected surface size %.0fx%.0f", snap.Width, snap.Height)
	}
	if len(snap.Particles) != field.Count(960, 640, field.DefaultParams()) {
		t.Errorf("unexpected particle count %d", len(snap.Particles))
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 21})
	if got := m.engine.Snapshot().Width; got != 480 {
		t.Errorf("expected resized width 480, got %.0f", got)
	}
}

func TestModelSurfaceUnavailable(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 1})
	if !errors.Is(m.err, background.ErrSurfaceUnavailable) {
		t.Errorf("expected ErrSurfaceUnavailable, got %v", m.err)
	}
	if m.engine.Attached() {
		t.Error("engine should not attach to an empty canvas")
	}
}

func TestModelTickRenders(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})

	now := time.Now()
	next, cmd := m.Update(TickMsg(now))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should reschedule itself")
	}
	m = update(t, m, TickMsg(now.Add(time.Second/60)))

	if m.engine.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", m.engine.Frames())
	}
	if len(m.linkHistory) != 2 {
		t.Errorf("expected 2 history samples, got %d", len(m.linkHistory))
	}
	if m.View() == "" {
		t.Error("view should not be empty")
	}
}

func TestModelPointer(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})

	m = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	x, y, ok := m.engine.Snapshot().Pointer.Position()
	if !ok || x != 84 || y != 88 {
		t.Errorf("expected pointer at (84, 88), got (%f, %f, %v)", x, y, ok)
	}

	m = update(t, m, tea.BlurMsg{})
	if m.engine.Snapshot().Pointer.Present() {
		t.Error("focus loss should clear the pointer")
	}

	m = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 40, Action: tea.MouseActionMotion})
	if m.engine.Snapshot().Pointer.Present() {
		t.Error("pointer over the status line is off the surface")
	}
}

func TestModelThemeToggle(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if !m.engine.Dark() {
		t.Error("expected dark theme after toggle")
	}
	if m.engine.Frames() != 0 {
		t.Error("theme switch should restart the engine")
	}

	scheme := m.engine.Scheme().Name
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if m.engine.Scheme().Name == scheme {
		t.Error("expected the next palette scheme")
	}
}

func TestModelQuitDetaches(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.engine.Attached() || m.bus.Total() != 0 {
		t.Error("quit should detach the engine")
	}
}

func TestModelStatsToggle(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if !m.showStats || m.canvas.Height != 40-statsLines {
		t.Errorf("expected canvas to shrink for stats, got height %d", m.canvas.Height)
	}
}
