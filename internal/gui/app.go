package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/netbg/internal/background"
	"github.com/san-kum/netbg/internal/config"
	"github.com/san-kum/netbg/internal/event"
	"github.com/san-kum/netbg/internal/render"
	"github.com/san-kum/netbg/internal/schedule"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(100, 100, 100, 255)
)

type App struct {
	engine  *background.Engine
	bus     *event.Bus
	frame   *schedule.Frame
	surface *Surface
	dark    bool
	hud     bool
	pointer bool
}

// initWindow opens a resizable window at the configured snapshot size and
// caps the frame rate at the configured FPS.
func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Snapshot.Width), int32(cfg.Snapshot.Height), "netbg")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config) *App {
	bus := event.NewBus()
	frame := schedule.NewFrame()
	opts := background.Options{
		Field:  cfg.FieldParams(),
		Render: cfg.RenderParams(),
		Scheme: cfg.Scheme(),
		Seed:   cfg.Seed,
	}
	return &App{
		engine:  background.New(bus, frame, opts),
		bus:     bus,
		frame:   frame,
		surface: &Surface{Opacity: cfg.LayerOpacity},
		dark:    cfg.Dark,
		hud:     true,
	}
}

// Run opens the window, attaches the engine and blocks until the window
// is closed.
func Run(cfg *config.Config) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg)
	if err := app.engine.Attach(app.surface, app.dark); err != nil {
		return err
	}
	defer app.engine.Detach()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update turns window input into bus events and key commands. It returns
// false when the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.dark = !a.dark
		if err := a.engine.SetTheme(a.dark); err != nil {
			fmt.Println("theme:", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		if err := a.engine.SetScheme(render.NextScheme(a.engine.Scheme().Name)); err != nil {
			fmt.Println("palette:", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.hud = !a.hud
	}

	if rl.IsWindowResized() {
		a.bus.Publish(event.NewResize(a.surface.Size()))
	}

	if rl.IsCursorOnScreen() {
		pos := rl.GetMousePosition()
		a.bus.Publish(event.NewPointerMove(float64(pos.X), float64(pos.Y)))
		a.pointer = true
	} else if a.pointer {
		a.bus.Publish(event.NewPointerLeave())
		a.pointer = false
	}
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	a.surface.Background = a.engine.Palette().Background
	a.frame.Fire()
	if a.hud {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	st := a.engine.Stats()
	theme := "light"
	if a.engine.Dark() {
		theme = "dark"
	}
	h := int32(rl.GetScreenHeight())
	rl.DrawText(fmt.Sprintf("netbg :: %s/%s", a.engine.Scheme().Name, theme), 20, 20, 16, ColText)
	rl.DrawText(fmt.Sprintf("%d particles  %d links  %d pointer", st.Particles, st.Links, st.PointerLinks), 20, 42, 14, ColTextDim)
	rl.DrawText("[T] THEME  [P] PALETTE  [H] HUD  [Q] QUIT", 20, h-30, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 20, h-50, 14, ColTextDim)
}
