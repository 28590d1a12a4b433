package gui

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/netbg/internal/render"
)

var errNoWindow = errors.New("gui: window not ready")

// Surface draws straight to the raylib back buffer. It must only be used
// between BeginDrawing and EndDrawing.
type Surface struct {
	Background color.NRGBA
	Opacity    float64
}

func (s *Surface) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

func (s *Surface) Acquire() (render.Surface, error) {
	if !rl.IsWindowReady() {
		return nil, errNoWindow
	}
	return s, nil
}

func (s *Surface) Clear() {
	rl.ClearBackground(rl.NewColor(s.Background.R, s.Background.G, s.Background.B, 255))
}

func (s *Surface) FillCircle(x, y, radius float64, c color.NRGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(radius), s.color(c))
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	rl.DrawLineEx(rl.NewVector2(float32(x0), float32(y0)), rl.NewVector2(float32(x1), float32(y1)), float32(width), s.color(c))
}

func (s *Surface) color(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, uint8(float64(c.A)*s.Opacity))
}
