package export

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/san-kum/netbg/internal/render"
	"golang.org/x/image/vector"
)

var errEmptyRaster = errors.New("export: raster has no pixels")

// Raster is an offscreen RGBA surface. Strokes and discs are
// anti-aliased polygons composited with draw.Over at the layer opacity.
type Raster struct {
	Image      *image.RGBA
	Background color.NRGBA
	Opacity    float64

	rast *vector.Rasterizer
}

func NewRaster(w, h int, bg color.NRGBA, opacity float64) *Raster {
	w, h = max(w, 0), max(h, 0)
	return &Raster{
		Image:      image.NewRGBA(image.Rect(0, 0, w, h)),
		Background: bg,
		Opacity:    opacity,
		rast:       vector.NewRasterizer(w, h),
	}
}

func (r *Raster) Size() (float64, float64) {
	b := r.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (r *Raster) Acquire() (render.Surface, error) {
	if r.Image.Bounds().Empty() {
		return nil, errEmptyRaster
	}
	return r, nil
}

func (r *Raster) Clear() {
	draw.Draw(r.Image, r.Image.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

func (r *Raster) FillCircle(x, y, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	n := max(12, int(radius*6))
	pts := make([][2]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{x + radius*math.Cos(a), y + radius*math.Sin(a)}
	}
	r.fill(pts, c)
}

func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.fill([][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, c)
}

func (r *Raster) fill(pts [][2]float64, c color.NRGBA) {
	c.A = uint8(math.Round(float64(c.A) * r.Opacity))
	if c.A == 0 {
		return
	}
	b := r.Image.Bounds()
	r.rast.Reset(b.Dx(), b.Dy())
	r.rast.DrawOp = draw.Over
	r.rast.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		r.rast.LineTo(float32(p[0]), float32(p[1]))
	}
	r.rast.ClosePath()
	r.rast.Draw(r.Image, b, image.NewUniform(c), image.Point{})
}

// Snapshot returns a copy of the current pixels.
func (r *Raster) Snapshot() *image.RGBA {
	out := image.NewRGBA(r.Image.Bounds())
	copy(out.Pix, r.Image.Pix)
	return out
}
