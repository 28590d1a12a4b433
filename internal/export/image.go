package export

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
)

// WritePNG encodes a single frame.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Animation collects frames for a looping GIF.
type Animation struct {
	// Delay between frames in 100ths of a second.
	Delay  int
	frames []*image.Paletted
}

func NewAnimation(fps int) *Animation {
	delay := 2
	if fps > 0 {
		delay = max(100/fps, 1)
	}
	return &Animation{Delay: delay}
}

// Capture quantizes img to the Plan 9 palette with dithering.
func (a *Animation) Capture(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	a.frames = append(a.frames, p)
}

func (a *Animation) Len() int { return len(a.frames) }

func (a *Animation) Encode(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range a.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, a.Delay)
	}
	return gif.EncodeAll(w, &anim)
}
