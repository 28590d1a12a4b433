package render

import (
	"math"
	"testing"

	"github.com/san-kum/netbg/internal/field"
)

func TestOpacity(t *testing.T) {
	tests := []struct {
		d, max   float64
		expected float64
		drawn    bool
	}{
		{0, 150, 1, true},
		{75, 150, 0.5, true},
		{149.999, 150, 0.001 / 150, true},
		{150, 150, 0, false},
		{151, 150, 0, false},
		{199, 200, 0.005, true},
		{200, 200, 0, false},
	}

	for _, tt := range tests {
		got, ok := Opacity(tt.d, tt.max)
		if ok != tt.drawn {
			t.Errorf("d=%.3f max=%.0f: expected drawn=%v, got %v", tt.d, tt.max, tt.drawn, ok)
			continue
		}
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("d=%.3f max=%.0f: expected opacity %.6f, got %.6f", tt.d, tt.max, tt.expected, got)
		}
	}
}

func TestRenderOrder(t *testing.T) {
	c := &field.Context{
		Width: 800, Height: 600,
		Particles: []field.Particle{
			{X: 100, Y: 100, Radius: 2},
			{X: 175, Y: 100, Radius: 1},
		},
		Pointer: field.PointerAt(100, 150),
	}
	rec := &Recorder{}
	st := Render(rec, c, SchemeTeal.Dark, DefaultParams())

	kinds := []OpKind{OpClear, OpCircle, OpCircle, OpLine, OpLine, OpLine}
	if len(rec.Ops) != len(kinds) {
		t.Fatalf("expected %d ops, got %d", len(kinds), len(rec.Ops))
	}
	for i, k := range kinds {
		if rec.Ops[i].Kind != k {
			t.Errorf("op %d: expected kind %d, got %d", i, k, rec.Ops[i].Kind)
		}
	}
	if st.Particles != 2 || st.Links != 1 || st.PointerLinks != 2 {
		t.Errorf("unexpected stats %+v", st)
	}
	if rec.Ops[1].Width != 2 || rec.Ops[2].Width != 1 {
		t.Error("circles should use the particle radius")
	}
}

func TestRenderLinkOpacity(t *testing.T) {
	c := &field.Context{
		Width: 800, Height: 600,
		Particles: []field.Particle{
			{X: 100, Y: 100, Radius: 1},
			{X: 175, Y: 100, Radius: 1},
		},
	}
	rec := &Recorder{}
	pal := SchemeTeal.Dark
	Render(rec, c, pal, DefaultParams())

	if rec.Count(OpLine) != 1 {
		t.Fatalf("expected one link, got %d", rec.Count(OpLine))
	}
	line := rec.Ops[len(rec.Ops)-1]
	if line.Width != 1 {
		t.Errorf("expected link width 1, got %f", line.Width)
	}
	if line.Color != pal.LinkStroke(0.5) {
		t.Errorf("expected half opacity link color, got %+v", line.Color)
	}
	if line.Color.A != 128 {
		t.Errorf("expected alpha 128, got %d", line.Color.A)
	}
}

func TestRenderLinkThreshold(t *testing.T) {
	c := &field.Context{
		Width: 800, Height: 600,
		Particles: []field.Particle{
			{X: 0, Y: 0, Radius: 1},
			{X: 150, Y: 0, Radius: 1},
			{X: 300, Y: 0, Radius: 1},
		},
	}
	rec := &Recorder{}
	st := Render(rec, c, SchemeTeal.Light, DefaultParams())
	if st.Links != 0 || rec.Count(OpLine) != 0 {
		t.Errorf("links at exactly the max distance must not be drawn, got %d", st.Links)
	}
}

func TestRenderPointerThreshold(t *testing.T) {
	c := &field.Context{
		Width: 800, Height: 600,
		Particles: []field.Particle{
			{X: 100, Y: 300, Radius: 1},
			{X: 500, Y: 299, Radius: 1},
		},
		Pointer: field.PointerAt(100, 100),
	}
	rec := &Recorder{}
	st := Render(rec, c, SchemeTeal.Dark, DefaultParams())
	if st.PointerLinks != 0 {
		t.Errorf("pointer at distance 200 must not link, got %d", st.PointerLinks)
	}

	c.Particles[0].Y = 299
	rec = &Recorder{}
	st = Render(rec, c, SchemeTeal.Dark, DefaultParams())
	if st.PointerLinks != 1 {
		t.Fatalf("expected one pointer link at distance 199, got %d", st.PointerLinks)
	}
	line := rec.Ops[len(rec.Ops)-1]
	if line.Width != 1.5 {
		t.Errorf("expected pointer link width 1.5, got %f", line.Width)
	}
	if line.X1 != 100 || line.Y1 != 100 {
		t.Errorf("pointer link should end at the pointer, got (%f, %f)", line.X1, line.Y1)
	}
	if line.Color != SchemeTeal.Dark.PointerStroke(0.005) {
		t.Errorf("unexpected pointer color %+v", line.Color)
	}
}

func TestRenderAbsentPointer(t *testing.T) {
	c := &field.Context{
		Width: 800, Height: 600,
		Particles: []field.Particle{{X: 1, Y: 1, Radius: 1}},
		Pointer:   field.NoPointer(),
	}
	rec := &Recorder{}
	st := Render(rec, c, SchemeTeal.Dark, DefaultParams())
	if st.PointerLinks != 0 || rec.Count(OpLine) != 0 {
		t.Error("absent pointer should produce no pointer links")
	}
}

func TestRenderEmptyStore(t *testing.T) {
	c := &field.Context{Width: 10, Height: 10, Pointer: field.PointerAt(5, 5)}
	rec := &Recorder{}
	st := Render(rec, c, SchemeTeal.Dark, DefaultParams())
	if st != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", st)
	}
	if rec.Clears != 1 || len(rec.Ops) != 1 {
		t.Error("an empty store still clears the surface")
	}
}

func TestRecorderReplay(t *testing.T) {
	c := &field.Context{
		Width: 800, Height: 600,
		Particles: []field.Particle{{X: 10, Y: 10, Radius: 1}, {X: 20, Y: 10, Radius: 1}},
	}
	src := &Recorder{}
	Render(src, c, SchemeOcean.Dark, DefaultParams())

	dst := &Recorder{}
	src.Replay(dst)
	if len(dst.Ops) != len(src.Ops) {
		t.Fatalf("replay produced %d ops, expected %d", len(dst.Ops), len(src.Ops))
	}
	for i := range src.Ops {
		if src.Ops[i] != dst.Ops[i] {
			t.Errorf("op %d differs after replay", i)
		}
	}
}
