// Package background runs the particle network: it owns the simulation
// context, listens for layout and pointer events and drives the simulator
// and renderer from a scheduler.
package background

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/netbg/internal/event"
	"github.com/san-kum/netbg/internal/field"
	"github.com/san-kum/netbg/internal/render"
	"github.com/san-kum/netbg/internal/schedule"
)

// Options configures an Engine.
type Options struct {
	Field  field.Params
	Render render.Params
	Scheme render.Scheme
	// Seed fixes the particle layout of every attach. Zero seeds from the
	// clock.
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		Field:  field.DefaultParams(),
		Render: render.DefaultParams(),
		Scheme: render.SchemeTeal,
	}
}

// Engine is either fully running (listeners subscribed, scheduler started)
// or fully stopped. All state access goes through mu, so ticks fired from
// another goroutine always see the latest event-driven write.
type Engine struct {
	bus   *event.Bus
	sched schedule.Scheduler
	opts  Options

	mu       sync.Mutex
	attached bool
	target   Target
	surface  render.Surface
	rng      *rand.Rand
	state    field.Context
	palette  render.Palette
	stats    render.Stats
	frames   uint64
	subs     []func()
}

func New(bus *event.Bus, sched schedule.Scheduler, opts Options) *Engine {
	return &Engine{bus: bus, sched: sched, opts: opts}
}

// Attach acquires the target's surface, builds a fresh particle store,
// subscribes to layout and pointer events and starts the scheduler. An
// already attached engine is detached first.
func (e *Engine) Attach(target Target, dark bool) error {
	e.Detach()

	surface, err := target.Acquire()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	if surface == nil {
		return ErrSurfaceUnavailable
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	w, h := target.Size()
	e.target = target
	e.surface = surface
	e.rng = newRand(e.opts.Seed)
	e.state = field.Context{Width: w, Height: h, Dark: dark, Pointer: field.NoPointer()}
	e.state.Reset(e.rng, e.opts.Field)
	e.palette = e.opts.Scheme.For(dark)
	e.stats = render.Stats{}
	e.frames = 0

	subs := []func(){
		e.bus.Subscribe(event.Resize, e.onResize),
		e.bus.Subscribe(event.PointerMove, e.onPointerMove),
		e.bus.Subscribe(event.PointerLeave, e.onPointerLeave),
	}
	if err := e.sched.Start(e.tick); err != nil {
		for _, off := range subs {
			off()
		}
		e.surface = nil
		return err
	}
	e.subs = subs
	e.attached = true
	return nil
}

// Detach cancels the scheduler and removes every listener. It is safe to
// call repeatedly and after a failed Attach.
func (e *Engine) Detach() {
	e.mu.Lock()
	subs := e.subs
	e.subs = nil
	e.attached = false
	e.surface = nil
	e.mu.Unlock()

	// outside the lock: a ticker waits for its in-flight tick
	e.sched.Cancel()
	for _, off := range subs {
		off()
	}
}

// SetTheme restarts the engine with the palette for dark. It is a no-op
// when the flag is unchanged.
func (e *Engine) SetTheme(dark bool) error {
	e.mu.Lock()
	if !e.attached {
		e.mu.Unlock()
		return ErrNotAttached
	}
	if e.state.Dark == dark {
		e.mu.Unlock()
		return nil
	}
	target := e.target
	e.mu.Unlock()

	return e.Attach(target, dark)
}

// SetScheme switches palette schemes. A running engine restarts.
func (e *Engine) SetScheme(s render.Scheme) error {
	e.mu.Lock()
	e.opts.Scheme = s
	attached, target, dark := e.attached, e.target, e.state.Dark
	e.mu.Unlock()

	if !attached {
		return nil
	}
	return e.Attach(target, dark)
}

func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.attached {
		return
	}
	field.Step(&e.state)
	e.stats = render.Render(e.surface, &e.state, e.palette, e.opts.Render)
	e.frames++
}

func (e *Engine) onResize(ev event.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Width, e.state.Height = ev.Width, ev.Height
	e.state.Reset(e.rng, e.opts.Field)
}

func (e *Engine) onPointerMove(ev event.Event) {
	e.mu.Lock()
	e.state.Pointer = field.PointerAt(ev.X, ev.Y)
	e.mu.Unlock()
}

func (e *Engine) onPointerLeave(event.Event) {
	e.mu.Lock()
	e.state.Pointer = field.NoPointer()
	e.mu.Unlock()
}

func (e *Engine) Attached() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attached
}

func (e *Engine) Dark() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Dark
}

// Palette returns the active palette.
func (e *Engine) Palette() render.Palette {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.palette
}

func (e *Engine) Scheme() render.Scheme {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts.Scheme
}

// Snapshot returns a copy of the simulation context.
func (e *Engine) Snapshot() field.Context {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Stats returns what the last frame painted.
func (e *Engine) Stats() render.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Frames returns the number of ticks since the last attach.
func (e *Engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
