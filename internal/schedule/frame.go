package schedule

import "sync"

// Frame is a host-driven scheduler: the host calls Fire once per refresh
// (a bubbletea tick message, a window frame, an export loop).
type Frame struct {
	mu    sync.Mutex
	tick  func()
	fired uint64
}

func NewFrame() *Frame { return &Frame{} }

func (f *Frame) Start(tick func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tick != nil {
		return ErrRunning
	}
	f.tick = tick
	return nil
}

func (f *Frame) Cancel() {
	f.mu.Lock()
	f.tick = nil
	f.mu.Unlock()
}

func (f *Frame) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tick != nil
}

// Fire runs the pending tick, if any, and reports whether it ran.
func (f *Frame) Fire() bool {
	f.mu.Lock()
	tick := f.tick
	if tick != nil {
		f.fired++
	}
	f.mu.Unlock()
	if tick == nil {
		return false
	}
	tick()
	return true
}

// Fired returns the number of ticks run so far.
func (f *Frame) Fired() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fired
}
