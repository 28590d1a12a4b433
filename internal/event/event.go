package event

import "sync"

// Type names an event kind.
type Type string

const (
	Resize       Type = "resize"
	PointerMove  Type = "pointermove"
	PointerLeave Type = "pointerleave"
)

// Event carries surface dimensions for Resize and surface-local
// coordinates for PointerMove.
type Event struct {
	Type          Type
	X, Y          float64
	Width, Height float64
}

func NewResize(width, height float64) Event {
	return Event{Type: Resize, Width: width, Height: height}
}

func NewPointerMove(x, y float64) Event {
	return Event{Type: PointerMove, X: x, Y: y}
}

func NewPointerLeave() Event { return Event{Type: PointerLeave} }

// Listener handles one event.
type Listener func(Event)

type subscription struct {
	id uint64
	fn Listener
}

// Bus dispatches events to subscribed listeners in subscription order.
type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[Type][]subscription
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[Type][]subscription)}
}

// Subscribe registers fn for events of type t and returns a function that
// removes it. The returned function may be called more than once.
func (b *Bus) Subscribe(t Type, fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.listeners[t] = append(b.listeners[t], subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(t, id) })
	}
}

func (b *Bus) remove(t Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.listeners[t]
	for i, s := range subs {
		if s.id == id {
			b.listeners[t] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.listeners[t]) == 0 {
		delete(b.listeners, t)
	}
}

// Publish delivers e to every listener of its type. Listeners run on the
// caller's goroutine.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := make([]Listener, 0, len(b.listeners[e.Type]))
	for _, s := range b.listeners[e.Type] {
		subs = append(subs, s.fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}

// Listeners returns the number of listeners for t.
func (b *Bus) Listeners(t Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[t])
}

// Total returns the number of listeners across all types.
func (b *Bus) Total() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, subs := range b.listeners {
		n += len(subs)
	}
	return n
}
