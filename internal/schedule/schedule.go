// Package schedule drives a tick function once per display refresh.
package schedule

import "errors"

// ErrRunning is returned when Start is called on a running scheduler.
var ErrRunning = errors.New("schedule: already running")

// Scheduler runs a tick function repeatedly until cancelled. Cancel is safe
// to call at any time, any number of times.
type Scheduler interface {
	Start(tick func()) error
	Cancel()
	Running() bool
}
