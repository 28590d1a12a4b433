// Package viz hosts the particle network in a terminal.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: the Bubble Tea model; attaches the engine on the first
//     window size and fires one frame per tick message
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//   - [Surface]: scales surface units onto canvas dots
//
// # Key Bindings
//
//	T - Toggle dark/light theme (restarts the field)
//	P - Cycle palette schemes
//	S - Show links-per-frame panel
//	Q - Quit
//
// Mouse motion over the canvas moves the pointer; moving onto the status
// line or losing focus removes it.
package viz
