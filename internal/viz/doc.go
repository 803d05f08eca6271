// Package viz renders the approach in the terminal.
//
// The package implements a live view on the Bubble Tea framework:
//
//   - [Model]: interactive application stepping the approach in real time
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Scene]: side-on layout of the compact object and the infalling body
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	S     - Start a stretch window
//	R     - Restart the approach
//	K     - Switch object type
//	↑/↓   - Adjust mass
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
