// Package viz provides the terminal visualizer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: algorithm list, live array view and replay statistics
//   - [Render]: bars, boxes and braille dot views of a replay frame
//   - [Canvas]: Braille-based pixel canvas for the dot view
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Enter - Run the selected algorithm (searches ask for a target)
//	S     - Stop the running replay
//	R     - New random array
//	+/-   - Faster/slower replay
//	[ ]   - Fewer/more elements
//	V     - Cycle views
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
