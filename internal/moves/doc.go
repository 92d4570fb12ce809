// Package moves defines the move log shared by every algorithm and the
// replay scheduler.
//
// An algorithm never touches the displayed array. It runs against its own
// copy and records what it did as an ordered [Log] of [Move] values:
//
//   - [KindSwap]: two positions exchange values
//   - [KindOverwrite]: one position takes a computed value (merge write-back)
//   - [KindProbe]: a search visited a position, matched or not
//
// Replaying the log with [Apply] against the original snapshot reproduces
// the algorithm's final state exactly. Logs are consumed front to back with a
// [Cursor]; the underlying slice is never modified.
//
// # Example
//
//	sorted, log := sorts.Bubble(snapshot)
//	live, _ := log.Replay(snapshot) // live equals sorted
package moves
