// Package replay animates a move log against a live array.
//
// A [Scheduler] owns at most one [Session] at a time. Each tick pops one move
// from the session's cursor, applies it to the live array and hands a
// [Frame] to the render callback, then arms the next tick after the
// configured delay. Stopping cancels the pending timer before it fires, and
// every tick re-checks the session it was armed for, so a timer from an old
// session can never touch a newer one.
//
// # States
//
//	Idle --Start--> Running --log exhausted--> Idle
//	                Running --Stop/Start-----> Stopped --> Idle
//
// # Thread Safety
//
// Scheduler methods are safe to call from any goroutine. The render
// callback runs with frame emission serialized and must not call Start or
// Stop itself; hand frames off to another goroutine instead.
package replay
