// Package sorts implements the sorting algorithms as pure functions from an
// array snapshot to a move log.
//
// Every function copies its input, sorts the copy and returns it together
// with the log of mutations it performed, in execution order. Replaying the
// log against the snapshot yields exactly the returned slice.
package sorts
