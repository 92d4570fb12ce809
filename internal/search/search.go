// Package search implements the searching algorithms as pure functions from
// a sorted array and a target to a log of probes.
//
// The last probe of a log is matched exactly when the target was found; a
// log without a matched probe means not found. Empty input yields an empty
// log.
package search

import "github.com/san-kum/algoviz/internal/moves"

// Func is the common signature of every searching algorithm. The array must
// be sorted ascending.
type Func func(sorted []int, target int) moves.Log

// Linear probes every position in order and stops at the first match.
func Linear(sorted []int, target int) moves.Log {
	log := moves.Log{}
	for i, v := range sorted {
		log = append(log, moves.Probe(i, v == target))
		if v == target {
			break
		}
	}
	return log
}

// Binary halves the [lo, hi] window around the target.
func Binary(sorted []int, target int) moves.Log {
	log := moves.Log{}
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := sorted[mid]
		log = append(log, moves.Probe(mid, v == target))
		switch {
		case v == target:
			return log
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return log
}

// Exponential probes 0, 1, 2, 4, ... until the probed value passes the
// target or the end of the array, then binary searches the bracketing window
// [bound/2, min(bound, n)).
func Exponential(sorted []int, target int) moves.Log {
	n := len(sorted)
	if n == 0 {
		return moves.Log{}
	}
	if sorted[0] == target {
		return moves.Log{moves.Probe(0, true)}
	}

	log := moves.Log{moves.Probe(0, false)}
	if sorted[0] > target {
		return log
	}

	bound := 1
	for bound < n {
		v := sorted[bound]
		log = append(log, moves.Probe(bound, v == target))
		if v == target {
			return log
		}
		if v > target {
			break
		}
		bound *= 2
	}

	lo, hi := bound/2, min(bound, n)
	return append(log, Binary(sorted[lo:hi], target).Offset(lo)...)
}
