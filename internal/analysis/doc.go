// Package analysis estimates how an algorithm's move count grows with the
// input size.
//
// The package includes:
//
//   - [GrowthExponent]: slope of log(moves) against log(n)
//   - [Classify]: best matching complexity class among log n, n, n log n, n^2
//
// # Usage
//
// Feed it the mean move counts of a benchmark sweep:
//
//	pts := []analysis.Point{{N: 16, Moves: 60}, {N: 32, Moves: 250}, {N: 64, Moves: 1000}}
//	k, _ := analysis.GrowthExponent(pts) // about 2
//	c, _ := analysis.Classify(pts)       // analysis.Quadratic
package analysis
