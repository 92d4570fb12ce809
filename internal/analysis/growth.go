package analysis

import (
	"errors"
	"math"
)

var ErrTooFewPoints = errors.New("analysis: need at least two sizes with moves")

type Point struct {
	N     int
	Moves float64
}

type Class string

const (
	Logarithmic Class = "O(log n)"
	Linear      Class = "O(n)"
	Linearithm  Class = "O(n log n)"
	Quadratic   Class = "O(n^2)"
)

var models = []struct {
	class Class
	f     func(n float64) float64
}{
	{Logarithmic, func(n float64) float64 { return math.Log2(n) }},
	{Linear, func(n float64) float64 { return n }},
	{Linearithm, func(n float64) float64 { return n * math.Log2(n) }},
	{Quadratic, func(n float64) float64 { return n * n }},
}

func usable(points []Point) []Point {
	var out []Point
	for _, p := range points {
		if p.N >= 2 && p.Moves > 0 {
			out = append(out, p)
		}
	}
	return out
}

// GrowthExponent fits moves = c * n^k by least squares in log-log space and
// returns k.
func GrowthExponent(points []Point) (float64, error) {
	pts := usable(points)
	if len(pts) < 2 {
		return 0, ErrTooFewPoints
	}

	var sx, sy, sxx, sxy float64
	for _, p := range pts {
		x := math.Log(float64(p.N))
		y := math.Log(p.Moves)
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	n := float64(len(pts))
	den := n*sxx - sx*sx
	if den == 0 {
		return 0, ErrTooFewPoints
	}
	return (n*sxy - sx*sy) / den, nil
}

// Classify picks the class whose ratio moves/f(n) varies least across the
// sizes.
func Classify(points []Point) (Class, error) {
	pts := usable(points)
	if len(pts) < 2 {
		return "", ErrTooFewPoints
	}

	best := Class("")
	bestCV := math.Inf(1)
	for _, m := range models {
		ratios := make([]float64, len(pts))
		for i, p := range pts {
			ratios[i] = p.Moves / m.f(float64(p.N))
		}
		if cv := variation(ratios); cv < bestCV {
			best, bestCV = m.class, cv
		}
	}
	return best, nil
}

func variation(xs []float64) float64 {
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	if mean == 0 {
		return math.Inf(1)
	}
	ss := 0.0
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return math.Sqrt(ss/float64(len(xs))) / mean
}
