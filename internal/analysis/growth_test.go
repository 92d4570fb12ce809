package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/search"
	"github.com/san-kum/algoviz/internal/sorts"
)

func synthetic(f func(n float64) float64) []Point {
	var pts []Point
	for _, n := range []int{8, 16, 32, 64, 128} {
		pts = append(pts, Point{N: n, Moves: 3 * f(float64(n))})
	}
	return pts
}

func TestGrowthExponent(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		want float64
	}{
		{"linear", func(n float64) float64 { return n }, 1},
		{"quadratic", func(n float64) float64 { return n * n }, 2},
	}

	for _, tt := range tests {
		k, err := GrowthExponent(synthetic(tt.f))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if math.Abs(k-tt.want) > 1e-9 {
			t.Errorf("%s: expected exponent %v, got %v", tt.name, tt.want, k)
		}
	}
}

func TestClassifySynthetic(t *testing.T) {
	for _, m := range models {
		got, err := Classify(synthetic(m.f))
		if err != nil {
			t.Fatal(err)
		}
		if got != m.class {
			t.Errorf("expected %s, got %s", m.class, got)
		}
	}
}

func TestClassifyReversedSorts(t *testing.T) {
	tests := []struct {
		name string
		fn   sorts.Func
		want Class
	}{
		{"bubble", sorts.Bubble, Quadratic},
		{"insertion", sorts.Insertion, Quadratic},
		{"merge", sorts.Merge, Linearithm},
	}

	for _, tt := range tests {
		var pts []Point
		for _, n := range []int{16, 32, 64, 128} {
			input, err := dataset.Generate(dataset.Reversed, n, 1, 10000, dataset.NewRand(5))
			if err != nil {
				t.Fatal(err)
			}
			_, log := tt.fn(input)
			pts = append(pts, Point{N: n, Moves: float64(len(log))})
		}
		got, err := Classify(pts)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s (%v)", tt.name, tt.want, got, pts)
		}
	}
}

func TestClassifyLinearSearch(t *testing.T) {
	var pts []Point
	for _, n := range []int{16, 32, 64, 128} {
		a := make([]int, n)
		for i := range a {
			a[i] = i
		}
		pts = append(pts, Point{N: n, Moves: float64(len(search.Linear(a, -1)))})
	}
	got, err := Classify(pts)
	if err != nil {
		t.Fatal(err)
	}
	if got != Linear {
		t.Errorf("expected %s, got %s", Linear, got)
	}
}

func TestTooFewPoints(t *testing.T) {
	if _, err := GrowthExponent([]Point{{N: 8, Moves: 10}}); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}
	if _, err := Classify([]Point{{N: 8, Moves: 0}, {N: 1, Moves: 5}}); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}
}
