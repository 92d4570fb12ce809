package search

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/algoviz/internal/moves"
)

var all = []struct {
	name string
	fn   Func
}{
	{"linear", Linear},
	{"binary", Binary},
	{"exponential", Exponential},
}

func sortedArray(rng *rand.Rand, n, maxValue int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rng.Intn(maxValue) + 1
	}
	slices.Sort(a)
	return a
}

func TestBinaryScenario(t *testing.T) {
	log := Binary([]int{1, 2, 3, 4, 5, 6, 7}, 4)
	if diff := cmp.Diff(moves.Log{moves.Probe(3, true)}, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestFindsPresentTargets(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for _, alg := range all {
		t.Run(alg.name, func(t *testing.T) {
			for _, n := range []int{1, 2, 3, 8, 20, 33} {
				a := sortedArray(rng, n, 50)
				for _, target := range a {
					log := alg.fn(a, target)
					i, ok := log.Found()
					if !ok {
						t.Fatalf("n=%d target=%d: not found in %v, log %v", n, target, a, log)
					}
					if a[i] != target {
						t.Fatalf("n=%d target=%d: matched index %d holds %d", n, target, i, a[i])
					}
					for _, m := range log[:len(log)-1] {
						if m.Matched {
							t.Fatalf("n=%d target=%d: matched probe before the end of %v", n, target, log)
						}
					}
				}
			}
		})
	}
}

func TestAbsentTargets(t *testing.T) {
	a := []int{2, 4, 6, 8, 10, 12, 14, 16, 18}
	targets := []int{0, 1, 3, 9, 17, 19, 100}

	for _, alg := range all {
		t.Run(alg.name, func(t *testing.T) {
			for _, target := range targets {
				log := alg.fn(a, target)
				if _, ok := log.Found(); ok {
					t.Errorf("target=%d: unexpectedly found, log %v", target, log)
				}
				for _, m := range log {
					if !m.IsProbe() || m.Matched {
						t.Errorf("target=%d: unexpected move %s", target, m)
					}
					if m.I < 0 || m.I >= len(a) {
						t.Errorf("target=%d: probe %d out of range", target, m.I)
					}
				}
			}
		})
	}
}

func TestLinearStopsAtFirstMatch(t *testing.T) {
	log := Linear([]int{1, 3, 3, 3, 9}, 3)
	want := moves.Log{moves.Probe(0, false), moves.Probe(1, true)}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestBinaryIsLogarithmic(t *testing.T) {
	a := make([]int, 1024)
	for i := range a {
		a[i] = i * 2
	}
	for _, target := range []int{-1, 0, 511, 1000, 2046, 5000} {
		if log := Binary(a, target); len(log) > 11 {
			t.Errorf("target=%d: %d probes for n=1024", target, len(log))
		}
	}
}

func TestExponentialFirstElement(t *testing.T) {
	log := Exponential([]int{3, 5, 7, 9}, 3)
	if diff := cmp.Diff(moves.Log{moves.Probe(0, true)}, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestExponentialTrace(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	log := Exponential(a, 7)

	// doubling: 0, 1, 2, 4, 8 (9 > 7), then binary over [4, 8)
	want := moves.Log{
		moves.Probe(0, false),
		moves.Probe(1, false),
		moves.Probe(2, false),
		moves.Probe(4, false),
		moves.Probe(8, false),
		moves.Probe(5, false),
		moves.Probe(6, true),
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestExponentialBounds(t *testing.T) {
	tests := []struct {
		name   string
		a      []int
		target int
	}{
		{"larger than all", []int{1, 2, 3, 4, 5}, 99},
		{"smaller than all", []int{10, 20, 30}, 1},
		{"single element miss", []int{4}, 5},
		{"power of two length", []int{1, 2, 3, 4, 5, 6, 7, 8}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := Exponential(tt.a, tt.target)
			for _, m := range log {
				if m.I < 0 || m.I >= len(tt.a) {
					t.Fatalf("probe %d out of range in %v", m.I, log)
				}
			}
			_, found := log.Found()
			if found != slices.Contains(tt.a, tt.target) {
				t.Errorf("found = %v for %v", found, log)
			}
		})
	}
}

func TestDegenerateInput(t *testing.T) {
	for _, alg := range all {
		if log := alg.fn(nil, 3); len(log) != 0 {
			t.Errorf("%s(nil): expected empty log, got %v", alg.name, log)
		}
		if log := alg.fn([]int{}, 3); len(log) != 0 {
			t.Errorf("%s([]): expected empty log, got %v", alg.name, log)
		}
	}
}
