// Package dataset generates the arrays that get sorted and searched.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"
)

type Pattern string

const (
	Random       Pattern = "random"
	Sorted       Pattern = "sorted"
	Reversed     Pattern = "reversed"
	NearlySorted Pattern = "nearly_sorted"
	FewUnique    Pattern = "few_unique"
)

var ErrUnknownPattern = errors.New("dataset: unknown pattern")

var patterns = []Pattern{Random, Sorted, Reversed, NearlySorted, FewUnique}

func Patterns() []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = string(p)
	}
	return names
}

func ParsePattern(s string) (Pattern, error) {
	for _, p := range patterns {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

// NewRand returns a generator seeded with seed, or with the clock when seed
// is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Demo returns n values in [1,100], the array shown on startup.
func Demo(n int, rng *rand.Rand) []int {
	return Range(n, 1, 100, rng)
}

// Custom returns size values in [0,maxValue).
func Custom(size, maxValue int, rng *rand.Rand) []int {
	if size <= 0 {
		return []int{}
	}
	out := make([]int, size)
	if maxValue <= 0 {
		return out
	}
	for i := range out {
		out[i] = rng.Intn(maxValue)
	}
	return out
}

// Range returns size values in [lo,hi].
func Range(size, lo, hi int, rng *rand.Rand) []int {
	if size <= 0 {
		return []int{}
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	out := make([]int, size)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}
	return out
}

// Generate builds size values in [lo,hi] arranged according to p.
func Generate(p Pattern, size, lo, hi int, rng *rand.Rand) ([]int, error) {
	a := Range(size, lo, hi, rng)
	switch p {
	case Random, "":
	case Sorted:
		sort.Ints(a)
	case Reversed:
		sort.Sort(sort.Reverse(sort.IntSlice(a)))
	case NearlySorted:
		sort.Ints(a)
		swaps := len(a)/10 + 1
		for k := 0; k < swaps && len(a) > 1; k++ {
			i := rng.Intn(len(a) - 1)
			a[i], a[i+1] = a[i+1], a[i]
		}
	case FewUnique:
		if len(a) == 0 {
			break
		}
		pool := Range(4, lo, hi, rng)
		for i := range a {
			a[i] = pool[rng.Intn(len(pool))]
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, p)
	}
	return a, nil
}

// Inversions counts pairs i<j with a[i] > a[j].
func Inversions(a []int) int {
	n := 0
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			if a[i] > a[j] {
				n++
			}
		}
	}
	return n
}
