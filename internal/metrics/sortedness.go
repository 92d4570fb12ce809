package metrics

import (
	"sort"

	"github.com/san-kum/algoviz/internal/moves"
)

// Displacement is the number of positions holding a value other than the
// one they hold once the array is sorted.
type Displacement struct {
	name    string
	current int
	scratch []int
}

func NewDisplacement() *Displacement {
	return &Displacement{name: "displaced"}
}

func (d *Displacement) Name() string {
	return d.name
}

func (d *Displacement) Observe(m moves.Move, live []int) {
	d.scratch = append(d.scratch[:0], live...)
	sort.Ints(d.scratch)
	d.current = 0
	for i, v := range live {
		if v != d.scratch[i] {
			d.current++
		}
	}
}

func (d *Displacement) Value() float64 {
	return float64(d.current)
}

func (d *Displacement) Reset() {
	d.current = 0
}

// Inversions tracks the pairs still out of order after each move.
type Inversions struct {
	name    string
	current int
	history []float64
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (v *Inversions) Name() string {
	return v.name
}

func (v *Inversions) Observe(m moves.Move, live []int) {
	if m.IsProbe() {
		return
	}
	n := 0
	for i := range live {
		for j := i + 1; j < len(live); j++ {
			if live[i] > live[j] {
				n++
			}
		}
	}
	v.current = n
	v.history = append(v.history, float64(n))
}

func (v *Inversions) Value() float64 {
	return float64(v.current)
}

// History returns the inversion count after every observed mutation.
func (v *Inversions) History() []float64 {
	out := make([]float64, len(v.history))
	copy(out, v.history)
	return out
}

func (v *Inversions) Reset() {
	v.current = 0
	v.history = v.history[:0]
}
