package metrics

import (
	"github.com/san-kum/algoviz/internal/moves"
	"github.com/san-kum/algoviz/internal/replay"
)

// Counter counts applied moves of one kind.
type Counter struct {
	name  string
	kind  moves.Kind
	count int
}

func NewSwaps() *Counter  { return &Counter{name: "swaps", kind: moves.KindSwap} }
func NewWrites() *Counter { return &Counter{name: "writes", kind: moves.KindOverwrite} }
func NewProbes() *Counter { return &Counter{name: "probes", kind: moves.KindProbe} }

func (c *Counter) Name() string {
	return c.name
}

func (c *Counter) Observe(m moves.Move, live []int) {
	if m.Kind == c.kind {
		c.count++
	}
}

func (c *Counter) Value() float64 {
	return float64(c.count)
}

func (c *Counter) Reset() {
	c.count = 0
}

// Default returns the metrics the visualizer attaches to every replay.
func Default() []replay.Metric {
	return []replay.Metric{
		NewSwaps(),
		NewWrites(),
		NewProbes(),
		NewDisplacement(),
		NewInversions(),
	}
}
