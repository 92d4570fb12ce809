package replay

import (
	"time"

	"github.com/san-kum/algoviz/internal/moves"
)

type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

type Mode int

const (
	ModeSort Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "sort"
}

type HighlightKind int

const (
	HighlightNone HighlightKind = iota
	HighlightCompare
	HighlightSwap
	HighlightMatch
)

func (k HighlightKind) String() string {
	switch k {
	case HighlightCompare:
		return "compare"
	case HighlightSwap:
		return "swap"
	case HighlightMatch:
		return "match"
	default:
		return "none"
	}
}

// Highlight marks the positions touched by the last move. Other is only set
// for swaps and is -1 otherwise.
type Highlight struct {
	Index int
	Other int
	Kind  HighlightKind
}

var noHighlight = Highlight{Index: -1, Other: -1, Kind: HighlightNone}

// Has reports whether position i is highlighted.
func (h Highlight) Has(i int) bool {
	return h.Kind != HighlightNone && (h.Index == i || h.Other == i)
}

// Color is the overall colour state of a frame. ColorProbe and ColorMatch
// only appear per element, see Frame.ColorAt.
type Color int

const (
	ColorIdle Color = iota
	ColorActive
	ColorComplete
	ColorSearch
	ColorProbe
	ColorMatch
)

func (c Color) String() string {
	switch c {
	case ColorActive:
		return "active"
	case ColorComplete:
		return "complete"
	case ColorSearch:
		return "search"
	case ColorProbe:
		return "probe"
	case ColorMatch:
		return "match"
	default:
		return "idle"
	}
}

type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSorted
	OutcomeFound
	OutcomeNotFound
	OutcomeStopped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSorted:
		return "sorted"
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not found"
	case OutcomeStopped:
		return "stopped"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Frame is everything a renderer needs after one step.
type Frame struct {
	Array     []int
	Highlight Highlight
	Label     string
	Detail    string
	Color     Color
	Outcome   Outcome
	Step      int
	Total     int
	Metrics   map[string]float64
}

// ColorAt returns the colour of element i: idle and complete frames are
// uniform, otherwise touched elements stand out against the active colour.
func (f Frame) ColorAt(i int) Color {
	switch {
	case f.Color == ColorIdle || f.Color == ColorComplete:
		return f.Color
	case f.Highlight.Kind == HighlightMatch && f.Highlight.Index == i:
		return ColorMatch
	case f.Highlight.Has(i):
		return ColorProbe
	default:
		return ColorActive
	}
}

// Terminal reports whether the frame ends its session.
func (f Frame) Terminal() bool { return f.Outcome != OutcomePending }

// Request describes one replay: the array as displayed when the run starts
// and the log computed from it.
type Request struct {
	Label   string
	Detail  string
	Mode    Mode
	Array   []int
	Log     moves.Log
	Target  int
	Elapsed time.Duration
}

type RenderFunc func(Frame)

// Metric observes every move applied during a replay.
type Metric interface {
	Name() string
	Observe(m moves.Move, live []int)
	Value() float64
	Reset()
}
