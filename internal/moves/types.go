package moves

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	KindSwap Kind = iota + 1
	KindOverwrite
	KindProbe
)

var kindNames = map[Kind]string{
	KindSwap:      "swap",
	KindOverwrite: "overwrite",
	KindProbe:     "probe",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, name := range kindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Move is one atomic step recorded by an algorithm. J is only meaningful for
// swaps, Value for overwrites and Matched for probes.
type Move struct {
	Kind    Kind `json:"kind"`
	I       int  `json:"i"`
	J       int  `json:"j,omitempty"`
	Value   int  `json:"value,omitempty"`
	Matched bool `json:"matched,omitempty"`
}

func Swap(i, j int) Move             { return Move{Kind: KindSwap, I: i, J: j} }
func Overwrite(i, value int) Move    { return Move{Kind: KindOverwrite, I: i, Value: value} }
func Probe(i int, matched bool) Move { return Move{Kind: KindProbe, I: i, Matched: matched} }

func (m Move) IsSwap() bool      { return m.Kind == KindSwap }
func (m Move) IsOverwrite() bool { return m.Kind == KindOverwrite }
func (m Move) IsProbe() bool     { return m.Kind == KindProbe }

// Shift moves the addressed positions by delta.
func (m Move) Shift(delta int) Move {
	m.I += delta
	if m.Kind == KindSwap {
		m.J += delta
	}
	return m
}

func (m Move) String() string {
	switch m.Kind {
	case KindSwap:
		return fmt.Sprintf("swap(%d,%d)", m.I, m.J)
	case KindOverwrite:
		return fmt.Sprintf("overwrite(%d=%d)", m.I, m.Value)
	case KindProbe:
		if m.Matched {
			return fmt.Sprintf("probe(%d,match)", m.I)
		}
		return fmt.Sprintf("probe(%d)", m.I)
	}
	return m.Kind.String()
}

// Apply mutates live according to m. Probes leave the array untouched but
// are still bounds checked.
func Apply(live []int, m Move) error {
	if m.I < 0 || m.I >= len(live) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, m.I, len(live))
	}
	switch m.Kind {
	case KindSwap:
		if m.J < 0 || m.J >= len(live) {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, m.J, len(live))
		}
		live[m.I], live[m.J] = live[m.J], live[m.I]
	case KindOverwrite:
		live[m.I] = m.Value
	case KindProbe:
	default:
		return ErrUnknownKind
	}
	return nil
}

// Log is an ordered, eagerly produced sequence of moves.
type Log []Move

// Replay applies every move to a copy of snapshot and returns the copy.
func (l Log) Replay(snapshot []int) ([]int, error) {
	live := make([]int, len(snapshot))
	copy(live, snapshot)
	for step, m := range l {
		if err := Apply(live, m); err != nil {
			return live, &MoveError{Step: step, Move: m, Wrapped: err}
		}
	}
	return live, nil
}

// Offset returns a new log with every index shifted by delta.
func (l Log) Offset(delta int) Log {
	out := make(Log, len(l))
	for i, m := range l {
		out[i] = m.Shift(delta)
	}
	return out
}

func (l Log) Count(kind Kind) int {
	n := 0
	for _, m := range l {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the final move of the log.
func (l Log) Last() (Move, bool) {
	if len(l) == 0 {
		return Move{}, false
	}
	return l[len(l)-1], true
}

// Found reports where a search log located its target. Only the last move
// counts: a search log ends at its first match.
func (l Log) Found() (int, bool) {
	last, ok := l.Last()
	if !ok || !last.IsProbe() || !last.Matched {
		return -1, false
	}
	return last.I, true
}

func (l Log) Cursor() *Cursor {
	return &Cursor{log: l}
}
