package replay

import (
	"fmt"
	"sync/atomic"

	"github.com/san-kum/algoviz/internal/moves"
)

// Session is one replay from start to completion or cancellation. Its live
// array is only touched by the owning Scheduler.
type Session struct {
	id      uint64
	req     Request
	live    []int
	cursor  *moves.Cursor
	last    Highlight
	outcome atomic.Int32
	done    chan struct{}
}

func newSession(id uint64, req Request) *Session {
	live := make([]int, len(req.Array))
	copy(live, req.Array)
	return &Session{
		id:     id,
		req:    req,
		live:   live,
		cursor: req.Log.Cursor(),
		last:   noHighlight,
		done:   make(chan struct{}),
	}
}

func (s *Session) ID() uint64    { return s.id }
func (s *Session) Label() string { return s.req.Label }
func (s *Session) Mode() Mode    { return s.req.Mode }

// Done is closed once the final frame of the session has been rendered.
func (s *Session) Done() <-chan struct{} { return s.done }

// Outcome is OutcomePending until Done is closed.
func (s *Session) Outcome() Outcome { return Outcome(s.outcome.Load()) }

func (s *Session) finish(o Outcome) {
	s.outcome.Store(int32(o))
	close(s.done)
}

// advance applies the next move. It reports true when the returned frame is
// the last one of the session.
func (s *Session) advance(metrics []Metric) (Frame, bool) {
	m, ok := s.cursor.Next()
	if !ok {
		return s.complete(), true
	}

	if err := moves.Apply(s.live, m); err != nil {
		err = &moves.MoveError{Step: s.cursor.Pos() - 1, Move: m, Wrapped: err}
		f := s.frame(noHighlight, ColorIdle, OutcomeFailed)
		f.Detail = err.Error()
		return f, true
	}
	for _, metric := range metrics {
		metric.Observe(m, s.live)
	}

	switch m.Kind {
	case moves.KindSwap:
		s.last = Highlight{Index: m.I, Other: m.J, Kind: HighlightSwap}
	case moves.KindOverwrite:
		s.last = Highlight{Index: m.I, Other: -1, Kind: HighlightSwap}
	case moves.KindProbe:
		if m.Matched {
			s.last = Highlight{Index: m.I, Other: -1, Kind: HighlightMatch}
			f := s.frame(s.last, ColorSearch, OutcomeFound)
			f.Detail = fmt.Sprintf("Element %d found at index %d", s.req.Target, m.I)
			return f, true
		}
		s.last = Highlight{Index: m.I, Other: -1, Kind: HighlightCompare}
	}

	color := ColorActive
	if s.req.Mode == ModeSearch {
		color = ColorSearch
	}
	return s.frame(s.last, color, OutcomePending), false
}

func (s *Session) complete() Frame {
	if s.req.Mode == ModeSearch {
		f := s.frame(s.last, ColorSearch, OutcomeNotFound)
		f.Detail = fmt.Sprintf("Element %d not found", s.req.Target)
		return f
	}
	f := s.frame(noHighlight, ColorComplete, OutcomeSorted)
	f.Label = fmt.Sprintf("%s - Time Taken: %.4f seconds", s.req.Label, s.req.Elapsed.Seconds())
	f.Detail = ""
	return f
}

func (s *Session) stopFrame() Frame {
	f := s.frame(noHighlight, ColorIdle, OutcomeStopped)
	f.Label = ""
	f.Detail = "Sorting stopped."
	return f
}

func (s *Session) frame(h Highlight, c Color, o Outcome) Frame {
	array := make([]int, len(s.live))
	copy(array, s.live)
	return Frame{
		Array:     array,
		Highlight: h,
		Label:     s.req.Label,
		Detail:    s.req.Detail,
		Color:     c,
		Outcome:   o,
		Step:      s.cursor.Pos(),
		Total:     s.cursor.Len(),
	}
}
