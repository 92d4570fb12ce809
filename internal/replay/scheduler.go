package replay

import (
	"sync"
	"time"
)

const (
	DefaultDelay = 500 * time.Millisecond
	MinDelay     = 10 * time.Millisecond
)

// Timer is a cancellable handle for one scheduled tick.
type Timer interface {
	Stop() bool
}

// Clock schedules ticks. The zero-configuration Scheduler uses time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

type Option func(*Scheduler)

func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

func WithDelay(d time.Duration) Option {
	return func(s *Scheduler) { s.delay = d }
}

// Scheduler drives a single replay session at a time.
type Scheduler struct {
	clock  Clock
	render RenderFunc

	// renderMu orders frame emission; mu guards everything below it.
	renderMu sync.Mutex
	mu       sync.Mutex
	delay    time.Duration
	state    State
	session  *Session
	timer    Timer
	nextID   uint64
	metrics  []Metric
	last     Frame
}

func New(render RenderFunc, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:  realClock{},
		render: render,
		delay:  DefaultDelay,
		state:  Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheduler) AddMetric(m Metric) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = append(s.metrics, m)
}

func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) Delay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delay
}

// SetDelay changes the pause between ticks, starting with the next one armed.
func (s *Scheduler) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()
}

// Last returns the most recently emitted frame.
func (s *Scheduler) Last() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Active returns the running session, or nil.
func (s *Scheduler) Active() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Start replaces any running session with a new one built from req. The
// replaced session is stopped first and its stop frame is emitted before
// any frame of the new session.
func (s *Scheduler) Start(req Request) *Session {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	s.mu.Lock()
	stopFrame, stopped, wasRunning := s.stopLocked()
	s.nextID++
	sess := newSession(s.nextID, req)
	for _, m := range s.metrics {
		m.Reset()
	}
	s.session = sess
	s.state = Running
	id := sess.id
	s.timer = s.clock.AfterFunc(0, func() { s.tick(id) })
	s.mu.Unlock()

	if wasRunning {
		s.emit(stopFrame)
		stopped.finish(OutcomeStopped)
	}
	return sess
}

// Stop cancels the running session. It reports false when nothing was
// running.
func (s *Scheduler) Stop() bool {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	s.mu.Lock()
	frame, sess, ok := s.stopLocked()
	s.mu.Unlock()
	if !ok {
		return false
	}

	s.emit(frame)

	s.mu.Lock()
	if s.state == Stopped {
		s.state = Idle
	}
	s.mu.Unlock()

	sess.finish(OutcomeStopped)
	return true
}

func (s *Scheduler) stopLocked() (Frame, *Session, bool) {
	if s.state != Running || s.session == nil {
		return Frame{}, nil, false
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	sess := s.session
	frame := sess.stopFrame()
	frame.Metrics = s.metricValues()
	s.session = nil
	s.state = Stopped
	s.last = frame
	return frame, sess, true
}

func (s *Scheduler) tick(id uint64) {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	s.mu.Lock()
	sess := s.session
	if s.state != Running || sess == nil || sess.id != id {
		s.mu.Unlock()
		return
	}

	frame, done := sess.advance(s.metrics)
	frame.Metrics = s.metricValues()
	if done {
		s.session = nil
		s.timer = nil
		s.state = Idle
	} else {
		s.timer = s.clock.AfterFunc(s.delay, func() { s.tick(id) })
	}
	s.last = frame
	s.mu.Unlock()

	s.emit(frame)
	if done {
		sess.finish(frame.Outcome)
	}
}

func (s *Scheduler) metricValues() map[string]float64 {
	if len(s.metrics) == 0 {
		return nil
	}
	values := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		values[m.Name()] = m.Value()
	}
	return values
}

func (s *Scheduler) emit(f Frame) {
	if s.render != nil {
		s.render(f)
	}
}
