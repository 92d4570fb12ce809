package replay_test

import (
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/replay"
)

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// manualClock records timers and fires them on demand, synchronously.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) replay.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Fire runs the oldest pending timer and reports whether there was one.
func (c *manualClock) Fire() bool {
	c.mu.Lock()
	var next *manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			next = t
			break
		}
	}
	if next != nil {
		next.fired = true
	}
	c.mu.Unlock()

	if next == nil {
		return false
	}
	next.fn()
	return true
}

// Drain fires timers until none are pending and returns how many ran.
func (c *manualClock) Drain() int {
	n := 0
	for c.Fire() {
		n++
	}
	return n
}

func (c *manualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (c *manualClock) All() []*manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*manualTimer, len(c.timers))
	copy(out, c.timers)
	return out
}

type recorder struct {
	mu     sync.Mutex
	frames []replay.Frame
}

func (r *recorder) Render(f replay.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
}

func (r *recorder) Frames() []replay.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]replay.Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

func (r *recorder) Last() replay.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return replay.Frame{}
	}
	return r.frames[len(r.frames)-1]
}
