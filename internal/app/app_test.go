package app

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/moves"
	"github.com/san-kum/algoviz/internal/replay"
)

type stepTimer struct {
	fn      func()
	stopped bool
}

func (t *stepTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type stepClock struct {
	mu      sync.Mutex
	pending []*stepTimer
}

func (c *stepClock) AfterFunc(d time.Duration, f func()) replay.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &stepTimer{fn: f}
	c.pending = append(c.pending, t)
	return t
}

func (c *stepClock) step() bool {
	c.mu.Lock()
	var next *stepTimer
	for len(c.pending) > 0 && next == nil {
		t := c.pending[0]
		c.pending = c.pending[1:]
		if !t.stopped {
			next = t
		}
	}
	c.mu.Unlock()
	if next == nil {
		return false
	}
	next.stopped = true
	next.fn()
	return true
}

func (c *stepClock) drain() {
	for c.step() {
	}
}

func newTestApp(t *testing.T) (*App, *stepClock, *[]replay.Frame) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 11
	clock := &stepClock{}
	var frames []replay.Frame
	a, err := New(cfg, func(f replay.Frame) { frames = append(frames, f) }, replay.WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	return a, clock, &frames
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxValue = cfg.MinValue
	if _, err := New(cfg, nil); !errors.Is(err, config.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestStartSortCompletes(t *testing.T) {
	a, clock, frames := newTestApp(t)
	a.SetArray([]int{5, 3, 8, 1})

	sess, err := a.StartSort("insertion")
	if err != nil {
		t.Fatal(err)
	}
	clock.drain()

	if diff := cmp.Diff([]int{1, 3, 5, 8}, a.Array()); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
	if sess.Outcome() != replay.OutcomeSorted {
		t.Errorf("expected sorted outcome, got %v", sess.Outcome())
	}
	last := (*frames)[len(*frames)-1]
	if last.Metrics["swaps"] != 4 {
		t.Errorf("expected 4 swaps, got %v", last.Metrics["swaps"])
	}
	if a.Info().Label != "Insertion Sort" {
		t.Errorf("unexpected info %+v", a.Info())
	}
}

func TestStopKeepsPartialArray(t *testing.T) {
	a, clock, _ := newTestApp(t)
	a.SetArray([]int{4, 3, 2, 1})

	if _, err := a.StartSort("bubble"); err != nil {
		t.Fatal(err)
	}
	clock.step()
	clock.step()
	if !a.Stop() {
		t.Fatal("expected a running replay to stop")
	}

	// bubble on 4,3,2,1 swaps (0,1) then (1,2)
	if diff := cmp.Diff([]int{3, 2, 4, 1}, a.Array()); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
	if a.Running() {
		t.Error("expected idle after stop")
	}
	if a.Stop() {
		t.Error("second stop should report nothing to stop")
	}
	if clock.step() {
		t.Error("no tick should remain after stop")
	}
}

func TestRestartUsesDisplayedArray(t *testing.T) {
	a, clock, _ := newTestApp(t)
	a.SetArray([]int{4, 3, 2, 1})

	if _, err := a.StartSort("bubble"); err != nil {
		t.Fatal(err)
	}
	clock.step()

	sess, err := a.StartSort("selection")
	if err != nil {
		t.Fatal(err)
	}
	clock.drain()

	if diff := cmp.Diff([]int{1, 2, 3, 4}, a.Array()); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
	if sess.Outcome() != replay.OutcomeSorted {
		t.Errorf("expected sorted, got %v", sess.Outcome())
	}
}

func TestStartSearch(t *testing.T) {
	a, clock, frames := newTestApp(t)
	a.SetArray([]int{9, 2, 7, 4})

	sess, err := a.StartSearch("binary", 7)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2, 4, 7, 9}, a.Array()); diff != "" {
		t.Errorf("search should display the sorted array (-want +got):\n%s", diff)
	}
	clock.drain()

	if sess.Outcome() != replay.OutcomeFound {
		t.Errorf("expected found, got %v", sess.Outcome())
	}
	last := (*frames)[len(*frames)-1]
	if last.Detail != "Element 7 found at index 2" {
		t.Errorf("unexpected detail %q", last.Detail)
	}
}

func TestStartDispatchesByKind(t *testing.T) {
	a, clock, _ := newTestApp(t)
	a.SetArray([]int{3, 1, 2})

	sess, err := a.Start("exponential", 10)
	if err != nil {
		t.Fatal(err)
	}
	clock.drain()
	if sess.Mode() != replay.ModeSearch || sess.Outcome() != replay.OutcomeNotFound {
		t.Errorf("expected search not found, got %v/%v", sess.Mode(), sess.Outcome())
	}

	if _, err := a.Start("bogo", 0); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestDegenerateArrays(t *testing.T) {
	for _, arr := range [][]int{{}, {42}} {
		a, clock, _ := newTestApp(t)
		a.SetArray(arr)

		for _, name := range a.Registry().ListSorters() {
			sess, err := a.StartSort(name)
			if err != nil {
				t.Fatal(err)
			}
			clock.drain()
			if sess.Outcome() != replay.OutcomeSorted {
				t.Errorf("%s on %v: expected sorted, got %v", name, arr, sess.Outcome())
			}
		}
		for _, name := range a.Registry().ListSearchers() {
			if _, err := a.StartSearch(name, 42); err != nil {
				t.Fatal(err)
			}
			clock.drain()
		}
	}
}

func TestRegenerateAndSize(t *testing.T) {
	a, _, _ := newTestApp(t)

	if err := a.SetSize(7); err != nil {
		t.Fatal(err)
	}
	if got := len(a.Array()); got != 7 {
		t.Errorf("expected 7 values, got %d", got)
	}
	if err := a.SetSize(0); !errors.Is(err, config.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
	for _, v := range a.Array() {
		if v < 1 || v > 100 {
			t.Errorf("value %d out of range", v)
		}
	}
	if err := a.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if got := len(a.Array()); got != 7 {
		t.Errorf("regenerate changed size to %d", got)
	}

	if err := a.SetPattern("sorted"); err != nil {
		t.Fatal(err)
	}
	if !a.Sorted() {
		t.Errorf("sorted pattern gave %v", a.Array())
	}
	if err := a.SetPattern("zigzag"); !errors.Is(err, dataset.ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
	if a.Config().Pattern != "sorted" {
		t.Errorf("failed pattern change should keep %q, got %q", "sorted", a.Config().Pattern)
	}
}

func TestSetSpeed(t *testing.T) {
	a, _, _ := newTestApp(t)

	if err := a.SetSpeed(-time.Second); !errors.Is(err, config.ErrInvalidSpeed) {
		t.Errorf("expected ErrInvalidSpeed, got %v", err)
	}
	if err := a.SetSpeed(50 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if a.Speed() != 50*time.Millisecond || a.Config().SpeedMs != 50 {
		t.Errorf("speed not applied: %v / %d", a.Speed(), a.Config().SpeedMs)
	}
}

func TestRandomTarget(t *testing.T) {
	a, _, _ := newTestApp(t)
	arr := a.Array()
	sort.Ints(arr)
	target := a.RandomTarget()
	if i := sort.SearchInts(arr, target); i == len(arr) || arr[i] != target {
		t.Errorf("target %d not in array", target)
	}
}

func TestPlay(t *testing.T) {
	a, clock, frames := newTestApp(t)

	sess := a.Play(replay.Request{
		Label: "Loaded",
		Mode:  replay.ModeSort,
		Array: []int{2, 1, 3},
		Log:   moves.Log{moves.Swap(0, 1)},
	})
	if diff := cmp.Diff([]int{2, 1, 3}, a.Array()); diff != "" {
		t.Errorf("play should show the request array (-want +got):\n%s", diff)
	}
	clock.drain()

	if sess.Outcome() != replay.OutcomeSorted {
		t.Errorf("outcome = %v", sess.Outcome())
	}
	if diff := cmp.Diff([]int{1, 2, 3}, a.Array()); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
	if a.Info().Label != "Loaded" || len(*frames) != 2 {
		t.Errorf("info %+v, %d frames", a.Info(), len(*frames))
	}
}
