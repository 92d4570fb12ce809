// Package app ties the registry, the array and the replay scheduler together
// behind the operations a front end needs.
package app

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/replay"
)

// App owns the displayed array. Starting any run stops the current one first.
type App struct {
	// opMu serializes operations; mu guards the fields below it and is the
	// only lock taken from the render path.
	opMu sync.Mutex
	mu   sync.Mutex
	cfg  config.Config
	rng  *rand.Rand
	arr  []int
	info experiment.Info

	reg    *experiment.Registry
	sched  *replay.Scheduler
	render replay.RenderFunc
}

func New(cfg *config.Config, render replay.RenderFunc, opts ...replay.Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		cfg:    *cfg,
		rng:    dataset.NewRand(cfg.Seed),
		reg:    experiment.NewRegistry(),
		render: render,
	}
	arr, err := a.generate()
	if err != nil {
		return nil, err
	}
	a.arr = arr

	opts = append([]replay.Option{replay.WithDelay(cfg.Speed())}, opts...)
	a.sched = replay.New(a.onFrame, opts...)
	for _, m := range metrics.Default() {
		a.sched.AddMetric(m)
	}
	return a, nil
}

func (a *App) onFrame(f replay.Frame) {
	a.mu.Lock()
	a.arr = append(a.arr[:0], f.Array...)
	a.mu.Unlock()

	if a.render != nil {
		a.render(f)
	}
}

func (a *App) generate() ([]int, error) {
	p, err := dataset.ParsePattern(a.cfg.Pattern)
	if err != nil {
		return nil, err
	}
	return dataset.Generate(p, a.cfg.Size, a.cfg.MinValue, a.cfg.MaxValue, a.rng)
}

func (a *App) Registry() *experiment.Registry { return a.reg }

func (a *App) Scheduler() *replay.Scheduler { return a.sched }

// StartSort computes the full log for the displayed array and starts
// replaying it.
func (a *App) StartSort(name string) (*replay.Session, error) {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	if _, _, err := a.reg.GetSorter(name); err != nil {
		return nil, err
	}
	a.sched.Stop()

	res, err := a.reg.RunSort(name, a.Array())
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.info = res.Info
	a.mu.Unlock()

	return a.sched.Start(replay.Request{
		Label:   res.Info.Label,
		Detail:  res.Info.Complexity,
		Mode:    replay.ModeSort,
		Array:   res.Input,
		Log:     res.Log,
		Elapsed: res.Elapsed,
	}), nil
}

// StartSearch sorts the displayed array, shows the sorted copy and replays
// the search for target over it.
func (a *App) StartSearch(name string, target int) (*replay.Session, error) {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	if _, _, err := a.reg.GetSearcher(name); err != nil {
		return nil, err
	}
	a.sched.Stop()

	res, err := a.reg.RunSearch(name, a.Array(), target)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.arr = append(a.arr[:0], res.Sorted...)
	a.info = res.Info
	a.mu.Unlock()

	return a.sched.Start(replay.Request{
		Label:   res.Info.Label,
		Detail:  res.Info.Complexity,
		Mode:    replay.ModeSearch,
		Array:   res.Sorted,
		Log:     res.Log,
		Target:  target,
		Elapsed: res.Elapsed,
	}), nil
}

// Play replays a request built elsewhere, such as a loaded trace. The
// request's array becomes the displayed array.
func (a *App) Play(req replay.Request) *replay.Session {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	a.sched.Stop()
	a.mu.Lock()
	a.arr = append(a.arr[:0], req.Array...)
	a.info = experiment.Info{Label: req.Label, Complexity: req.Detail}
	a.mu.Unlock()
	return a.sched.Start(req)
}

// Start runs the named algorithm of either kind.
func (a *App) Start(name string, target int) (*replay.Session, error) {
	info, err := a.reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	if info.Kind == experiment.KindSearch {
		return a.StartSearch(name, target)
	}
	return a.StartSort(name)
}

// Stop cancels the running replay. The array keeps every move applied so far.
func (a *App) Stop() bool {
	a.opMu.Lock()
	defer a.opMu.Unlock()
	return a.sched.Stop()
}

func (a *App) Running() bool {
	return a.sched.State() == replay.Running
}

// Regenerate replaces the array with a fresh one from the current settings.
func (a *App) Regenerate() error {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	a.sched.Stop()
	arr, err := a.generate()
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.arr = arr
	a.mu.Unlock()
	return nil
}

func (a *App) SetArray(values []int) {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	a.sched.Stop()
	a.mu.Lock()
	a.arr = append([]int(nil), values...)
	a.mu.Unlock()
}

func (a *App) Array() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]int, len(a.arr))
	copy(out, a.arr)
	return out
}

// SetSize changes the array size and regenerates.
func (a *App) SetSize(n int) error {
	a.mu.Lock()
	next := a.cfg
	a.mu.Unlock()

	next.Size = n
	if err := next.Validate(); err != nil {
		return err
	}
	a.mu.Lock()
	a.cfg.Size = n
	a.mu.Unlock()
	return a.Regenerate()
}

// SetPattern switches the dataset pattern and regenerates.
func (a *App) SetPattern(name string) error {
	p, err := dataset.ParsePattern(name)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.cfg.Pattern = string(p)
	a.mu.Unlock()
	return a.Regenerate()
}

func (a *App) SetSpeed(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w (got %v)", config.ErrInvalidSpeed, d)
	}
	a.mu.Lock()
	a.cfg.SpeedMs = int(d / time.Millisecond)
	a.mu.Unlock()
	a.sched.SetDelay(d)
	return nil
}

func (a *App) Speed() time.Duration {
	return a.sched.Delay()
}

func (a *App) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Info describes the most recently started algorithm.
func (a *App) Info() experiment.Info {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.info
}

// RandomTarget picks a value from the array, or any value in range when
// the array is empty.
func (a *App) RandomTarget() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.arr) == 0 {
		return a.cfg.MinValue + a.rng.Intn(a.cfg.MaxValue-a.cfg.MinValue+1)
	}
	return a.arr[a.rng.Intn(len(a.arr))]
}

// Sorted reports whether the displayed array is in non-decreasing order.
func (a *App) Sorted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return sort.IntsAreSorted(a.arr)
}
