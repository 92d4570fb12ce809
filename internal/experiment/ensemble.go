package experiment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/moves"
)

// Trial is one algorithm run on one generated array.
type Trial struct {
	Algorithm string
	Size      int
	Seed      int64
	Moves     int
	Swaps     int
	Writes    int
	Probes    int
	Elapsed   time.Duration
}

// Ensemble runs every algorithm over many seeded arrays per size. It is for
// benchmarks only; nothing here is animated.
type Ensemble struct {
	reg       *Registry
	numRuns   int
	seedStart int64
	pattern   dataset.Pattern
}

func NewEnsemble(reg *Registry, numRuns int, seedStart int64, pattern dataset.Pattern) *Ensemble {
	if numRuns < 1 {
		numRuns = 1
	}
	return &Ensemble{reg: reg, numRuns: numRuns, seedStart: seedStart, pattern: pattern}
}

func (e *Ensemble) Run(ctx context.Context, algorithms []string, sizes []int) ([]Trial, error) {
	for _, name := range algorithms {
		if _, err := e.reg.Lookup(name); err != nil {
			return nil, err
		}
	}

	type job struct {
		algorithm string
		size      int
		seed      int64
	}
	var jobs []job
	for _, name := range algorithms {
		for _, size := range sizes {
			for i := 0; i < e.numRuns; i++ {
				jobs = append(jobs, job{name, size, e.seedStart + int64(i)})
			}
		}
	}

	trials := make([]Trial, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(idx int, j job) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			trials[idx], errs[idx] = e.trial(j.algorithm, j.size, j.seed)
		}(i, j)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return trials, nil
}

func (e *Ensemble) trial(name string, size int, seed int64) (Trial, error) {
	rng := dataset.NewRand(seed)
	input, err := dataset.Generate(e.pattern, size, 1, 100, rng)
	if err != nil {
		return Trial{}, err
	}

	info, err := e.reg.Lookup(name)
	if err != nil {
		return Trial{}, err
	}

	var log moves.Log
	var elapsed time.Duration
	if info.Kind == KindSearch {
		target := 0
		if len(input) > 0 {
			target = input[rng.Intn(len(input))]
		}
		res, err := e.reg.RunSearch(name, input, target)
		if err != nil {
			return Trial{}, err
		}
		log, elapsed = res.Log, res.Elapsed
	} else {
		res, err := e.reg.RunSort(name, input)
		if err != nil {
			return Trial{}, err
		}
		log, elapsed = res.Log, res.Elapsed
	}

	return Trial{
		Algorithm: name,
		Size:      size,
		Seed:      seed,
		Moves:     len(log),
		Swaps:     log.Count(moves.KindSwap),
		Writes:    log.Count(moves.KindOverwrite),
		Probes:    log.Count(moves.KindProbe),
		Elapsed:   elapsed,
	}, nil
}

// Summary aggregates the trials of one algorithm at one size.
type Summary struct {
	Algorithm   string
	Size        int
	Runs        int
	MeanMoves   float64
	MinMoves    int
	MaxMoves    int
	MeanElapsed time.Duration
}

func Summarize(trials []Trial) []Summary {
	type key struct {
		algorithm string
		size      int
	}
	groups := lo.GroupBy(trials, func(t Trial) key { return key{t.Algorithm, t.Size} })

	out := make([]Summary, 0, len(groups))
	for k, group := range groups {
		counts := lo.Map(group, func(t Trial, _ int) int { return t.Moves })
		total := lo.SumBy(group, func(t Trial) time.Duration { return t.Elapsed })
		out = append(out, Summary{
			Algorithm:   k.algorithm,
			Size:        k.size,
			Runs:        len(group),
			MeanMoves:   float64(lo.Sum(counts)) / float64(len(group)),
			MinMoves:    lo.Min(counts),
			MaxMoves:    lo.Max(counts),
			MeanElapsed: total / time.Duration(len(group)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Algorithm != out[j].Algorithm {
			return out[i].Algorithm < out[j].Algorithm
		}
		return out[i].Size < out[j].Size
	})
	return out
}
