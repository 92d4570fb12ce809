package experiment

import (
	"sort"
	"time"

	"github.com/san-kum/algoviz/internal/moves"
)

type SortResult struct {
	Info    Info
	Input   []int
	Output  []int
	Log     moves.Log
	Elapsed time.Duration
}

type SearchResult struct {
	Info    Info
	Sorted  []int
	Target  int
	Log     moves.Log
	Index   int
	Found   bool
	Elapsed time.Duration
}

// RunSort runs the named sorter on a copy of input and times the call.
func (r *Registry) RunSort(name string, input []int) (*SortResult, error) {
	fn, info, err := r.GetSorter(name)
	if err != nil {
		return nil, err
	}

	snapshot := make([]int, len(input))
	copy(snapshot, input)

	start := time.Now()
	out, log := fn(snapshot)
	elapsed := time.Since(start)

	return &SortResult{Info: info, Input: snapshot, Output: out, Log: log, Elapsed: elapsed}, nil
}

// RunSearch sorts a copy of input and searches it for target.
func (r *Registry) RunSearch(name string, input []int, target int) (*SearchResult, error) {
	fn, info, err := r.GetSearcher(name)
	if err != nil {
		return nil, err
	}

	sorted := make([]int, len(input))
	copy(sorted, input)
	sort.Ints(sorted)

	start := time.Now()
	log := fn(sorted, target)
	elapsed := time.Since(start)

	idx, found := log.Found()
	if !found {
		idx = -1
	}
	return &SearchResult{
		Info:    info,
		Sorted:  sorted,
		Target:  target,
		Log:     log,
		Index:   idx,
		Found:   found,
		Elapsed: elapsed,
	}, nil
}
