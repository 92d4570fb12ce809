package experiment

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/san-kum/algoviz/internal/search"
	"github.com/san-kum/algoviz/internal/sorts"
)

type Kind int

const (
	KindSort Kind = iota
	KindSearch
)

func (k Kind) String() string {
	if k == KindSearch {
		return "search"
	}
	return "sort"
}

// Info is what the UI shows about an algorithm.
type Info struct {
	Name       string
	Label      string
	Complexity string
	Kind       Kind
}

type sorter struct {
	info Info
	fn   sorts.Func
}

type searcher struct {
	info Info
	fn   search.Func
}

type Registry struct {
	sorters   map[string]sorter
	searchers map[string]searcher
}

func NewRegistry() *Registry {
	r := &Registry{
		sorters:   make(map[string]sorter),
		searchers: make(map[string]searcher),
	}

	r.addSorter("bubble", "Bubble Sort", "O(n^2)", sorts.Bubble)
	r.addSorter("insertion", "Insertion Sort", "O(n^2)", sorts.Insertion)
	r.addSorter("selection", "Selection Sort", "O(n^2)", sorts.Selection)
	r.addSorter("merge", "Merge Sort", "O(n log n)", sorts.Merge)

	r.addSearcher("linear", "Linear Search", "O(n)", search.Linear)
	r.addSearcher("binary", "Binary Search", "O(log n)", search.Binary)
	r.addSearcher("exponential", "Exponential Search", "O(log n)", search.Exponential)

	return r
}

func (r *Registry) addSorter(name, label, complexity string, fn sorts.Func) {
	r.sorters[name] = sorter{
		info: Info{Name: name, Label: label, Complexity: "Time Complexity: " + complexity, Kind: KindSort},
		fn:   fn,
	}
}

func (r *Registry) addSearcher(name, label, complexity string, fn search.Func) {
	r.searchers[name] = searcher{
		info: Info{Name: name, Label: label, Complexity: "Time Complexity: " + complexity, Kind: KindSearch},
		fn:   fn,
	}
}

func (r *Registry) GetSorter(name string) (sorts.Func, Info, error) {
	s, ok := r.sorters[name]
	if !ok {
		return nil, Info{}, fmt.Errorf("unknown algorithm: %s", name)
	}
	return s.fn, s.info, nil
}

func (r *Registry) GetSearcher(name string) (search.Func, Info, error) {
	s, ok := r.searchers[name]
	if !ok {
		return nil, Info{}, fmt.Errorf("unknown algorithm: %s", name)
	}
	return s.fn, s.info, nil
}

// Lookup finds an algorithm of either kind.
func (r *Registry) Lookup(name string) (Info, error) {
	if s, ok := r.sorters[name]; ok {
		return s.info, nil
	}
	if s, ok := r.searchers[name]; ok {
		return s.info, nil
	}
	return Info{}, fmt.Errorf("unknown algorithm: %s", name)
}

func (r *Registry) ListSorters() []string {
	names := lo.Keys(r.sorters)
	sort.Strings(names)
	return names
}

func (r *Registry) ListSearchers() []string {
	names := lo.Keys(r.searchers)
	sort.Strings(names)
	return names
}

// All lists sorters then searchers, each alphabetically.
func (r *Registry) All() []Info {
	infos := lo.Map(r.ListSorters(), func(name string, _ int) Info { return r.sorters[name].info })
	return append(infos, lo.Map(r.ListSearchers(), func(name string, _ int) Info {
		return r.searchers[name].info
	})...)
}
