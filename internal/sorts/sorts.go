package sorts

import "github.com/san-kum/algoviz/internal/moves"

// Func is the common signature of every sorting algorithm.
type Func func(snapshot []int) ([]int, moves.Log)

func clone(a []int) []int {
	c := make([]int, len(a))
	copy(c, a)
	return c
}

// Bubble repeats adjacent passes until one makes no swap.
func Bubble(snapshot []int) ([]int, moves.Log) {
	a := clone(snapshot)
	log := moves.Log{}
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i < len(a)-1; i++ {
			if a[i] > a[i+1] {
				a[i], a[i+1] = a[i+1], a[i]
				log = append(log, moves.Swap(i, i+1))
				swapped = true
			}
		}
	}
	return a, log
}

// Insertion shifts each element left while its neighbour is strictly greater.
func Insertion(snapshot []int) ([]int, moves.Log) {
	a := clone(snapshot)
	log := moves.Log{}
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
			log = append(log, moves.Swap(j, j-1))
		}
	}
	return a, log
}

// Selection swaps the suffix minimum into place, skipping no-op swaps.
func Selection(snapshot []int) ([]int, moves.Log) {
	a := clone(snapshot)
	log := moves.Log{}
	for i := 0; i < len(a); i++ {
		minIndex := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[minIndex] {
				minIndex = j
			}
		}
		if minIndex != i {
			a[i], a[minIndex] = a[minIndex], a[i]
			log = append(log, moves.Swap(i, minIndex))
		}
	}
	return a, log
}

// Merge is a top-down stable merge sort. Each value written back into the
// range during a merge is logged as an overwrite.
func Merge(snapshot []int) ([]int, moves.Log) {
	m := &merger{a: clone(snapshot), log: moves.Log{}}
	m.sort(0, len(m.a)-1)
	return m.a, m.log
}

type merger struct {
	a   []int
	log moves.Log
}

func (m *merger) sort(l, r int) {
	if l >= r {
		return
	}
	mid := l + (r-l)/2
	m.sort(l, mid)
	m.sort(mid+1, r)
	m.merge(l, mid, r)
}

func (m *merger) merge(l, mid, r int) {
	left := clone(m.a[l : mid+1])
	right := clone(m.a[mid+1 : r+1])

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			m.write(k, left[i])
			i++
		} else {
			m.write(k, right[j])
			j++
		}
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		m.write(k, left[i])
	}
	for ; j < len(right); j, k = j+1, k+1 {
		m.write(k, right[j])
	}
}

func (m *merger) write(k, v int) {
	m.a[k] = v
	m.log = append(m.log, moves.Overwrite(k, v))
}
