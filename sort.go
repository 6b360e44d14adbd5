// Copyright 2025 go-introsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package introsort

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Thresholds for different sorting strategies.
const (
	// insertionThreshold: use insertion sort for ranges this size or smaller.
	insertionThreshold = 24

	// ninthersThreshold: ranges larger than this pick the pivot as the
	// median of three medians-of-three.
	ninthersThreshold = 128
)

// Sort sorts x in ascending order.
//
// Floating point values follow cmp.Compare: NaNs sort before all other
// values and -0 equals +0. Use SortFloats for a total order.
func Sort[E constraints.Ordered](x []E) {
	SortFunc(x, cmp.Compare[E])
}

// SortFunc sorts x in ascending order as determined by cmp, which must
// return a negative number when a < b, a positive number when a > b and zero
// otherwise. cmp must be a strict weak ordering; an inconsistent cmp leaves x
// in an unspecified order but still a permutation of its input.
//
// Panics raised by cmp propagate to the caller.
func SortFunc[E any](x []E, cmp func(a, b E) int) {
	n := len(x)
	if n <= 1 {
		return
	}
	sortImpl(x, cmp, depthBudget(n))
}

// depthBudget returns the recursion depth after which the driver gives up
// on partitioning: 2 * floor(log2(n)+1).
func depthBudget(n int) int {
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	return maxDepth * 2
}

// sortImpl is the recursive implementation of SortFunc.
func sortImpl[E any](x []E, cmp func(a, b E) int, depthLimit int) {
	if len(x) <= insertionThreshold {
		InsertionSortFunc(x, cmp)
		return
	}

	// Fallback to heapsort if recursion too deep
	if depthLimit == 0 {
		HeapSortFunc(x, cmp)
		return
	}

	p := partition(x, cmp)
	sortImpl(x[:p], cmp, depthLimit-1)
	sortImpl(x[p+1:], cmp, depthLimit-1)
}

// partition moves the chosen pivot to its final position p and returns p.
// Afterwards x[:p] <= x[p] <= x[p+1:].
//
// Both scans stop on keys equal to the pivot so long equal runs split
// evenly. Every scan is bounded by the other cursor, so an inconsistent
// comparator cannot push an index out of range.
func partition[E any](x []E, cmp func(a, b E) int) int {
	m := choosePivot(x, cmp)
	x[0], x[m] = x[m], x[0]
	pivot := x[0]

	i, j := 1, len(x)-1
	for {
		for i <= j && cmp(x[i], pivot) < 0 {
			i++
		}
		for i <= j && cmp(x[j], pivot) > 0 {
			j--
		}
		if i > j {
			break
		}
		x[i], x[j] = x[j], x[i]
		i++
		j--
	}
	x[0], x[j] = x[j], x[0]
	return j
}

// choosePivot returns the index of the pivot: the median of first, middle
// and last for small ranges, Tukey's ninther for large ones.
func choosePivot[E any](x []E, cmp func(a, b E) int) int {
	n := len(x)
	a, b, c := 0, n/2, n-1
	if n > ninthersThreshold {
		s := n / 8
		a = median(x, a, a+s, a+2*s, cmp)
		b = median(x, b-s, b, b+s, cmp)
		c = median(x, c-2*s, c-s, c, cmp)
	}
	return median(x, a, b, c, cmp)
}

// median returns whichever of a, b, c indexes the median of the three values.
func median[E any](x []E, a, b, c int, cmp func(a, b E) int) int {
	if cmp(x[b], x[a]) < 0 {
		a, b = b, a
	}
	// x[a] <= x[b]
	if cmp(x[c], x[b]) < 0 {
		if cmp(x[c], x[a]) < 0 {
			return a
		}
		return c
	}
	return b
}

// NthElement rearranges x such that the element at index k
// is the element that would be at that position if x were sorted.
// Elements before k are <= x[k], elements after are >= x[k].
func NthElement[E constraints.Ordered](x []E, k int) {
	NthElementFunc(x, k, cmp.Compare[E])
}

// NthElementFunc is NthElement ordered by cmp.
// An out-of-range k leaves x untouched.
func NthElementFunc[E any](x []E, k int, cmp func(a, b E) int) {
	n := len(x)
	if k < 0 || k >= n {
		return
	}
	nthElementImpl(x, k, cmp, depthBudget(n))
}

func nthElementImpl[E any](x []E, k int, cmp func(a, b E) int, depthLimit int) {
	if len(x) <= insertionThreshold {
		InsertionSortFunc(x, cmp)
		return
	}
	if depthLimit == 0 {
		HeapSortFunc(x, cmp)
		return
	}

	p := partition(x, cmp)
	if k < p {
		nthElementImpl(x[:p], k, cmp, depthLimit-1)
	} else if k > p {
		nthElementImpl(x[p+1:], k-p-1, cmp, depthLimit-1)
	}
	// k == p: the pivot is already in place
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	return IsSortedFunc(x, cmp.Compare[E])
}

// IsSortedFunc reports whether x is sorted in ascending order as determined
// by cmp.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}
