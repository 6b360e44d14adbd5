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

// HeapSort sorts x in ascending order in O(n log n) worst-case time.
func HeapSort[E constraints.Ordered](x []E) {
	HeapSortFunc(x, cmp.Compare[E])
}

// HeapSortFunc is HeapSort ordered by cmp.
func HeapSortFunc[E any](x []E, cmp func(a, b E) int) {
	n := len(x)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(x, i, n, cmp)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		x[0], x[i] = x[i], x[0]
		siftDown(x, 0, i, cmp)
	}
}

// siftDown restores the max-heap property of x[:n] below root.
func siftDown[E any](x []E, root, n int, cmp func(a, b E) int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && cmp(x[child], x[child+1]) < 0 {
			child++
		}
		if cmp(x[root], x[child]) >= 0 {
			return
		}
		x[root], x[child] = x[child], x[root]
		root = child
	}
}
