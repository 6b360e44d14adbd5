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

// InsertionSort sorts x in ascending order by insertion.
// It runs in O(n^2) time and is meant for small or nearly sorted slices.
func InsertionSort[E constraints.Ordered](x []E) {
	InsertionSortFunc(x, cmp.Compare[E])
}

// InsertionSortFunc is InsertionSort ordered by cmp.
//
// Elements move by pairwise swaps only, so a panicking cmp leaves x a
// permutation of its input.
func InsertionSortFunc[E any](x []E, cmp func(a, b E) int) {
	for i := 1; i < len(x); i++ {
		for j := i; j > 0 && cmp(x[j], x[j-1]) < 0; j-- {
			x[j], x[j-1] = x[j-1], x[j]
		}
	}
}
