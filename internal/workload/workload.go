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

// Package workload generates deterministic sort inputs: random data, the
// patterns that hurt naive quicksorts, and floats salted with NaNs, signed
// zeros and infinities.
package workload

import (
	"cmp"
	"math"
	"math/rand"
)

// Input is a slice to sort together with the comparator that orders it.
type Input struct {
	Data    []int
	Compare func(a, b int) int
}

// Pattern names a family of generated inputs.
type Pattern struct {
	Name string
	Gen  func(n int, seed int64) Input
}

var patterns = []Pattern{
	{"random", ordered(Random)},
	{"sorted", ordered(Sorted)},
	{"reversed", ordered(Reversed)},
	{"organpipe", ordered(OrganPipe)},
	{"allequal", ordered(AllEqual)},
	{"fewunique", ordered(FewUnique)},
	{"sawtooth", ordered(Sawtooth)},
	{"adversary", func(n int, _ int64) Input { return Adversary(n) }},
}

// Patterns returns every named pattern.
func Patterns() []Pattern {
	return append([]Pattern(nil), patterns...)
}

// ByName looks up a pattern returned by Patterns.
func ByName(name string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

func ordered(gen func(n int, seed int64) []int) func(n int, seed int64) Input {
	return func(n int, seed int64) Input {
		return Input{Data: gen(n, seed), Compare: cmp.Compare[int]}
	}
}

// Random returns n values drawn uniformly from [0, 4n).
func Random(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(4*n + 1)
	}
	return data
}

// Sorted returns 0, 1, ..., n-1.
func Sorted(n int, _ int64) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// Reversed returns n-1, n-2, ..., 0.
func Reversed(n int, _ int64) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - 1 - i
	}
	return data
}

// OrganPipe ascends to the middle and descends back.
func OrganPipe(n int, _ int64) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = min(i, n-1-i)
	}
	return data
}

// AllEqual returns n copies of one value.
func AllEqual(n int, _ int64) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = 7
	}
	return data
}

// FewUnique returns random values from a set of eight.
func FewUnique(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(8)
	}
	return data
}

// Sawtooth returns ascending runs of 64.
func Sawtooth(n int, _ int64) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i % 64
	}
	return data
}

// Adversary returns McIlroy's "killer adversary" for quicksort: the data
// are the indices 0..n-1 and the comparator decides their values lazily, so
// that whatever the sort picks as a pivot ends up near the bottom of the
// order. Any quicksort that compares the pivot against the rest of the range
// degrades to quadratic time against it.
//
// The comparator is stateful; use each Input for a single sort.
func Adversary(n int) Input {
	gas := n
	val := make([]int, n)
	for i := range val {
		val[i] = gas
	}
	solid := 0
	candidate := 0

	freeze := func(i int) {
		val[i] = solid
		solid++
	}
	compare := func(a, b int) int {
		if val[a] == gas && val[b] == gas {
			if a == candidate {
				freeze(a)
			} else {
				freeze(b)
			}
		}
		if val[a] == gas {
			candidate = a
		} else if val[b] == gas {
			candidate = b
		}
		return cmp.Compare(val[a], val[b])
	}
	return Input{Data: Sorted(n, 0), Compare: compare}
}

// Mix sets the fraction of special values in Floats. The remainder are
// finite non-zero values.
type Mix struct {
	NaN  float64
	Zero float64
	Inf  float64
}

// Floats returns n floats in [-1000, 1000) salted according to mix. Zeros
// and infinities take either sign with equal probability.
func Floats(n int, seed int64, mix Mix) []float64 {
	r := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		sign := 1.0
		if r.Intn(2) == 0 {
			sign = -1
		}
		switch p := r.Float64(); {
		case p < mix.NaN:
			data[i] = math.NaN()
		case p < mix.NaN+mix.Zero:
			data[i] = math.Copysign(0, sign)
		case p < mix.NaN+mix.Zero+mix.Inf:
			data[i] = math.Inf(int(sign))
		default:
			v := (r.Float64() - 0.5) * 2000
			if v == 0 {
				v = sign
			}
			data[i] = v
		}
	}
	return data
}

// Float32s converts data to float32, keeping the sign of zeros and NaNs.
func Float32s(data []float64) []float32 {
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v)
	}
	return out
}
