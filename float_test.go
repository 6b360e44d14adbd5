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
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-introsort/internal/workload"
)

var (
	nan    = math.NaN()
	inf    = math.Inf(1)
	negZ   = math.Copysign(0, -1)
	spread = workload.Mix{NaN: 0.05, Zero: 0.1, Inf: 0.02}
)

// bits returns the IEEE bit patterns of x so that -0 and +0 compare unequal.
func bits[F constraints.Float](x []F) []uint64 {
	out := make([]uint64, len(x))
	for i, v := range x {
		out[i] = math.Float64bits(float64(v))
	}
	return out
}

// TestSortFloatsTotalOrder sorts one of every class of value
func TestSortFloatsTotalOrder(t *testing.T) {
	data := []float64{1.0, -1.0, nan, 0.0, negZ, inf, -inf, nan, 2.0}
	SortFloats(data)

	want := []float64{-inf, -1.0, negZ, 0.0, 1.0, 2.0, inf}
	if diff := cmp.Diff(bits(want), bits(data[:7])); diff != "" {
		t.Errorf("SortFloats prefix mismatch (-want +got):\n%s\ngot %v", diff, data)
	}
	for i := 7; i < 9; i++ {
		if !math.IsNaN(data[i]) {
			t.Errorf("SortFloats: data[%d] = %v, want NaN", i, data[i])
		}
	}
}

// TestSortFloatsSignedZeros tests a slice made of zeros only
func TestSortFloatsSignedZeros(t *testing.T) {
	data := []float64{0.0, negZ, 0.0, negZ}
	SortFloats(data)
	want := []float64{negZ, negZ, 0.0, 0.0}
	if diff := cmp.Diff(bits(want), bits(data)); diff != "" {
		t.Errorf("SortFloats(zeros) mismatch (-want +got):\n%s", diff)
	}
}

// TestSortFloatsFloat32 runs the total order scenario on float32
func TestSortFloatsFloat32(t *testing.T) {
	nan32 := float32(nan)
	negZ32 := float32(negZ)
	inf32 := float32(inf)

	data := []float32{0, 3, nan32, negZ32, -inf32, -2, inf32, 0, negZ32}
	SortFloats(data)

	want := []float32{-inf32, -2, negZ32, negZ32, 0, 0, 3, inf32}
	if diff := cmp.Diff(bits(want), bits(data[:8])); diff != "" {
		t.Errorf("SortFloats(float32) mismatch (-want +got):\n%s", diff)
	}
	if data[8] == data[8] {
		t.Errorf("SortFloats(float32): last = %v, want NaN", data[8])
	}
}

// TestSortFloatsEdgeCases tests trivial and NaN-only inputs
func TestSortFloatsEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want []float64
	}{
		{"nil", nil, nil},
		{"empty", []float64{}, []float64{}},
		{"single", []float64{negZ}, []float64{negZ}},
		{"single_nan", []float64{nan}, []float64{nan}},
		{"all_nan", []float64{nan, nan, nan}, []float64{nan, nan, nan}},
		{"nan_first", []float64{nan, 1}, []float64{1, nan}},
		{"nan_last", []float64{1, nan}, []float64{1, nan}},
		{"nan_middle", []float64{3, nan, 1, nan, 2}, []float64{1, 2, 3, nan, nan}},
		{"neg_zeros_only", []float64{negZ, -1, negZ}, []float64{-1, negZ, negZ}},
		{"pos_zeros_only", []float64{0, 1, 0}, []float64{0, 0, 1}},
		{"infinities", []float64{inf, -inf, inf, -inf}, []float64{-inf, -inf, inf, inf}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := slices.Clone(tt.data)
			SortFloats(data)
			if diff := cmp.Diff(bits(tt.want), bits(data)); diff != "" {
				t.Errorf("SortFloats(%v) = %v (-want +got):\n%s", tt.data, data, diff)
			}
		})
	}
}

// TestSortFloatsMatchesCheckedSort compares the fast path with a plain
// SortFunc using the checked total-order comparator
func TestSortFloatsMatchesCheckedSort(t *testing.T) {
	for _, n := range []int{2, 10, 25, 100, 1000, 10000} {
		for seed := range int64(5) {
			orig := workload.Floats(n, seed, spread)

			fast := slices.Clone(orig)
			SortFloats(fast)
			checked := slices.Clone(orig)
			SortFunc(checked, CompareFloats[float64])

			if diff := cmp.Diff(bits(checked), bits(fast)); diff != "" {
				t.Fatalf("n=%d seed=%d: SortFloats differs from SortFunc(CompareFloats):\n%s", n, seed, diff)
			}
			if !IsSortedFloats(fast) {
				t.Fatalf("n=%d seed=%d: IsSortedFloats = false", n, seed)
			}
		}
	}
}

// TestSortFloatsPermutation checks the multiset of bit patterns survives
func TestSortFloatsPermutation(t *testing.T) {
	orig := workload.Floats(5000, 42, workload.Mix{NaN: 0.1, Zero: 0.4, Inf: 0.1})
	data := slices.Clone(orig)
	SortFloats(data)

	want, got := bits(orig), bits(data)
	slices.Sort(want)
	slices.Sort(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortFloats changed the multiset (-want +got):\n%s", diff)
	}
}

// TestSortFloatsIdempotent tests that a second sort changes no bits
func TestSortFloatsIdempotent(t *testing.T) {
	data := workload.Floats(3000, 8, spread)
	SortFloats(data)
	once := bits(data)
	SortFloats(data)
	if diff := cmp.Diff(once, bits(data)); diff != "" {
		t.Errorf("sorting sorted floats changed them:\n%s", diff)
	}
}

// TestSortFloatsNoZeros checks that without zeros the repair step leaves
// the plain comparison sort untouched
func TestSortFloatsNoZeros(t *testing.T) {
	orig := workload.Floats(2000, 17, workload.Mix{NaN: 0.05, Inf: 0.05})

	plain := slices.Clone(orig)
	plain = plain[:partitionNaNs(plain)]
	SortFunc(plain, compareNonNaN[float64])
	repaired := slices.Clone(plain)
	orderSignedZeros(repaired)
	if diff := cmp.Diff(bits(plain), bits(repaired)); diff != "" {
		t.Errorf("orderSignedZeros modified a zero-free slice:\n%s", diff)
	}

	full := slices.Clone(orig)
	SortFloats(full)
	ref := slices.Clone(orig)
	SortFunc(ref, CompareFloats[float64])
	if diff := cmp.Diff(ref, full, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("SortFloats differs from SortFunc(CompareFloats) (-want +got):\n%s", diff)
	}
}

// TestPartitionNaNs asserts the precondition of compareNonNaN: after
// partitionNaNs the prefix holds no NaN and the suffix nothing else
func TestPartitionNaNs(t *testing.T) {
	for _, frac := range []float64{0, 0.01, 0.3, 0.9, 1} {
		for _, n := range []int{0, 1, 2, 7, 100, 1000} {
			data := workload.Floats(n, int64(n), workload.Mix{NaN: frac, Zero: 0.1})
			nans := 0
			for _, v := range data {
				if math.IsNaN(v) {
					nans++
				}
			}

			k := partitionNaNs(data)
			if k != n-nans {
				t.Fatalf("frac=%v n=%d: prefix length %d, want %d", frac, n, k, n-nans)
			}
			for i, v := range data {
				if math.IsNaN(v) != (i >= k) {
					t.Fatalf("frac=%v n=%d: data[%d] = %v with prefix length %d", frac, n, i, v, k)
				}
			}
		}
	}
}

// TestFirstNonNegative tests the binary search for the zero run
func TestFirstNonNegative(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want int
	}{
		{"empty", nil, 0},
		{"all_negative", []float64{-3, -2, -1}, 3},
		{"all_positive", []float64{1, 2}, 0},
		{"zero_run", []float64{-inf, -1, negZ, 0, negZ, 2}, 2},
		{"no_zero", []float64{-5, -1, 1, 5}, 2},
		{"neg_zero_first", []float64{negZ, 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonNegative(tt.data); got != tt.want {
				t.Errorf("firstNonNegative(%v) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}

// TestCompareFloats tests the checked total-order comparator
func TestCompareFloats(t *testing.T) {
	tests := []struct {
		a, b float64
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{1, 1, 0},
		{negZ, 0, -1},
		{0, negZ, 1},
		{negZ, negZ, 0},
		{inf, nan, -1},
		{nan, inf, 1},
		{nan, nan, 0},
		{-inf, -math.MaxFloat64, -1},
	}
	for _, tt := range tests {
		if got := CompareFloats(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareFloats(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestIsSortedFloats tests the total order check
func TestIsSortedFloats(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want bool
	}{
		{"empty", nil, true},
		{"ordered", []float64{-inf, negZ, 0, inf, nan}, true},
		{"zeros_swapped", []float64{0, negZ}, false},
		{"nan_not_last", []float64{nan, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSortedFloats(tt.data); got != tt.want {
				t.Errorf("IsSortedFloats(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
