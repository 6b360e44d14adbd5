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

	"golang.org/x/exp/constraints"
)

// SortFloats sorts x in the total order
//
//	-Inf < negative < -0 < +0 < positive < +Inf < NaN
//
// NaNs end up at the tail in unspecified order.
//
// Hardware comparisons give no total order: NaN is unordered against
// everything and -0 == +0. Checking for NaN inside the comparator is slow and
// NaNs are rare, so SortFloats moves NaNs out of the way first, sorts the
// rest with plain comparisons, and then rewrites the run of zeros so that
// every -0 precedes every +0.
func SortFloats[F constraints.Float](x []F) {
	if len(x) <= 1 {
		return
	}

	finite := x[:partitionNaNs(x)]
	SortFunc(finite, compareNonNaN[F])
	orderSignedZeros(finite)
}

// partitionNaNs moves every NaN in x to the tail and returns the length of
// the NaN-free prefix.
func partitionNaNs[F constraints.Float](x []F) int {
	end := len(x)
	// Skip NaNs already in place
	for end > 0 && isNaN(x[end-1]) {
		end--
	}
	for i := 0; i < end; {
		if isNaN(x[i]) {
			end--
			x[i], x[end] = x[end], x[i]
			// x[i] now holds an unchecked value, look at it again
			continue
		}
		i++
	}
	return end
}

// compareNonNaN orders a and b with plain comparisons.
//
// Neither argument may be NaN: a NaN compares equal to everything here, which
// is not a strict weak ordering. SortFloats only calls it on the prefix
// returned by partitionNaNs. Builds with the introsort_debug tag panic when
// the precondition is broken.
func compareNonNaN[F constraints.Float](a, b F) int {
	if checkNaNPrecondition && (isNaN(a) || isNaN(b)) {
		panic("introsort: NaN passed to compareNonNaN")
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// orderSignedZeros rewrites the run of zeros in the sorted, NaN-free x so
// that all -0 precede all +0.
func orderSignedZeros[F constraints.Float](x []F) {
	first := firstNonNegative(x)

	// Count zeros of each sign, then fill them in in the right order
	negZeros, posZeros := 0, 0
	for _, v := range x[first:] {
		if v != 0 {
			break
		}
		if math.Signbit(float64(v)) {
			negZeros++
		} else {
			posZeros++
		}
	}
	if negZeros == 0 || posZeros == 0 {
		return
	}

	negZero := F(math.Copysign(0, -1))
	zeros := x[first : first+negZeros+posZeros]
	for i := range zeros {
		if i < negZeros {
			zeros[i] = negZero
		} else {
			zeros[i] = 0
		}
	}
}

// firstNonNegative returns the smallest index i such that !(x[i] < 0), or
// len(x) if there is none. x must be sorted.
func firstNonNegative[F constraints.Float](x []F) int {
	lo, hi := 0, len(x)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if x[mid] < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// CompareFloats compares a and b in the order used by SortFloats and returns
// -1, 0 or +1. All NaNs compare equal to each other and greater than +Inf;
// -0 compares less than +0.
//
// SortFunc(x, CompareFloats[F]) produces the same order as SortFloats(x),
// only slower.
func CompareFloats[F constraints.Float](a, b F) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}

	aNeg, bNeg := math.Signbit(float64(a)), math.Signbit(float64(b))
	switch {
	case aNeg == bNeg:
		return 0
	case aNeg:
		return -1
	}
	return 1
}

// IsSortedFloats reports whether x is in the order produced by SortFloats.
func IsSortedFloats[F constraints.Float](x []F) bool {
	return IsSortedFunc(x, CompareFloats[F])
}

func isNaN[F constraints.Float](v F) bool {
	return v != v
}
