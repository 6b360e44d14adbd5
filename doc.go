// Package introsort provides an in-place, allocation-free introsort for Go
// slices, plus a float sort that yields a strict total order.
//
// # Algorithm
//
// The driver is a quicksort that combines:
//   - Insertion sort for small ranges
//   - Median-of-three pivot selection (ninther for larger ranges)
//   - Heapsort fallback once the recursion depth budget runs out, which
//     bounds the worst case at O(n log n)
//
// The same building blocks are exported on their own: InsertionSort and
// HeapSort, each with a comparator variant.
//
// # Floats
//
// SortFloats orders IEEE-754 values as
//
//	-Inf < negative < -0 < +0 < positive < +Inf < NaN
//
// NaNs are moved to the tail first, the remainder is sorted with a plain
// comparison that assumes no NaN is present, and the run of zeros is then
// rewritten so that every -0 precedes every +0.
//
// # Example Usage
//
//	import introsort "github.com/ajroetker/go-introsort"
//
//	func ProcessData(data []float64) {
//	    introsort.SortFloats(data) // NaNs last, -0 before +0
//	}
//
//	func ByLength(words []string) {
//	    introsort.SortFunc(words, func(a, b string) int {
//	        return len(a) - len(b)
//	    })
//	}
//
// None of the sorts is stable. All of them run on the caller's goroutine and
// never allocate.
package introsort
