// Package sorting provides classic in-place sorting algorithms over slices.
//
// Every algorithm mutates the slice it is given and returns nothing. After a
// call the slice holds the same multiset of elements in non-decreasing order.
// None of the functions retain a reference to the slice once they return.
//
// # Algorithms
//
//   - BubbleSort: adjacent exchanges, O(n²), stable
//   - InsertionSort: binary search for the insertion point, O(n²) moves, stable
//   - HeapSort: bottom-up max-heap then extraction, O(n log n), O(1) space
//   - MergeSort: top-down with a buffered merge, O(n log n), stable
//   - QuickSort: median-of-three pivot with a three-way partition
//   - RadixSort: LSD radix sort on 4-bit digits for fixed-width integers
//
// Each comparison sort also has a Func variant that takes a three-way
// comparison function, in the style of slices.SortFunc.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sorting/sorting"
//
//	func Process(data []int32) {
//	    sorting.QuickSort(data)
//	}
//
//	func ProcessKeys(keys []uint64) {
//	    sorting.RadixSort(keys)
//	}
//
// # Stability
//
// Only InsertionSort and MergeSort (and their Func variants) keep equal
// elements in their input order. BubbleSort happens to be stable as well.
// HeapSort, QuickSort and RadixSort make no such promise.
package sorting
