// Copyright 2025 go-highway Authors
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

package sorting

import "cmp"

// QuickSort sorts s in ascending order with a three-way partitioning
// quicksort. The pivot is the median of the first, middle and last elements.
// Elements equal to the pivot end up in their final position after a single
// partition and are never visited again, so inputs with few distinct values
// sort in close to linear time.
//
// The smaller side is sorted recursively and the larger side iteratively,
// which bounds the stack depth by O(log n).
func QuickSort[E cmp.Ordered](s []E) {
	for len(s) > 1 {
		lt, gt := Partition3Way(s)
		if lt < len(s)-gt {
			QuickSort(s[:lt])
			s = s[gt:]
		} else {
			QuickSort(s[gt:])
			s = s[:lt]
		}
	}
}

// MedianOfThree returns whichever of the indices a, b, c holds the median of
// s[a], s[b] and s[c].
func MedianOfThree[E cmp.Ordered](s []E, a, b, c int) int {
	if s[a] < s[b] {
		if s[b] < s[c] {
			return b // a < b < c
		} else if s[a] < s[c] {
			return c // a < c <= b
		}
		return a // c <= a < b
	}
	if s[a] < s[c] {
		return a // b <= a < c
	} else if s[b] < s[c] {
		return c // b < c <= a
	}
	return b // c <= b <= a
}

// Partition3Way selects a pivot and rearranges s into three regions.
// Returns (lt, gt) indices where:
//   - s[0:lt] < pivot
//   - s[lt:gt] == pivot
//   - s[gt:n] > pivot
//
// The equal region is never empty when s is non-empty.
func Partition3Way[E cmp.Ordered](s []E) (int, int) {
	n := len(s)
	if n == 0 {
		return 0, 0
	}

	p := 0
	if n >= 3 {
		p = MedianOfThree(s, 0, n/2, n-1)
	}
	s[0], s[p] = s[p], s[0]
	pivot := s[0]

	lt, gt := 0, n
	i := 1
	for i < gt {
		if s[i] < pivot {
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		} else if pivot < s[i] {
			gt--
			s[i], s[gt] = s[gt], s[i]
		} else {
			i++
		}
	}

	return lt, gt
}

// QuickSortFunc is like QuickSort but orders elements with cmp.
func QuickSortFunc[E any](s []E, cmp func(a, b E) int) {
	for len(s) > 1 {
		lt, gt := Partition3WayFunc(s, cmp)
		if lt < len(s)-gt {
			QuickSortFunc(s[:lt], cmp)
			s = s[gt:]
		} else {
			QuickSortFunc(s[gt:], cmp)
			s = s[:lt]
		}
	}
}

// MedianOfThreeFunc is like MedianOfThree but orders elements with cmp.
func MedianOfThreeFunc[E any](s []E, a, b, c int, cmp func(a, b E) int) int {
	if cmp(s[a], s[b]) < 0 {
		if cmp(s[b], s[c]) < 0 {
			return b
		} else if cmp(s[a], s[c]) < 0 {
			return c
		}
		return a
	}
	if cmp(s[a], s[c]) < 0 {
		return a
	} else if cmp(s[b], s[c]) < 0 {
		return c
	}
	return b
}

// Partition3WayFunc is like Partition3Way but orders elements with cmp.
// Each element is compared against the pivot once.
func Partition3WayFunc[E any](s []E, cmp func(a, b E) int) (int, int) {
	n := len(s)
	if n == 0 {
		return 0, 0
	}

	p := 0
	if n >= 3 {
		p = MedianOfThreeFunc(s, 0, n/2, n-1, cmp)
	}
	s[0], s[p] = s[p], s[0]
	pivot := s[0]

	lt, gt := 0, n
	i := 1
	for i < gt {
		switch c := cmp(s[i], pivot); {
		case c < 0:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case c > 0:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}

	return lt, gt
}
