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

// MergeSort sorts s in ascending order with a top-down merge sort.
// Halves are merged through a single scratch buffer of len(s)/2 elements
// allocated once per call. On ties the element from the left half is taken
// first, so the sort is stable.
func MergeSort[E cmp.Ordered](s []E) {
	if len(s) <= 1 {
		return
	}
	buf := make([]E, len(s)/2)
	mergeSort(s, buf)
}

func mergeSort[E cmp.Ordered](s, buf []E) {
	n := len(s)
	if n <= 1 {
		return
	}
	mid := n / 2
	mergeSort(s[:mid], buf)
	mergeSort(s[mid:], buf)
	merge(s, mid, buf)
}

// merge combines the sorted runs s[:mid] and s[mid:] in place.
// buf must hold at least mid elements.
func merge[E cmp.Ordered](s []E, mid int, buf []E) {
	// Runs already in order.
	if !(s[mid] < s[mid-1]) {
		return
	}

	left := buf[:mid]
	copy(left, s[:mid])

	// k never overtakes j, so unread right-run elements are never clobbered.
	i, j, k := 0, mid, 0
	for i < len(left) && j < len(s) {
		if s[j] < left[i] {
			s[k] = s[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}

	// Whatever is left of the right run is already in place.
	copy(s[k:], left[i:])
}

// MergeSortFunc is like MergeSort but orders elements with cmp.
func MergeSortFunc[E any](s []E, cmp func(a, b E) int) {
	if len(s) <= 1 {
		return
	}
	buf := make([]E, len(s)/2)
	mergeSortFunc(s, buf, cmp)
}

func mergeSortFunc[E any](s, buf []E, cmp func(a, b E) int) {
	n := len(s)
	if n <= 1 {
		return
	}
	mid := n / 2
	mergeSortFunc(s[:mid], buf, cmp)
	mergeSortFunc(s[mid:], buf, cmp)
	mergeFunc(s, mid, buf, cmp)
}

func mergeFunc[E any](s []E, mid int, buf []E, cmp func(a, b E) int) {
	if cmp(s[mid], s[mid-1]) >= 0 {
		return
	}

	left := buf[:mid]
	copy(left, s[:mid])

	i, j, k := 0, mid, 0
	for i < len(left) && j < len(s) {
		if cmp(s[j], left[i]) < 0 {
			s[k] = s[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
	copy(s[k:], left[i:])
}
