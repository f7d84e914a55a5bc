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

// HeapSort sorts s in ascending order using a binary max-heap laid out in
// the slice itself (children of i at 2i+1 and 2i+2). It needs no extra
// memory and always runs in O(n log n).
func HeapSort[E cmp.Ordered](s []E) {
	n := len(s)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}

	// Extract elements
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown restores the heap property for the subtree rooted at root within
// s[:n]. A child only takes the place of its parent when strictly greater.
func siftDown[E cmp.Ordered](s []E, root, n int) {
	for {
		left := 2*root + 1
		if left >= n {
			return
		}

		largest := root
		if s[largest] < s[left] {
			largest = left
		}
		if right := left + 1; right < n && s[largest] < s[right] {
			largest = right
		}

		if largest == root {
			return
		}

		s[root], s[largest] = s[largest], s[root]
		root = largest
	}
}

// HeapSortFunc is like HeapSort but orders elements with cmp.
func HeapSortFunc[E any](s []E, cmp func(a, b E) int) {
	n := len(s)
	if n <= 1 {
		return
	}

	for i := n/2 - 1; i >= 0; i-- {
		siftDownFunc(s, i, n, cmp)
	}

	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDownFunc(s, 0, end, cmp)
	}
}

func siftDownFunc[E any](s []E, root, n int, cmp func(a, b E) int) {
	for {
		left := 2*root + 1
		if left >= n {
			return
		}

		largest := root
		if cmp(s[largest], s[left]) < 0 {
			largest = left
		}
		if right := left + 1; right < n && cmp(s[largest], s[right]) < 0 {
			largest = right
		}

		if largest == root {
			return
		}

		s[root], s[largest] = s[largest], s[root]
		root = largest
	}
}
