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

// InsertionSort sorts s in ascending order. It grows a sorted prefix and
// places each new element after every equal element already in it, so the
// sort is stable.
func InsertionSort[E cmp.Ordered](s []E) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		pos := UpperBound(s[:i], v)
		copy(s[pos+1:i+1], s[pos:i])
		s[pos] = v
	}
}

// InsertionSortFunc is like InsertionSort but orders elements with cmp.
func InsertionSortFunc[E any](s []E, cmp func(a, b E) int) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		pos := UpperBoundFunc(s[:i], v, cmp)
		copy(s[pos+1:i+1], s[pos:i])
		s[pos] = v
	}
}

// UpperBound returns the index of the first element of the sorted slice s
// that is greater than v, or len(s) if there is none.
func UpperBound[E cmp.Ordered](s []E, v E) int {
	lo, hi := 0, len(s)
	for lo < hi {
		h := int(uint(lo+hi) >> 1)
		if v < s[h] {
			hi = h
		} else {
			lo = h + 1
		}
	}
	return lo
}

// UpperBoundFunc is like UpperBound but orders elements with cmp.
func UpperBoundFunc[E any](s []E, v E, cmp func(a, b E) int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		h := int(uint(lo+hi) >> 1)
		if cmp(v, s[h]) < 0 {
			hi = h
		} else {
			lo = h + 1
		}
	}
	return lo
}
