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

// BubbleSort sorts s in ascending order by swapping adjacent pairs.
// Each outer pass bubbles the largest remaining element to the end of the
// unsorted prefix, which then shrinks by one.
func BubbleSort[E cmp.Ordered](s []E) {
	n := len(s)
	for i := 0; i < n; i++ {
		for j := 0; j < n-1-i; j++ {
			if s[j+1] < s[j] {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}

// BubbleSortFunc is like BubbleSort but orders elements with cmp.
func BubbleSortFunc[E any](s []E, cmp func(a, b E) int) {
	n := len(s)
	for i := 0; i < n; i++ {
		for j := 0; j < n-1-i; j++ {
			if cmp(s[j+1], s[j]) < 0 {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}
