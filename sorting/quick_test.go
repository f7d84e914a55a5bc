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

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/go-sorting/sorting/contrib/dataset"
)

// TestMedianOfThree tests all six orderings and ties
func TestMedianOfThree(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want int
	}{
		{"a<b<c", []int{1, 2, 3}, 1},
		{"a<c<b", []int{1, 3, 2}, 2},
		{"c<a<b", []int{2, 3, 1}, 0},
		{"b<a<c", []int{2, 1, 3}, 0},
		{"b<c<a", []int{3, 1, 2}, 2},
		{"c<b<a", []int{3, 2, 1}, 1},
		{"all_equal", []int{5, 5, 5}, 1},
		{"a=b<c", []int{1, 1, 2}, 0},
		{"a<b=c", []int{1, 2, 2}, 2},
		{"a=c<b", []int{1, 2, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MedianOfThree(tt.data, 0, 1, 2); got != tt.want {
				t.Errorf("MedianOfThree(%v) = %d, want %d", tt.data, got, tt.want)
			}
			if got := MedianOfThreeFunc(tt.data, 0, 1, 2, cmp.Compare[int]); got != tt.want {
				t.Errorf("MedianOfThreeFunc(%v) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}

// TestPartition3Way tests 3-way partitioning
func TestPartition3Way(t *testing.T) {
	tests := []struct {
		name string
		data []int32
	}{
		{"empty", []int32{}},
		{"single", []int32{1}},
		{"pair", []int32{2, 1}},
		{"all_equal", []int32{5, 5, 5, 5}},
		{"mixed", []int32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"sorted", []int32{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := slices.Clone(tt.data)
			lt, gt := Partition3Way(data)

			if len(data) == 0 {
				if lt != 0 || gt != 0 {
					t.Errorf("Partition3Way(empty) = (%d,%d), want (0,0)", lt, gt)
				}
				return
			}
			if lt >= gt {
				t.Fatalf("equal region [%d,%d) is empty", lt, gt)
			}

			pivot := data[lt]
			for i := range lt {
				if data[i] >= pivot {
					t.Errorf("data[%d]=%v should be < pivot %v", i, data[i], pivot)
				}
			}
			for i := lt; i < gt; i++ {
				if data[i] != pivot {
					t.Errorf("data[%d]=%v should be == pivot %v", i, data[i], pivot)
				}
			}
			for i := gt; i < len(data); i++ {
				if data[i] <= pivot {
					t.Errorf("data[%d]=%v should be > pivot %v", i, data[i], pivot)
				}
			}

			// Verify all elements are preserved (same multiset)
			checkSorted(t, "Partition3Way", tt.data, slices.Sorted(slices.Values(data)))
		})
	}
}

// TestPartition3WayPivotChoice tests the median of first, middle and last is used
func TestPartition3WayPivotChoice(t *testing.T) {
	data := []int{9, 0, 0, 5, 0, 0, 1}
	lt, gt := Partition3Way(data)
	if data[lt] != 5 || gt-lt != 1 {
		t.Errorf("pivot = %v (region [%d,%d)), want 5", data[lt], lt, gt)
	}

	// Fewer than three elements use the first one.
	pair := []int{7, 3}
	lt, _ = Partition3Way(pair)
	if pair[lt] != 7 {
		t.Errorf("pivot of pair = %v, want 7", pair[lt])
	}
}

// TestQuickSortFewUnique tests 1000 elements drawn from {1, 2, 3}
func TestQuickSortFewUnique(t *testing.T) {
	g := dataset.NewGenerator[int32](3)
	input := g.FromValues(1000, []int32{1, 2, 3})

	data := slices.Clone(input)
	QuickSort(data)
	checkSorted(t, "QuickSort", input, data)
}

// TestQuickSortFewUniqueLinear checks comparisons per element stay flat as
// n grows when only three values occur, which only holds if equal runs are
// never partitioned again.
func TestQuickSortFewUniqueLinear(t *testing.T) {
	g := dataset.NewGenerator[int32](4)
	for _, n := range []int{1000, 10000, 100000} {
		data := g.FromValues(n, []int32{1, 2, 3})
		calls := 0
		QuickSortFunc(data, func(a, b int32) int {
			calls++
			return cmp.Compare(a, b)
		})
		if !slices.IsSorted(data) {
			t.Fatalf("QuickSortFunc(n=%d) produced unsorted result", n)
		}
		if calls > 4*n {
			t.Errorf("QuickSortFunc(n=%d) made %d comparisons, want <= %d", n, calls, 4*n)
		}
	}
}

// TestQuickSortAdversarial tests patterns that hurt naive pivots
func TestQuickSortAdversarial(t *testing.T) {
	const n = 100000
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}
	reverse := slices.Clone(sorted)
	slices.Reverse(reverse)
	same := make([]int, n)

	for name, input := range map[string][]int{"sorted": sorted, "reverse": reverse, "same": same} {
		data := slices.Clone(input)
		QuickSort(data)
		checkSorted(t, "QuickSort/"+name, input, data)
	}
}

// TestPartition3WayFuncMatchesOrdered verifies both partitions agree
func TestPartition3WayFuncMatchesOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for _, n := range []int{0, 1, 2, 3, 7, 64, 1000} {
		data1 := make([]int, n)
		for i := range data1 {
			data1[i] = rng.Intn(100)
		}
		data2 := slices.Clone(data1)

		lt1, gt1 := Partition3Way(data1)
		lt2, gt2 := Partition3WayFunc(data2, cmp.Compare[int])
		if lt1 != lt2 || gt1 != gt2 {
			t.Errorf("n=%d: Partition3Way returned (%d,%d), Partition3WayFunc returned (%d,%d)", n, lt1, gt1, lt2, gt2)
		}
		if !slices.Equal(data1, data2) {
			t.Errorf("n=%d: partitions rearranged data differently", n)
		}
	}
}
