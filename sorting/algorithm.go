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
	"slices"

	"golang.org/x/exp/constraints"
)

// Algorithm names a sort function so harnesses can iterate over them.
type Algorithm[E cmp.Ordered] struct {
	// Name is the short identifier used on command lines and in test names.
	Name string

	// Title is the human-readable label used in reports.
	Title string

	// Sort sorts its argument in place.
	Sort func([]E)

	// Stable reports whether equal elements keep their input order.
	Stable bool

	// SmallInputsOnly marks algorithms too slow for large benchmark sizes.
	SmallInputsOnly bool
}

// Algorithms returns the comparison sorts in a fixed order.
func Algorithms[E cmp.Ordered]() []Algorithm[E] {
	return []Algorithm[E]{
		{Name: "bubble", Title: "Bubble Sort", Sort: BubbleSort[E], Stable: true, SmallInputsOnly: true},
		{Name: "heap", Title: "Heap Sort", Sort: HeapSort[E]},
		{Name: "insertion", Title: "Insert Sort", Sort: InsertionSort[E], Stable: true},
		{Name: "merge", Title: "Merge Sort", Sort: MergeSort[E], Stable: true},
		{Name: "quick", Title: "Quick Sort", Sort: QuickSort[E]},
	}
}

// IntegerAlgorithms returns Algorithms followed by RadixSort.
func IntegerAlgorithms[E constraints.Integer]() []Algorithm[E] {
	return append(Algorithms[E](), Algorithm[E]{Name: "radix", Title: "Radix Sort", Sort: RadixSort[E]})
}

// Reference returns the standard library sort, used as the trusted baseline.
func Reference[E cmp.Ordered]() Algorithm[E] {
	return Algorithm[E]{Name: "std", Title: "slices.Sort", Sort: slices.Sort[[]E, E]}
}

// Lookup returns the algorithm called name from algs.
func Lookup[E cmp.Ordered](algs []Algorithm[E], name string) (Algorithm[E], bool) {
	i := slices.IndexFunc(algs, func(a Algorithm[E]) bool { return a.Name == name })
	if i < 0 {
		return Algorithm[E]{}, false
	}
	return algs[i], true
}
