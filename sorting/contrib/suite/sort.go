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

package suite

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	gocmp "github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sorting/sorting"
	"github.com/ajroetker/go-sorting/sorting/contrib/dataset"
)

// ErrMismatch is wrapped by CheckSort when a sort disagrees with slices.Sort.
var ErrMismatch = errors.New("suite: sorted output differs from reference")

// Sizes are the input lengths every sort case is registered for.
var Sizes = []int{1, 4, 16, 64, 256, 1024}

// Repetitions is the number of fresh random inputs each case checks.
const Repetitions = 10

// CaseName returns "test<Title>/<type>/<size>", e.g. "testQuickSort/int8/16".
func CaseName[E constraints.Integer](alg sorting.Algorithm[E], size int) string {
	var zero E
	title := strings.ReplaceAll(alg.Title, " ", "")
	return fmt.Sprintf("test%s/%T/%d", title, zero, size)
}

// CheckSort sorts a copy of input with sortFn and compares it against
// slices.Sort. The error wraps ErrMismatch and carries a diff.
func CheckSort[E cmp.Ordered](sortFn func([]E), input []E) error {
	want := slices.Clone(input)
	slices.Sort(want)

	got := slices.Clone(input)
	sortFn(got)

	if diff := gocmp.Diff(want, got); diff != "" {
		return fmt.Errorf("%w (-want +got):\n%s", ErrMismatch, diff)
	}
	return nil
}

// SortCase returns a case that checks alg on Repetitions random inputs of
// the given size. Inputs derive from seed, so a failing case can be rerun.
func SortCase[E constraints.Integer](alg sorting.Algorithm[E], size int, seed uint64) CaseFunc {
	return func(ctx context.Context) error {
		gen := dataset.NewGenerator[E](seed)
		for rep := range Repetitions {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := CheckSort(alg.Sort, gen.Random(size)); err != nil {
				return fmt.Errorf("repetition %d (seed %d): %w", rep, seed, err)
			}
		}
		return nil
	}
}

// AddSort registers alg for every entry of Sizes. Each case draws its inputs
// from seed offset by its position in b.
func AddSort[E constraints.Integer](b *Builder, alg sorting.Algorithm[E], seed uint64) {
	for _, size := range Sizes {
		b.Add(CaseName(alg, size), SortCase(alg, size, seed+uint64(b.Len())))
	}
}

// AddSorts registers every algorithm of algs with AddSort.
func AddSorts[E constraints.Integer](b *Builder, algs []sorting.Algorithm[E], seed uint64) {
	for _, alg := range algs {
		AddSort(b, alg, seed)
	}
}
