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
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-sorting/sorting"
)

func pass(context.Context) error { return nil }

func TestBuildDuplicate(t *testing.T) {
	b := NewBuilder()
	b.Add("a", pass).Add("b", pass).Add("a", pass).Add("a", pass)
	assert.Equal(t, 2, b.Len())

	_, err := b.Build()
	require.ErrorIs(t, err, ErrDuplicateCase)
	assert.Contains(t, err.Error(), ": a")
	assert.NotContains(t, err.Error(), "a, a")
}

func TestRunOrderAndSummary(t *testing.T) {
	boom := errors.New("boom")
	b := NewBuilder(WithWorkers(4))
	for i := range 20 {
		name := string(rune('a' + i))
		if i%5 == 0 {
			b.Add(name, func(context.Context) error { return boom })
			continue
		}
		b.Add(name, pass)
	}
	s, err := b.Build()
	require.NoError(t, err)

	results, summary := s.Run(context.Background())
	require.Len(t, results, 20)
	assert.Equal(t, s.Names(), []string{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j",
		"k", "l", "m", "n", "o", "p", "q", "r", "s", "t",
	})
	for i, r := range results {
		assert.Equal(t, s.Names()[i], r.Name)
		if i%5 == 0 {
			assert.ErrorIs(t, r.Err, boom)
		} else {
			assert.NoError(t, r.Err)
		}
	}
	assert.Equal(t, Summary{Passed: 16, Failed: 4}, summary)
	assert.False(t, summary.OK())
	assert.Equal(t, 20, summary.Total())
}

func TestRunPanicBecomesFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s, err := NewBuilder(WithLogger(zap.New(core)), WithWorkers(2)).
		Add("ok", pass).
		Add("panics", func(context.Context) error { panic("index out of range") }).
		Build()
	require.NoError(t, err)

	results, summary := s.Run(context.Background())
	assert.Equal(t, Summary{Passed: 1, Failed: 1}, summary)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "index out of range")
	assert.Equal(t, 1, logs.FilterMessage("case failed").Len())
}

func TestRunCancelled(t *testing.T) {
	var ran atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := NewBuilder().Add("x", func(context.Context) error {
		ran.Add(1)
		return nil
	}).Build()
	require.NoError(t, err)

	results, summary := s.Run(ctx)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.Equal(t, 1, summary.Failed)
	assert.Zero(t, ran.Load())
}

func TestRunEmpty(t *testing.T) {
	s, err := NewBuilder().Build()
	require.NoError(t, err)
	results, summary := s.Run(context.Background())
	assert.Empty(t, results)
	assert.True(t, summary.OK())
}

func TestCaseName(t *testing.T) {
	quick, ok := sorting.Lookup(sorting.IntegerAlgorithms[int8](), "quick")
	require.True(t, ok)
	assert.Equal(t, "testQuickSort/int8/16", CaseName(quick, 16))

	insert, ok := sorting.Lookup(sorting.IntegerAlgorithms[uint64](), "insertion")
	require.True(t, ok)
	assert.Equal(t, "testInsertSort/uint64/1024", CaseName(insert, 1024))
}

func TestCheckSort(t *testing.T) {
	input := []int32{5, -1, 3, 3, 0}
	assert.NoError(t, CheckSort(sorting.HeapSort[int32], input))
	assert.Equal(t, []int32{5, -1, 3, 3, 0}, input, "input must not be modified")

	noop := func([]int32) {}
	err := CheckSort(noop, input)
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "-want +got")
}

func TestAddSortsAllAlgorithms(t *testing.T) {
	b := NewBuilder()
	AddSorts(b, sorting.IntegerAlgorithms[int32](), 7)
	AddSorts(b, sorting.IntegerAlgorithms[uint8](), 7)
	s, err := b.Build()
	require.NoError(t, err)

	assert.Len(t, s.Names(), 2*6*len(Sizes))
	assert.Equal(t, "testBubbleSort/int32/1", s.Names()[0])

	results, summary := s.Run(context.Background())
	for _, r := range results {
		assert.NoError(t, r.Err, r.Name)
	}
	assert.True(t, summary.OK())
}

func TestSortCaseDetectsBrokenSort(t *testing.T) {
	broken := sorting.Algorithm[int64]{
		Name:  "broken",
		Title: "Broken Sort",
		Sort: func(s []int64) {
			if len(s) > 1 {
				s[0], s[1] = s[1], s[0]
			}
		},
	}
	s, err := NewBuilder().Add(CaseName(broken, 64), SortCase(broken, 64, 1)).Build()
	require.NoError(t, err)

	results, summary := s.Run(context.Background())
	assert.Equal(t, 1, summary.Failed)
	assert.ErrorIs(t, results[0].Err, ErrMismatch)
	assert.Contains(t, results[0].Err.Error(), "repetition 0")
}

func TestReport(t *testing.T) {
	results := []Result{
		{Name: "testHeapSort/int8/1"},
		{Name: "testHeapSort/int8/4", Err: errors.New("mismatch")},
	}
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, results, Summarize(results)))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Running test: testHeapSort/int8/1"+strings.Repeat(" ", 48-19)+"  [OK]", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "  [FAILED]"))
	assert.Equal(t, "mismatch", lines[2])
	assert.Contains(t, buf.String(), "\nRun 2 tests. 1 succeeded, 1 failed.\n")
}
