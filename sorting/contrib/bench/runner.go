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

package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-sorting/sorting"
	"github.com/ajroetker/go-sorting/sorting/contrib/dataset"
)

// Option configures a Runner.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for per-cell debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Runner benchmarks sorting algorithms over slices of E.
type Runner[E constraints.Integer] struct {
	cfg    Config
	logger *zap.Logger
}

// NewRunner validates cfg and returns a Runner for it.
func NewRunner[E constraints.Integer](cfg Config, opts ...Option) (*Runner[E], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner[E]{
		cfg:    cfg,
		logger: o.logger.With(zap.String("type", TypeName[E]())),
	}, nil
}

// TypeName returns the Go name of E, such as "int32".
func TypeName[E any]() string {
	var zero E
	return fmt.Sprintf("%T", zero)
}

// SizesFor returns the sizes alg should be measured at.
func (r *Runner[E]) SizesFor(alg sorting.Algorithm[E]) []int {
	if alg.SmallInputsOnly {
		return r.cfg.SmallSizes
	}
	return r.cfg.Sizes
}

func (r *Runner[E]) columns() []string {
	return lo.Map(r.cfg.Distributions, func(d dataset.Distribution, _ int) string { return d.String() })
}

// Run measures alg at every size from SizesFor and every configured
// distribution. Rows are sizes, columns are distributions.
func (r *Runner[E]) Run(ctx context.Context, alg sorting.Algorithm[E]) (*Table, error) {
	t := &Table{RowHeader: "Size", Columns: r.columns()}
	for _, size := range r.SizesFor(alg) {
		row := Row{Label: formatSize(size)}
		for _, dist := range r.cfg.Distributions {
			d, err := r.Cell(ctx, alg, size, dist)
			if err != nil {
				return nil, err
			}
			row.Cells = append(row.Cells, d)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Compare measures every algorithm in algs at each of sizes and returns one
// Table per size with a row per algorithm.
func (r *Runner[E]) Compare(ctx context.Context, algs []sorting.Algorithm[E], sizes []int) ([]*Table, error) {
	tables := make([]*Table, 0, len(sizes))
	for _, size := range sizes {
		t := &Table{
			Caption:   "Size: " + formatSize(size),
			RowHeader: "Algorithm",
			Columns:   r.columns(),
		}
		for _, alg := range algs {
			row := Row{Label: alg.Title}
			for _, dist := range r.cfg.Distributions {
				d, err := r.Cell(ctx, alg, size, dist)
				if err != nil {
					return nil, err
				}
				row.Cells = append(row.Cells, d)
			}
			t.Rows = append(t.Rows, row)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// Cell returns the mean time alg takes to sort Runs freshly generated inputs
// of the given size and distribution. Inputs are generated up front, in
// parallel, and then sorted one at a time so that only the sort is timed.
func (r *Runner[E]) Cell(ctx context.Context, alg sorting.Algorithm[E], size int, dist dataset.Distribution) (time.Duration, error) {
	inputs, err := r.generate(ctx, size, dist)
	if err != nil {
		return 0, fmt.Errorf("bench: %s size %d %v: %w", alg.Name, size, dist, err)
	}

	timings := make([]time.Duration, len(inputs))
	for i, data := range inputs {
		timings[i] = Measure(alg.Sort, data)
	}
	mean := Mean(timings)

	r.logger.Debug("measured cell",
		zap.String("algorithm", alg.Name),
		zap.Int("size", size),
		zap.Stringer("distribution", dist),
		zap.Int("runs", len(inputs)),
		zap.Duration("mean", mean),
	)
	return mean, nil
}

func (r *Runner[E]) generate(ctx context.Context, size int, dist dataset.Distribution) ([][]E, error) {
	inputs := make([][]E, r.cfg.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for run := range r.cfg.Runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gen := dataset.NewGenerator[E](cellSeed(r.cfg.Seed, size, int(dist), run))
			gen.Disorder = r.cfg.Disorder
			gen.Unique = r.cfg.Unique
			inputs[run] = gen.Generate(dist, size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}
