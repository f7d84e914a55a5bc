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

// Package suite runs named verification cases and reports the outcome of
// each one.
//
// A Suite is assembled with a Builder, which rejects duplicate case names,
// and then run on a workerpool.Pool. Results come back in registration
// order regardless of which worker finished first.
//
//	b := suite.NewBuilder(suite.WithLogger(logger))
//	suite.AddSorts(b, sorting.IntegerAlgorithms[int32](), seed)
//	s, err := b.Build()
//	if err != nil {
//	    return err
//	}
//	results, summary := s.Run(ctx)
//	suite.Report(os.Stdout, results, summary)
package suite

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sorting/sorting/contrib/workerpool"
)

// ErrDuplicateCase is returned by Build when two cases share a name.
var ErrDuplicateCase = errors.New("suite: duplicate case name")

// CaseFunc is the body of a case. A nil error means the case passed.
type CaseFunc func(ctx context.Context) error

// Case is a named unit of verification.
type Case struct {
	Name string
	Run  CaseFunc
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	workers int
}

// WithLogger sets the logger used to record case outcomes.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers sets the number of cases run concurrently. Values below one
// select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Builder collects cases for a Suite.
type Builder struct {
	opts  options
	cases []Case
	seen  map[string]bool
	dups  []string
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	o := options{logger: zap.NewNop(), workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return &Builder{opts: o, seen: make(map[string]bool)}
}

// Add registers a case. Duplicates are reported by Build.
func (b *Builder) Add(name string, fn CaseFunc) *Builder {
	if b.seen[name] {
		b.dups = append(b.dups, name)
		return b
	}
	b.seen[name] = true
	b.cases = append(b.cases, Case{Name: name, Run: fn})
	return b
}

// Len returns the number of distinct cases added so far.
func (b *Builder) Len() int { return len(b.cases) }

// Build returns the Suite, or an error wrapping ErrDuplicateCase naming
// every repeated case.
func (b *Builder) Build() (*Suite, error) {
	if len(b.dups) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCase, strings.Join(lo.Uniq(b.dups), ", "))
	}
	return &Suite{
		cases:   b.cases,
		logger:  b.opts.logger,
		workers: b.opts.workers,
	}, nil
}

// Suite is an immutable, ordered set of cases.
type Suite struct {
	cases   []Case
	logger  *zap.Logger
	workers int
}

// Names returns the case names in registration order.
func (s *Suite) Names() []string {
	return lo.Map(s.cases, func(c Case, _ int) string { return c.Name })
}

// Result is the outcome of one case.
type Result struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// OK reports whether the case passed.
func (r Result) OK() bool { return r.Err == nil }

// Summary counts passed and failed cases.
type Summary struct {
	Passed int
	Failed int
}

// Total returns the number of cases run.
func (s Summary) Total() int { return s.Passed + s.Failed }

// OK reports whether no case failed.
func (s Summary) OK() bool { return s.Failed == 0 }

// Summarize counts results.
func Summarize(results []Result) Summary {
	passed := lo.CountBy(results, Result.OK)
	return Summary{Passed: passed, Failed: len(results) - passed}
}

// Run executes every case and returns their results in registration order.
// A case that panics fails with the recovered value. Once ctx is done,
// cases that have not started fail with ctx.Err().
func (s *Suite) Run(ctx context.Context) ([]Result, Summary) {
	results := make([]Result, len(s.cases))
	if len(s.cases) > 0 {
		pool := workerpool.New(min(s.workers, len(s.cases)))
		defer pool.Close()

		pool.ParallelForAtomic(len(s.cases), func(i int) {
			results[i] = s.runCase(ctx, s.cases[i])
		})
	}

	summary := Summarize(results)
	s.logger.Info("suite finished",
		zap.Int("cases", len(results)),
		zap.Int("passed", summary.Passed),
		zap.Int("failed", summary.Failed),
	)
	return results, summary
}

func (s *Suite) runCase(ctx context.Context, c Case) (res Result) {
	res.Name = c.Name
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("suite: %s panicked: %v", c.Name, r)
		}
		res.Elapsed = time.Since(start)
		if res.Err != nil {
			s.logger.Warn("case failed", zap.String("case", c.Name), zap.Error(res.Err))
			return
		}
		s.logger.Debug("case passed", zap.String("case", c.Name), zap.Duration("elapsed", res.Elapsed))
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	res.Err = c.Run(ctx)
	return res
}
