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

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-sorting/sorting"
	"github.com/ajroetker/go-sorting/sorting/contrib/bench"
	"github.com/ajroetker/go-sorting/sorting/contrib/suite"
)

// typeRunner runs subcommand bodies for one element type.
type typeRunner interface {
	bench(ctx context.Context, a *app, algorithm string) error
	compare(ctx context.Context, a *app) error
	verify(b *suite.Builder, seed uint64)
}

type typed[E constraints.Integer] struct{}

var typeRunners = map[string]typeRunner{
	"int8":   typed[int8]{},
	"int16":  typed[int16]{},
	"int32":  typed[int32]{},
	"int64":  typed[int64]{},
	"uint8":  typed[uint8]{},
	"uint16": typed[uint16]{},
	"uint32": typed[uint32]{},
	"uint64": typed[uint64]{},
}

// runnersFor resolves type names, rejecting unknown ones.
func runnersFor(names []string) ([]typeRunner, error) {
	runners := make([]typeRunner, 0, len(names))
	for _, name := range names {
		r, ok := typeRunners[name]
		if !ok {
			return nil, fmt.Errorf("unknown element type %q (want one of %s)", name, strings.Join(bench.ElementTypes, ", "))
		}
		runners = append(runners, r)
	}
	return runners, nil
}

func (typed[E]) algorithms() []sorting.Algorithm[E] {
	return append(sorting.IntegerAlgorithms[E](), sorting.Reference[E]())
}

func (typed[E]) runner(a *app) (*bench.Runner[E], error) {
	return bench.NewRunner[E](a.cfg, bench.WithLogger(a.logger))
}

func (t typed[E]) bench(ctx context.Context, a *app, algorithm string) error {
	algs := t.algorithms()
	alg, ok := sorting.Lookup(algs, algorithm)
	if !ok {
		names := lo.Map(algs, func(alg sorting.Algorithm[E], _ int) string { return alg.Name })
		return fmt.Errorf("unknown algorithm %q (want one of %s)", algorithm, strings.Join(names, ", "))
	}

	r, err := t.runner(a)
	if err != nil {
		return err
	}
	table, err := r.Run(ctx, alg)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Benchmarking %s with %s", alg.Title, bench.TypeName[E]())
	return bench.WriteReport(a.out, title, bench.Host(), table)
}

// compare runs all algorithms on the small sizes, then every algorithm not
// restricted to small inputs on the full size list.
func (t typed[E]) compare(ctx context.Context, a *app) error {
	r, err := t.runner(a)
	if err != nil {
		return err
	}
	all := t.algorithms()
	efficient := lo.Reject(all, func(alg sorting.Algorithm[E], _ int) bool { return alg.SmallInputsOnly })

	phases := []struct {
		label string
		algs  []sorting.Algorithm[E]
		sizes []int
	}{
		{"all algorithms, small sizes", all, a.cfg.SmallSizes},
		{"efficient algorithms, all sizes", efficient, a.cfg.Sizes},
	}
	for _, p := range phases {
		if len(p.sizes) == 0 {
			continue
		}
		tables, err := r.Compare(ctx, p.algs, p.sizes)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Benchmarking with %s (%s)", bench.TypeName[E](), p.label)
		if err := bench.WriteReport(a.out, title, bench.Host(), tables...); err != nil {
			return err
		}
	}
	return nil
}

func (typed[E]) verify(b *suite.Builder, seed uint64) {
	suite.AddSorts(b, sorting.IntegerAlgorithms[E](), seed)
}
