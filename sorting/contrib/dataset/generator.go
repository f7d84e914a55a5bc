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

package dataset

import (
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultDisorder is the fraction of elements swapped in nearly sorted data.
	DefaultDisorder = 0.1

	// DefaultUnique is the size of the value pool for few-unique data.
	DefaultUnique = 10
)

// Generator produces slices of E under the supported distributions.
// A Generator is not safe for concurrent use.
type Generator[E constraints.Integer] struct {
	rng *rand.Rand

	// Disorder is the fraction of n used as the number of random pair
	// swaps applied to nearly sorted data.
	Disorder float64

	// Unique is the number of distinct candidate values for few-unique data.
	Unique int
}

// NewGenerator returns a Generator seeded deterministically from seed.
func NewGenerator[E constraints.Integer](seed uint64) *Generator[E] {
	return &Generator[E]{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Disorder: DefaultDisorder,
		Unique:   DefaultUnique,
	}
}

// value draws one element uniformly from the full range of E.
// Converting the 64 random bits truncates them to E's width.
func (g *Generator[E]) value() E {
	return E(g.rng.Uint64())
}

// Random returns n uniformly random elements.
func (g *Generator[E]) Random(n int) []E {
	return lo.Times(n, func(int) E { return g.value() })
}

// Ascending returns n random elements sorted ascending.
func (g *Generator[E]) Ascending(n int) []E {
	data := g.Random(n)
	slices.Sort(data)
	return data
}

// Descending returns n random elements sorted descending.
func (g *Generator[E]) Descending(n int) []E {
	data := g.Ascending(n)
	slices.Reverse(data)
	return data
}

// NearlySorted returns ascending data after int(n*Disorder) swaps of two
// randomly chosen positions.
func (g *Generator[E]) NearlySorted(n int) []E {
	data := g.Ascending(n)
	if n == 0 {
		return data
	}
	swaps := int(float64(n) * g.Disorder)
	for range swaps {
		i, j := g.rng.IntN(n), g.rng.IntN(n)
		data[i], data[j] = data[j], data[i]
	}
	return data
}

// FewUnique returns n elements each picked from a pool of Unique random values.
func (g *Generator[E]) FewUnique(n int) []E {
	return g.FromValues(n, lo.Times(max(g.Unique, 1), func(int) E { return g.value() }))
}

// FromValues returns n elements each picked uniformly from values.
// values must not be empty when n > 0.
func (g *Generator[E]) FromValues(n int, values []E) []E {
	return lo.Times(n, func(int) E { return values[g.rng.IntN(len(values))] })
}

// Generate returns n elements following d. Unknown distributions fall back
// to Random.
func (g *Generator[E]) Generate(d Distribution, n int) []E {
	switch d {
	case Ascending:
		return g.Ascending(n)
	case Descending:
		return g.Descending(n)
	case NearlySorted:
		return g.NearlySorted(n)
	case FewUnique:
		return g.FewUnique(n)
	default:
		return g.Random(n)
	}
}
