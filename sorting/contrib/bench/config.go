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
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sorting/sorting/contrib/dataset"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("bench: invalid config")

// ElementTypes lists the element type names a Config may select.
var ElementTypes = []string{"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64"}

// Config is a benchmark plan. It can be decoded from TOML:
//
//	sizes = [100, 1000, 10000, 100000]
//	small_sizes = [100, 1000]
//	distributions = ["Random", "Sorted", "Reverse Sorted", "Nearly Sorted", "Few Unique"]
//	runs = 5
//	disorder = 0.1
//	unique = 10
//	types = ["int32", "uint32", "int64", "uint64"]
//	seed = 42
type Config struct {
	// Sizes are the input lengths for efficient algorithms.
	Sizes []int `toml:"sizes"`

	// SmallSizes are the input lengths for algorithms marked SmallInputsOnly.
	SmallSizes []int `toml:"small_sizes"`

	Distributions []dataset.Distribution `toml:"distributions"`

	// Runs is the number of fresh inputs averaged per cell.
	Runs int `toml:"runs"`

	// Disorder is the swap fraction for nearly sorted inputs.
	Disorder float64 `toml:"disorder"`

	// Unique is the value pool size for few-unique inputs.
	Unique int `toml:"unique"`

	// Types are element type names from ElementTypes.
	Types []string `toml:"types"`

	// Seed makes generated inputs reproducible. Zero asks the caller to
	// pick a seed.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns the standard plan: four sizes up to 100000, the two
// smallest for quadratic algorithms, all distributions, five runs per cell.
func DefaultConfig() Config {
	return Config{
		Sizes:         []int{100, 1000, 10000, 100000},
		SmallSizes:    []int{100, 1000},
		Distributions: slices.Clone(dataset.Distributions),
		Runs:          5,
		Disorder:      dataset.DefaultDisorder,
		Unique:        dataset.DefaultUnique,
		Types:         []string{"int32", "uint32", "int64", "uint64"},
	}
}

// LoadConfig reads a TOML plan from path. Keys missing from the file keep
// their DefaultConfig values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("bench: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(k toml.Key, _ int) string { return k.String() })
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case len(c.Sizes) == 0:
		return fmt.Errorf("%w: sizes must not be empty", ErrInvalidConfig)
	case lo.SomeBy(c.Sizes, func(n int) bool { return n < 0 }):
		return fmt.Errorf("%w: sizes must not be negative: %v", ErrInvalidConfig, c.Sizes)
	case lo.SomeBy(c.SmallSizes, func(n int) bool { return n < 0 }):
		return fmt.Errorf("%w: small_sizes must not be negative: %v", ErrInvalidConfig, c.SmallSizes)
	case len(c.Distributions) == 0:
		return fmt.Errorf("%w: distributions must not be empty", ErrInvalidConfig)
	case c.Runs < 1:
		return fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidConfig, c.Runs)
	case c.Disorder < 0 || c.Disorder > 1:
		return fmt.Errorf("%w: disorder must be within [0, 1], got %g", ErrInvalidConfig, c.Disorder)
	case c.Unique < 1:
		return fmt.Errorf("%w: unique must be at least 1, got %d", ErrInvalidConfig, c.Unique)
	case len(c.Types) == 0:
		return fmt.Errorf("%w: types must not be empty", ErrInvalidConfig)
	}
	if unknown, _ := lo.Difference(c.Types, ElementTypes); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown element types %v", ErrInvalidConfig, unknown)
	}
	return nil
}
