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
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDistribution is returned when a distribution name is not recognized.
var ErrUnknownDistribution = errors.New("dataset: unknown distribution")

// Distribution selects the shape of generated data.
type Distribution int

const (
	// Random draws every element uniformly from the full range of the type.
	Random Distribution = iota

	// Ascending is random data sorted ascending.
	Ascending

	// Descending is random data sorted descending.
	Descending

	// NearlySorted is ascending data with a fraction of elements swapped.
	NearlySorted

	// FewUnique draws every element from a small pool of values.
	FewUnique
)

// Distributions lists every distribution in report order.
var Distributions = []Distribution{Random, Ascending, Descending, NearlySorted, FewUnique}

// String returns the display name of the distribution.
func (d Distribution) String() string {
	switch d {
	case Random:
		return "Random"
	case Ascending:
		return "Sorted"
	case Descending:
		return "Reverse Sorted"
	case NearlySorted:
		return "Nearly Sorted"
	case FewUnique:
		return "Few Unique"
	default:
		return "Unknown"
	}
}

// ParseDistribution parses a distribution name. Matching ignores case,
// spaces, hyphens and underscores, and accepts both display names and the
// aliases "ascending" and "descending".
func ParseDistribution(name string) (Distribution, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))

	switch key {
	case "random":
		return Random, nil
	case "sorted", "ascending":
		return Ascending, nil
	case "reversesorted", "descending":
		return Descending, nil
	case "nearlysorted":
		return NearlySorted, nil
	case "fewunique":
		return FewUnique, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
}

// MarshalText implements encoding.TextMarshaler.
func (d Distribution) MarshalText() ([]byte, error) {
	if d < Random || d > FewUnique {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDistribution, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Distribution) UnmarshalText(text []byte) error {
	parsed, err := ParseDistribution(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
