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
	"time"
)

// Measure returns the wall-clock time taken by sortFn to sort data in place.
func Measure[E any](sortFn func([]E), data []E) time.Duration {
	start := time.Now()
	sortFn(data)
	return time.Since(start)
}

// Mean returns the average of ds, or zero when ds is empty.
func Mean(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total / time.Duration(len(ds))
}

// cellSeed derives a reproducible generator seed for one input of a cell,
// so every algorithm sees the same inputs for a given size, distribution
// and run. The mixing step is splitmix64's finalizer.
func cellSeed(base uint64, size int, dist int, run int) uint64 {
	z := base + uint64(size)*0x9e3779b97f4a7c15 + uint64(dist)<<48 + uint64(run)<<32
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
