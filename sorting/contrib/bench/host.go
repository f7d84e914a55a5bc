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
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
)

// HostInfo describes the machine a benchmark ran on.
type HostInfo struct {
	GOOS     string
	GOARCH   string
	CPUs     int
	Features []string
}

// cpuFeature pairs a feature name with whether the CPU reports it.
// Set by detectFeatures in host_*.go files.
type cpuFeature struct {
	name    string
	present bool
}

// Host returns information about the current machine. Features lists the
// instruction set extensions reported by golang.org/x/sys/cpu.
func Host() HostInfo {
	present := lo.Filter(detectFeatures(), func(f cpuFeature, _ int) bool { return f.present })
	return HostInfo{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
		Features: lo.Map(present, func(f cpuFeature, _ int) string { return f.name }),
	}
}

// String returns a single line such as "linux/amd64, 8 CPUs, avx2 bmi2 popcnt".
func (h HostInfo) String() string {
	features := "no extensions detected"
	if len(h.Features) > 0 {
		features = strings.Join(h.Features, " ")
	}
	return fmt.Sprintf("%s/%s, %d CPUs, %s", h.GOOS, h.GOARCH, h.CPUs, features)
}
