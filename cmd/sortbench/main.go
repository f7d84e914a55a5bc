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

// Command sortbench measures and verifies the algorithms of the sorting
// package.
//
// Usage:
//
//	sortbench compare                              # every algorithm, every size
//	sortbench compare --type int64
//	sortbench bench --algorithm radix --type uint32
//	sortbench verify                               # randomized checks against slices.Sort
//	sortbench host
//
// Every subcommand accepts --config to load a TOML benchmark plan, --seed to
// fix generated inputs and --verbose for development logging.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
