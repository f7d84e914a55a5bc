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
	"bufio"
	"fmt"
	"io"
)

// Report writes one line per result followed by the totals line:
//
//	Running test: testQuickSort/int8/1                             [OK]
//	...
//
//	Run 36 tests. 36 succeeded, 0 failed.
//
// Failed results are followed by their error and a blank line.
func Report(w io.Writer, results []Result, summary Summary) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "Running test: %-48s", r.Name)
		if r.OK() {
			fmt.Fprintln(bw, "  [OK]")
			continue
		}
		fmt.Fprintln(bw, "  [FAILED]")
		fmt.Fprintf(bw, "%v\n\n", r.Err)
	}
	fmt.Fprintf(bw, "\nRun %d tests. %d succeeded, %d failed.\n", summary.Total(), summary.Passed, summary.Failed)
	return bw.Flush()
}
