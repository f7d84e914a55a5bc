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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRender(t *testing.T) {
	table := &Table{
		RowHeader: "Size",
		Columns:   []string{"Random", "Sorted"},
		Rows: []Row{
			{Label: formatSize(100000), Cells: []time.Duration{1500 * time.Microsecond, 2 * time.Second}},
		},
	}

	lines := strings.Split(table.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Size           Random         Sorted         ", lines[0])
	assert.Equal(t, "100,000        1.500          2,000.000      ", lines[1])
	assert.Empty(t, lines[2])
}

func TestTableRenderAlgorithmRows(t *testing.T) {
	table := &Table{
		Caption:   "Size: 100",
		RowHeader: "Algorithm",
		Columns:   []string{"Random"},
		Rows:      []Row{{Label: "Heap Sort", Cells: []time.Duration{0}}},
	}

	lines := strings.Split(table.String(), "\n")
	assert.Equal(t, "Size: 100", lines[0])
	assert.Equal(t, "Algorithm           Random         ", lines[1])
	assert.Equal(t, "Heap Sort           0.000          ", lines[2])
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	host := HostInfo{GOOS: "linux", GOARCH: "amd64", CPUs: 2, Features: []string{"sse2"}}
	table := &Table{RowHeader: "Size", Columns: []string{"Random"}, Rows: []Row{{Label: "1", Cells: []time.Duration{0}}}}

	require.NoError(t, WriteReport(&buf, "Benchmarking Quick Sort with int32", host, table, table))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "===== Benchmarking Quick Sort with int32 =====\nHost: linux/amd64, 2 CPUs, sse2\n"))
	assert.Equal(t, 2, strings.Count(out, "Size           Random"))
}
