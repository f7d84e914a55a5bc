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
	"github.com/spf13/cobra"
)

func (a *app) benchCommand() *cobra.Command {
	var algorithm, typeName string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time one algorithm across sizes and distributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runners, err := runnersFor([]string{typeName})
			if err != nil {
				return err
			}
			return runners[0].bench(cmd.Context(), a, algorithm)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "quick", "algorithm name: bubble, heap, insertion, merge, quick, radix or std")
	cmd.Flags().StringVarP(&typeName, "type", "t", "int32", "element type")
	return cmd
}
