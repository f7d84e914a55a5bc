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

func (a *app) compareCommand() *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every algorithm size by size",
		Long: `Compare runs two phases per element type: all algorithms on the small
sizes, then the algorithms suited to large inputs on every size. Element
types come from the config unless --type is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("type") {
				types = a.cfg.Types
			}
			runners, err := runnersFor(types)
			if err != nil {
				return err
			}
			for _, r := range runners {
				if err := r.compare(cmd.Context(), a); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "element types to compare (repeatable)")
	return cmd
}
