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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sorting/sorting/contrib/suite"
)

var verifyTypes = []string{"int8", "int32", "int64", "uint8", "uint32", "uint64"}

func (a *app) verifyCommand() *cobra.Command {
	var (
		types   []string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm against slices.Sort on random inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runners, err := runnersFor(types)
			if err != nil {
				return err
			}

			b := suite.NewBuilder(suite.WithLogger(a.logger), suite.WithWorkers(workers))
			for _, r := range runners {
				r.verify(b, a.cfg.Seed)
			}
			s, err := b.Build()
			if err != nil {
				return err
			}

			results, summary := s.Run(cmd.Context())
			if err := suite.Report(a.out, results, summary); err != nil {
				return err
			}
			if !summary.OK() {
				return fmt.Errorf("%d of %d cases failed (seed %d)", summary.Failed, summary.Total(), a.cfg.Seed)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&types, "type", "t", verifyTypes, "element types to verify (repeatable)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "cases run concurrently (default: GOMAXPROCS)")
	return cmd
}
