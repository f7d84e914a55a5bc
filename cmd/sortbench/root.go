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
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-sorting/sorting/contrib/bench"
)

// app holds state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	seed       uint64

	cfg    bench.Config
	logger *zap.Logger
	out    io.Writer
}

func newRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark and verify in-place sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	a.bindFlags(root.PersistentFlags())
	root.AddCommand(
		a.benchCommand(),
		a.compareCommand(),
		a.verifyCommand(),
		a.hostCommand(),
	)
	return root
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&a.configPath, "config", "", "TOML benchmark plan (default: built-in plan)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every measurement")
	flags.Uint64Var(&a.seed, "seed", 0, "seed for generated inputs (default: time based)")
}

func (a *app) setup(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()

	logger, err := newLogger(a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	a.cfg = bench.DefaultConfig()
	if a.configPath != "" {
		if a.cfg, err = bench.LoadConfig(a.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("seed") {
		a.cfg.Seed = a.seed
	}
	if a.cfg.Seed == 0 {
		a.cfg.Seed = uint64(time.Now().UnixNano())
	}

	a.logger.Info("configured",
		zap.String("command", cmd.Name()),
		zap.Uint64("seed", a.cfg.Seed),
		zap.Ints("sizes", a.cfg.Sizes),
		zap.Int("runs", a.cfg.Runs),
	)
	return nil
}

// newLogger logs warnings and errors as JSON, or everything in development
// format when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return logger, nil
}
