// Copyright 2025 go-introsort Authors
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

// Command introsort sorts newline-separated values and benchmarks the
// sorting engine against adversarial input patterns.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevelEnv sets the default of --log-level.
const logLevelEnv = "INTROSORT_LOG_LEVEL"

// app carries state shared by all subcommands.
type app struct {
	logLevel string
	// log is set by the root command before any subcommand runs.
	log *zap.Logger
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		// No logger when the flags themselves were bad
		if a.log == nil {
			fmt.Fprintln(os.Stderr, "introsort:", err)
		} else {
			a.log.Error("command failed", zap.Error(err))
			_ = a.log.Sync()
		}
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = "info"
	}

	rootCmd := &cobra.Command{
		Use:           "introsort [command]",
		Short:         "Sort values with an introsort and benchmark it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", defaultLevel,
		"log level (debug, info, warn, error); defaults to $"+logLevelEnv)

	rootCmd.AddCommand(newSortCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// newLogger returns a console logger writing to w.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "parsing --log-level %q", level)
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
