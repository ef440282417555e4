// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/atomix/go-bcount/pkg/bench"
	"github.com/atomix/runtime/sdk/pkg/errors"
	"github.com/atomix/runtime/sdk/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"os"
)

var log = logging.GetLogger()

const defaultBenchSize = 1000

func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench <subcommand>",
		Short: "Compare raw and counted values",
	}
	cmd.PersistentFlags().IntP("size", "s", defaultBenchSize, "the size of the benchmarked value")
	viper.BindPFlag("size", cmd.PersistentFlags().Lookup("size"))
	viper.SetDefault("size", defaultBenchSize)

	cmd.AddCommand(newBenchAccessCommand())
	cmd.AddCommand(newBenchHashCommand())
	return cmd
}

func newBenchAccessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "access",
		Short: "Time a loop over a raw and a counted value",
		Args:  cobra.NoArgs,
		Run:   runBenchAccessCommand,
	}
}

func runBenchAccessCommand(cmd *cobra.Command, args []string) {
	runBenchCommand(bench.Access)
}

func newBenchHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Time hashing a value against hashing its count",
		Args:  cobra.NoArgs,
		Run:   runBenchHashCommand,
	}
}

func runBenchHashCommand(cmd *cobra.Command, args []string) {
	runBenchCommand(bench.Hash)
}

type benchFunc func(size int) ([]bench.Result, error)

func runBenchCommand(f benchFunc) {
	if err := runBench(os.Stdout, viper.GetString("output"), viper.GetInt("size"), f); err != nil {
		ExitWithError(getExitCode(err), err)
	}
	ExitWithSuccess()
}

func runBench(w io.Writer, format string, size int, f benchFunc) error {
	if !isValidFormat(format) {
		return errors.NewInvalid("unknown output format %s", format)
	}

	results, err := f(size)
	if err != nil {
		return err
	}
	log.Debugf("Benchmark completed with %d results", len(results))
	return printResults(w, format, results)
}

func getExitCode(err error) int {
	if errors.IsInvalid(err) {
		return ExitBadArgs
	}
	return ExitError
}
