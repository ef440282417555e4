// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/atomix/runtime/sdk/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const envPrefix = "bcount"

var (
	globalFlags = &GlobalFlags{}
)

type GlobalFlags struct {
	Config  string
	Output  string
	Verbose bool
}

func init() {
	cobra.OnInitialize(initConfig)
}

func GetRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bcount",
		Short: "Borrow counter benchmarks",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("verbose") {
				logging.SetLevel(logging.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&globalFlags.Config, "config", "", "config file (default is $HOME/.bcount/config.yaml)")
	cmd.PersistentFlags().StringVarP(&globalFlags.Output, "output", "o", TableFormat, "The output format (table|yaml)")
	cmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "Enable debug logging")

	viper.BindPFlag("output", cmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("output", TableFormat)
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cmd.AddCommand(newConfigCommand())
	cmd.AddCommand(newBenchCommand())
	return cmd
}
