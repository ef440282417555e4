// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <subcommand>",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigViewCommand())
	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "get <key>",
		Args: cobra.ExactArgs(1),
		Run:  runConfigGetCommand,
	}
}

func runConfigGetCommand(cmd *cobra.Command, args []string) {
	value := viper.Get(args[0])
	ExitWithOutput(value)
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "view",
		Args: cobra.NoArgs,
		Run:  runConfigViewCommand,
	}
}

func runConfigViewCommand(cmd *cobra.Command, args []string) {
	if err := encodeYAML(os.Stdout, viper.AllSettings()); err != nil {
		ExitWithError(ExitError, err)
	}
	ExitWithSuccess()
}

func initConfig() {
	if globalFlags.Config != "" {
		viper.SetConfigFile(globalFlags.Config)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			ExitWithError(ExitError, err)
		}

		viper.SetConfigName("config")
		viper.AddConfigPath(home + "/.bcount")
		viper.AddConfigPath("/etc/bcount")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("Using config file %s", viper.ConfigFileUsed())
	}
}
