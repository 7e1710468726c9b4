package main

import (
	"github.com/spf13/cobra"

	"github.com/jarinject/jarinject/cmd/config"
)

func attachGlobalFlags(command *cobra.Command, c *config.CLIConfig) {
	command.PersistentFlags().StringVarP(
		&c.ConfigFile,
		"configuration",
		"c",
		"",
		"Location of the configuration file to use.",
	)
	command.PersistentFlags().StringVarP(
		&c.GraphFile,
		"graph",
		"g",
		"",
		"Location of the build-graph export file written by the upstream build.",
	)
	command.PersistentFlags().BoolVarP(
		&c.Verbose,
		"verbose",
		"v",
		false,
		"Print (very) verbose debug logs.",
	)
}

func attachInjectFlags(command *cobra.Command, c *config.CLIConfig) {
	command.Flags().BoolVarP(
		&c.DryRun,
		"dry-run",
		"d",
		false,
		"Run the full injection pipeline but do not modify any archive.",
	)
	command.Flags().BoolVar(
		&c.IncludeAll,
		"include-all",
		false,
		"Merge every metadata record into each binary's jars regardless of class reachability.",
	)
}
