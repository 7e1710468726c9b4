package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jarinject/jarinject/cmd"
	"github.com/jarinject/jarinject/cmd/config"
)

func main() {
	var c config.CLIConfig
	root := cobra.Command{
		Use: "jarinject",
		PersistentPreRunE: func(_ *cobra.Command, args []string) error {
			return c.CheckConfig()
		},
		SilenceUsage: true,
	}

	attachGlobalFlags(&root, &c)

	root.AddCommand(
		checkCmd(&c),
		injectCmd(&c),
	)

	if err := root.Execute(); err != nil {
		if c.Logger != nil {
			c.Logger.Debug("Execution failed.", zap.Error(err))
		}
		os.Exit(1)
	}
}

func checkCmd(c *config.CLIConfig) *cobra.Command {
	check := &cobra.Command{
		Use: "check",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.RunCheck(c)
		},
	}

	return check
}

func injectCmd(c *config.CLIConfig) *cobra.Command {
	inject := &cobra.Command{
		Use: "inject",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.RunInject(c)
		},
	}
	attachInjectFlags(inject, c)

	return inject
}
