package cmd

import (
	"github.com/jarinject/jarinject/cmd/config"
	"github.com/jarinject/jarinject/internal/inject"
)

func RunCheck(c *config.CLIConfig) error {
	c.Logger.Info("Checking injection configuration against the build graph and jar products.")
	if err := inject.Execute(c.Logger, c.FS, c.Graph, &c.Mapping, true); err != nil {
		return err
	}
	c.Logger.Info("The injection configuration in " + c.ConfigFile + " is valid.")
	return nil
}
