package cmd

import (
	"github.com/jarinject/jarinject/cmd/config"
	"github.com/jarinject/jarinject/internal/inject"
)

func RunInject(c *config.CLIConfig) error {
	return inject.Execute(c.Logger, c.FS, c.Graph, &c.Mapping, c.DryRun)
}
