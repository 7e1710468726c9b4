package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
	"gopkg.in/yaml.v3"

	"github.com/jarinject/jarinject/internal/graph"
)

const defaultConfigFile = "jarinject.yaml"

type CLIConfig struct {
	// Path to the configuration file to use. If empty this will default to a
	// 'jarinject.yaml' file in the current working directory.
	ConfigFile string
	// Path to the build-graph export file written by the upstream build.
	GraphFile string
	// File to which to write execution logs. If empty logs will be written to
	// the standard output of the command invocation.
	LogFile string
	// If set run the full injection pipeline but do not modify any archive.
	DryRun bool
	// If set emit verbose debug logs.
	Verbose bool
	// If set bypass the reachability filter, overriding the configuration
	// file's 'include_all' setting.
	IncludeAll bool

	// Internal state.
	cliConfigData
}

type cliConfigData struct {
	Logger  *zap.Logger
	FS      billy.Filesystem
	Graph   *graph.Graph
	Mapping Mapping
}

func (c *CLIConfig) CheckConfig() error {
	// Logger needs to be checked first as anything after this point might
	// write logs.
	if err := c.checkLogger(); err != nil {
		return err
	}

	if err := c.checkConfigFile(); err != nil {
		return err
	}

	if err := c.checkGraphFile(); err != nil {
		return err
	}

	if c.IncludeAll {
		c.Mapping.IncludeAll = true
	}
	c.FS = osfs.New("/")

	return nil
}

func (c *CLIConfig) checkLogger() error {
	if c.Logger != nil {
		return nil
	}

	var enc zapcore.Encoder
	var level zapcore.LevelEnabler
	if c.Verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
	}

	var out zapcore.WriteSyncer
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY|os.O_EXCL, 0644)
		if err != nil {
			return err
		}
		out = f
	} else {
		out = os.Stdout
	}

	c.Logger = zap.New(zapcore.NewCore(enc, out, level))
	return nil
}

func (c *CLIConfig) checkConfigFile() error {
	if c.ConfigFile == "" {
		c.ConfigFile = defaultConfigFile
		c.Logger.Info("Using configuration file at default location.", zap.String("file", c.ConfigFile))
	}

	c.Logger.Debug("Reading configuration file.", zap.String("file", c.ConfigFile))
	cb, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		c.Logger.Error("Unable to read content of configuration file.", zap.String("file", c.ConfigFile), zap.Error(err))
		return err
	}

	c.Logger.Debug("Parsing configuration file content.", zap.String("file", c.ConfigFile), zap.ByteString("configuration", cb))
	if err = yaml.Unmarshal(cb, &c.Mapping); err != nil {
		c.Logger.Error("Unable to parse configuration file.", zap.String("file", c.ConfigFile), zap.Error(err))
		return err
	}
	c.Mapping.ApplyDefaults()

	if len(c.Mapping.ClassDirs) == 0 {
		c.Logger.Info("No class output directories are configured, metadata injection will be a no-op.", zap.String("file", c.ConfigFile))
	}
	for i, d := range c.Mapping.ClassDirs {
		ad, err := filepath.Abs(d)
		if err != nil {
			c.Logger.Error("Unable to resolve class output directory.", zap.String("directory", d), zap.Error(err))
			return err
		}
		c.Mapping.ClassDirs[i] = ad
	}
	return nil
}

func (c *CLIConfig) checkGraphFile() error {
	if c.GraphFile == "" {
		c.Logger.Error("No build-graph export file was specified.")
		return errors.New("no build-graph export file specified")
	}

	c.Logger.Debug("Reading build-graph export file.", zap.String("file", c.GraphFile))
	gb, err := os.ReadFile(c.GraphFile)
	if err != nil {
		c.Logger.Error("Unable to read content of build-graph export file.", zap.String("file", c.GraphFile), zap.Error(err))
		return err
	}

	g, err := graph.Load(c.Logger, gb)
	if err != nil {
		return fmt.Errorf("invalid build-graph export in %q: %v", c.GraphFile, err)
	}
	c.Graph = g

	// Jar locations in the product map may be relative to the invocation
	// directory.
	for name, dirs := range c.Graph.Products() {
		abs := map[string][]string{}
		for d, jars := range dirs {
			ad, err := filepath.Abs(d)
			if err != nil {
				c.Logger.Error("Unable to resolve jar product base directory.", zap.String("directory", d), zap.Error(err))
				return err
			}
			abs[ad] = jars
		}
		c.Graph.Products()[name] = abs
	}
	return nil
}
