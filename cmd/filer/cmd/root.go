/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/filer/pkg/config"
	"github.com/ssargent/filer/pkg/di"
)

// container is built in PersistentPreRunE unless a test injected one
var container *di.Container

// SetContainer injects a dependency container, bypassing config loading
func SetContainer(c *di.Container) {
	container = c
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filer",
		Short: "filer - tagged binary lists",
		Long: `filer persists typed lists in a tagged little-endian binary format
and keeps them as files, as documents in an embedded store, or as snapshots.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if container != nil {
				return nil
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
			if err != nil {
				return err
			}
			container = di.NewContainer(cfg, logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory, overrides the config file")
	rootCmd.PersistentFlags().String("app-data-dir", "", "Snapshot directory, overrides the config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCmd(),
		newImportCmd(),
		newShowCmd(),
		newInspectCmd(),
		newStoreCmd(),
		newSnapshotCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// configOptional marks commands that may run before their --config file exists
const configOptional = "config-optional"

// loadConfig reads the config file, if any, and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	exists := config.ConfigExists(path)
	if explicit && !exists && cmd.Annotations[configOptional] == "true" {
		explicit = false
	}
	if explicit || exists {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if appData, _ := cmd.Flags().GetString("app-data-dir"); appData != "" {
		cfg.AppDataDir = appData
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
