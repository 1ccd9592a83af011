/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/filer/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file and create the data directories.

Examples:
  filer init
  filer init --config ./filer.yaml --data-dir ./data --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{configOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.GetDefaultConfigPath()
			}
			force, _ := cmd.Flags().GetBool("force")

			if config.ConfigExists(path) && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}

			cfg := *container.Config()
			if err := config.SaveConfig(&cfg, path); err != nil {
				return err
			}
			if err := container.AppData().Ensure(); err != nil {
				return err
			}

			container.Logger().Info("configuration written", "path", path, "data_dir", cfg.DataDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", path)
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
	return initCmd
}
