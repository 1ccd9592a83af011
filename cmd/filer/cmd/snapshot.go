/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and load whole-list snapshots in the app data directory",
	}

	saveCmd := &cobra.Command{
		Use:   "save <input.tsv> <name>",
		Short: "Convert tab-delimited text and save it as a snapshot",
		Long: `Convert tab-delimited rows and save the whole list as a snapshot
inside the app data directory.

Example:
  filer snapshot save --kind vec3 waypoints.tsv waypoints.snap`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("kind")
			k, err := lookupKind(name)
			if err != nil {
				return err
			}
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			app := container.AppData()
			rows, skipped, err := k.saveSnapshot(app, args[1], string(text), container.SnapshotOptions())
			reportSkipped(skipped)
			if err != nil {
				return err
			}

			container.Logger().Info("snapshot saved", "path", app.Path(args[1]), "rows", rows)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d rows to %s\n", rows, app.Path(args[1]))
			return nil
		},
	}
	saveCmd.Flags().StringP("kind", "k", "vec3", "Element kind ("+kindNames()+")")

	loadCmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Print a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("kind")
			k, err := lookupKind(name)
			if err != nil {
				return err
			}

			lines, err := k.loadSnapshot(container.AppData(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "count: %d\n", len(lines))
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	loadCmd.Flags().StringP("kind", "k", "vec3", "Element kind ("+kindNames()+")")

	snapshotCmd.AddCommand(saveCmd, loadCmd)
	return snapshotCmd
}
