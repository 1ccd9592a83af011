/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/filer/pkg/channel"
	"github.com/ssargent/filer/pkg/codec"
)

func newImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import <input.tsv> <output.bin>",
		Short: "Convert tab-delimited text into a tagged binary list",
		Long: `Convert tab-delimited rows into a tagged binary list file.

Each line becomes one element. Cells that cannot be converted keep their
zero value and are reported as warnings.

Example:
  filer import --kind vec3 --tag 1 waypoints.tsv waypoints.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, tag, err := kindAndTag(cmd)
			if err != nil {
				return err
			}

			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			f, err := channel.OpenWithOptions(args[1], channel.WriteOnly, container.ChannelOptions())
			if err != nil {
				return err
			}
			rows, skipped, err := k.persist(string(text), tag, f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			reportSkipped(skipped)
			container.Logger().Info("list written", "path", args[1], "tag", tag, "rows", rows, "bytes", f.Position())
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows (%d bytes) to %s\n", rows, f.Position(), args[1])
			return nil
		},
	}

	addKindFlags(importCmd)
	return importCmd
}

// addKindFlags registers --kind and --tag
func addKindFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("kind", "k", "vec3", "Element kind ("+kindNames()+")")
	cmd.Flags().Int32P("tag", "t", 0, "Tag written before the list")
}

func kindAndTag(cmd *cobra.Command) (kind, codec.Tag, error) {
	name, _ := cmd.Flags().GetString("kind")
	k, err := lookupKind(name)
	if err != nil {
		return nil, 0, err
	}
	tag, _ := cmd.Flags().GetInt32("tag")
	return k, codec.Tag(tag), nil
}
