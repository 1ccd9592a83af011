/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/filer/pkg/channel"
	"github.com/ssargent/filer/pkg/codec"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.bin>",
		Short: "Dump the header and raw bytes of a list file",
		Long: `Print the tag and count header of a list file followed by a hex dump.

The element kind is not needed; the payload is shown as raw bytes.

Example:
  filer inspect waypoints.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			err := channel.WithReader(args[0], func(r channel.Reader) error {
				tag, err := codec.ReadTag(r)
				if err != nil {
					return err
				}
				count, err := codec.ReadInt32(r)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "tag: %d\ncount: %d\n", tag, count)
				return nil
			})
			var shortErr *channel.ShortReadError
			if errors.As(err, &shortErr) {
				fmt.Fprintf(out, "truncated header: %v\n", shortErr)
			} else if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			fmt.Fprintf(out, "size: %d bytes\n", len(data))
			fmt.Fprint(out, hex.Dump(data))
			return nil
		},
	}
}
