/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssargent/filer/pkg/channel"
	"github.com/ssargent/filer/pkg/codec"
	"github.com/ssargent/filer/pkg/gamedata"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <file.bin>",
		Short: "Print the elements of a tagged binary list",
		Long: `Print the tag and elements of a tagged binary list file.

Example:
  filer show --kind vec3 waypoints.bin
  filer show --kind vec3 --expect-tag 1 waypoints.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("kind")
			k, err := lookupKind(name)
			if err != nil {
				return err
			}

			var expect *codec.Tag
			if cmd.Flags().Changed("expect-tag") {
				v, _ := cmd.Flags().GetInt32("expect-tag")
				t := codec.Tag(v)
				expect = &t
			}

			return channel.WithReader(args[0], func(r channel.Reader) error {
				return printList(cmd.OutOrStdout(), k, r, expect)
			})
		},
	}

	showCmd.Flags().StringP("kind", "k", "vec3", "Element kind ("+kindNames()+")")
	showCmd.Flags().Int32("expect-tag", 0, "Fail unless the list carries this tag")
	return showCmd
}

// printList reads a tag and a list from r and prints them
func printList(out io.Writer, k kind, r channel.Reader, expect *codec.Tag) error {
	var tag codec.Tag
	if expect != nil {
		if err := codec.ExpectTag(r, *expect); err != nil {
			return err
		}
		tag = *expect
	} else {
		var err error
		if tag, err = codec.ReadTag(r); err != nil {
			return err
		}
	}

	lines, err := k.load(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "tag: %d\ncount: %d\n", tag, len(lines))
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func reportSkipped(skipped []*gamedata.ConvertError) {
	for _, s := range skipped {
		container.Logger().Warn("cell skipped", "line", s.Line, "column", s.Column, "text", s.Text, "error", s.Err)
	}
}
