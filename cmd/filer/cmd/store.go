/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/filer/pkg/channel"
	"github.com/ssargent/filer/pkg/storage"
)

func newStoreCmd() *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Keep tagged lists as documents in the embedded store",
	}

	putCmd := &cobra.Command{
		Use:   "put <input.tsv>",
		Short: "Convert tab-delimited text and store it as a new document",
		Long: `Convert tab-delimited rows into a tagged list and store it.

Example:
  filer store put --kind vec2 --tag 4 spawns.tsv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, tag, err := kindAndTag(cmd)
			if err != nil {
				return err
			}
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			s, err := container.OpenStore()
			if err != nil {
				return err
			}
			defer s.Close()

			rows := 0
			id, err := s.Put(func(w channel.Writer) error {
				n, skipped, err := k.persist(string(text), tag, w)
				reportSkipped(skipped)
				rows = n
				return err
			})
			if err != nil {
				return err
			}

			container.Logger().Info("document stored", "id", id.String(), "tag", tag, "rows", rows)
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return nil
		},
	}
	addKindFlags(putCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("kind")
			k, err := lookupKind(name)
			if err != nil {
				return err
			}
			id, err := storage.ParseID(args[0])
			if err != nil {
				return err
			}

			s, err := container.OpenStore()
			if err != nil {
				return err
			}
			defer s.Close()

			return s.Get(id, func(r channel.Reader) error {
				return printList(cmd.OutOrStdout(), k, r, nil)
			})
		},
	}
	getCmd.Flags().StringP("kind", "k", "vec3", "Element kind ("+kindNames()+")")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := storage.ParseID(args[0])
			if err != nil {
				return err
			}

			s, err := container.OpenStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored document ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := container.OpenStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ids, err := s.List()
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id.String())
			}
			return nil
		},
	}

	storeCmd.AddCommand(putCmd, getCmd, deleteCmd, listCmd)
	return storeCmd
}
