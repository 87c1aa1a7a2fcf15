package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e11jah/bst"
)

func newSearchCmd(opts *options) *cobra.Command {
	var key int

	cmd := &cobra.Command{
		Use:   "search [keys...]",
		Short: "Insert keys and look one up with its neighbours",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildTree(opts, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			found, n := tree.Search(key)
			if !found {
				fmt.Fprintf(out, "%d not found\n", key)
				return nil
			}
			fmt.Fprintf(out, "%d found successor=%s predecessor=%s\n",
				key, describe(n.Successor()), describe(n.Predecessor()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&key, "key", "k", 0, "key to search for")
	return cmd
}

func describe(n bst.Node) string {
	if n == nil {
		return "none"
	}
	return fmt.Sprint(n.Key())
}
