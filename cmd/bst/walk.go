package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e11jah/bst"
)

func newWalkCmd(opts *options) *cobra.Command {
	var (
		order   string
		deletes []string
	)

	cmd := &cobra.Command{
		Use:   "walk [keys...]",
		Short: "Insert keys, delete some, and print a traversal",
		Example: "  bst walk 5 3 8 1 4 7 9 --order morris\n" +
			"  bst walk 5,3,8 --delete 5 --order in",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := bst.ParseOrder(order)
			if err != nil {
				return fmt.Errorf("order %q: %w", order, err)
			}

			tree, err := buildTree(opts, args)
			if err != nil {
				return err
			}

			toDelete, err := parseKeys(deletes)
			if err != nil {
				return err
			}
			for _, k := range toDelete {
				deleted := tree.Delete(k)
				opts.log.Debug().Int("key", k).Bool("deleted", deleted).Msg("delete")
			}

			opts.log.Debug().Stringer("order", o).Int("size", tree.Size()).Msg("walk")
			fmt.Fprintln(cmd.OutOrStdout(), formatKeys(tree.Keys(o)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&order, "order", "o", bst.InOrder.String(), "traversal order (in, pre, post, morris)")
	cmd.Flags().StringSliceVarP(&deletes, "delete", "d", nil, "keys to delete after inserting")
	return cmd
}
