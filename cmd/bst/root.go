package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/e11jah/bst"
)

type options struct {
	logLevel string
	log      zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "bst",
		Short:        "Build a binary search tree from integer keys and walk it",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("log level %q: %w", opts.logLevel, err)
			}
			opts.log = zerolog.New(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: zerolog.TimeFieldFormat,
				NoColor:    !isTerminal(cmd.ErrOrStderr()),
			}).Level(level).With().Timestamp().Logger()
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newWalkCmd(opts))
	rootCmd.AddCommand(newSearchCmd(opts))
	return rootCmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// buildTree inserts keys in argument order.
func buildTree(opts *options, args []string) (bst.Tree, error) {
	keys, err := parseKeys(args)
	if err != nil {
		return nil, err
	}
	tree := bst.New()
	for _, k := range keys {
		inserted := tree.Insert(k)
		opts.log.Debug().Int("key", k).Bool("inserted", inserted).Msg("insert")
	}
	opts.log.Info().Int("size", tree.Size()).Msg("tree built")
	return tree, nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			k, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid key %q: %w", field, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}
