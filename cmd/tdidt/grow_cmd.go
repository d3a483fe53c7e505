package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/tdidt"
	"github.com/pbanos/tdidt/tree"
	"github.com/pbanos/tdidt/tree/dot"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	source    *sourceConfig
	output    string
	dotOutput string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig, source: &sourceConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a dataset",
		Long:  `Grow a binary decision tree from a dataset of labeled examples and print it`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			d, labels, err := config.source.Read(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			b, err := tdidt.New(labels, tdidt.WithLogger(config.Logger()))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Growing tree from %d examples with attributes %v...", len(d.Examples), d.Catalog)
			root, err := b.BuildDataset(cmd.Context(), d)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			counts, err := nodeCounts(cmd.Context(), root)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Done: %d nodes of depth up to %d: %v", root.Size(), root.Depth(), counts)
			err = outputTree(config.output, root)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			if config.dotOutput != "" {
				err = outputDot(config.dotOutput, root)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
			}
		},
	}
	config.source.addFlags(cmd, "input", "i", "dataset to grow the tree from")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be printed (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.dotOutput), "dot", "", "path to a file to which the grown tree will be written in Graphviz DOT format")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	return gcc.source.Validate()
}

func outputTree(outputPath string, root *tree.Node) error {
	f := os.Stdout
	if outputPath != "" {
		var err error
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	_, err := fmt.Fprint(f, root)
	return err
}

func outputDot(outputPath string, root *tree.Node) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = dot.Write(f, root); err != nil {
		return fmt.Errorf("writing DOT tree to %s: %v", outputPath, err)
	}
	return nil
}

/*
nodeCounts returns the number of leaves of the tree under "leaf" and the
number of decision nodes under the kind of the attribute they test.
*/
func nodeCounts(ctx context.Context, root *tree.Node) (map[string]int, error) {
	counts := make(map[string]int)
	err := root.Traverse(ctx, false, func(_ context.Context, n *tree.Node) error {
		switch {
		case n.Leaf:
			counts["leaf"]++
		case n.Attribute == nil:
			return fmt.Errorf("%w: decision node without attribute", tree.ErrMalformedTree)
		default:
			counts[n.Attribute.Kind.String()]++
		}
		return nil
	})
	return counts, err
}
