package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/tdidt"
	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/dataset/input"
	"github.com/pbanos/tdidt/tree"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	source *sourceConfig
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig, source: &sourceConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "classify [EXAMPLE]...",
		Short: "Classify examples with a tree grown from a dataset",
		Long: `Grow a tree from a dataset and use it to classify the given examples,
comma-separated attribute values without outcome. Examples are read from
STDIN, one per line, when none is given as argument.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if config.source.location == "" && len(args) == 0 {
				fmt.Fprintln(os.Stderr, "cannot read both the training dataset and the examples to classify from STDIN")
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
			root, err := b.BuildDataset(cmd.Context(), d)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			classify := func(_ int, e dataset.Example) (bool, error) {
				label, err := tree.Classify(root, e)
				if err != nil {
					return false, err
				}
				fmt.Printf("%s => %s\n", strings.Join(e[:len(e)-1], ","), label)
				return true, nil
			}
			reject := func(line string, err error) {
				fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
			}
			if len(args) > 0 {
				err = input.Read(cmd.Context(), strings.NewReader(strings.Join(args, "\n")), d.Catalog, classify, reject)
			} else {
				err = input.Read(cmd.Context(), os.Stdin, d.Catalog, classify, reject)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "classifying: %v\n", err)
				os.Exit(5)
			}
		},
	}
	config.source.addFlags(cmd, "input", "i", "dataset to grow the tree from")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	return ccc.source.Validate()
}
