package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pbanos/tdidt"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	source  *sourceConfig
	times   int
	percent int
	seed    int64
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig, source: &sourceConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the accuracy of trees grown from a dataset",
		Long:  `Repeatedly grow a tree from a random portion of a dataset and test it against the rest`,
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
			if config.seed == 0 {
				config.seed = time.Now().UnixNano()
			}
			config.Logf("Running %d experiments training on %d%% of %d examples with seed %d...", config.times, config.percent, len(d.Examples), config.seed)
			results, err := b.RunExperiments(cmd.Context(), d, config.times, config.percent, rand.New(rand.NewSource(config.seed)))
			if err != nil {
				fmt.Fprintf(os.Stderr, "running experiments: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			fmt.Println(resultsTable(results))
		},
	}
	config.source.addFlags(cmd, "input", "i", "dataset to run the experiments on")
	cmd.PersistentFlags().IntVarP(&(config.times), "times", "t", 10, "number of experiments to run")
	cmd.PersistentFlags().IntVarP(&(config.percent), "percent", "p", 66, "percent of the examples used to grow the tree on each experiment, the rest are used to test it")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the shuffling of examples (defaults to the current time)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.times < 1 {
		return fmt.Errorf("times must be positive, got %d", tcc.times)
	}
	if tcc.percent < 1 || tcc.percent > 99 {
		return fmt.Errorf("percent must be between 1 and 99, got %d", tcc.percent)
	}
	return tcc.source.Validate()
}

func resultsTable(results []tdidt.ExperimentResult) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Correct", "Total", "Accuracy"})
	var correct, total int
	for _, r := range results {
		t.AppendRow(table.Row{r.Index + 1, r.Correct, r.Total, fmt.Sprintf("%.2f%%", 100*r.Accuracy)})
		correct += r.Correct
		total += r.Total
	}
	var accuracy float64
	if total > 0 {
		accuracy = float64(correct) / float64(total)
	}
	t.AppendFooter(table.Row{"", correct, total, fmt.Sprintf("%.2f%%", 100*accuracy)})
	return t.Render()
}
