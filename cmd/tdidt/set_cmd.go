package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/tdidt/dataset"
	"github.com/pbanos/tdidt/dataset/text"
	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	input  *sourceConfig
	output *sourceConfig
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{
		rootCmdConfig: rootConfig,
		input:         &sourceConfig{rootCmdConfig: rootConfig},
		output:        &sourceConfig{rootCmdConfig: rootConfig},
	}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy a dataset between sources",
		Long:  `Read a dataset from a source and write it to another one, so it can be used to grow trees from it`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			d, _, err := config.input.Read(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Writing %d examples to %s...", len(d.Examples), config.output.location)
			err = config.output.Write(cmd.Context(), d)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Done")
		},
	}
	config.input.addFlags(cmd, "input", "i", "dataset to read")
	cmd.PersistentFlags().StringVarP(&(config.output.location), "output", "o", "", "destination of the dataset: a text dataset file, a SQLite3 (.db) file, or a postgresql://, mongodb:// or redis:// URL (defaults to STDOUT, as text)")
	cmd.PersistentFlags().StringVar(&(config.output.table), "output-table", defaultTable, "table, collection or key to write the dataset to on SQL, MongoDB and Redis destinations")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	return scc.input.Validate()
}

func writeTextDataset(outputPath string, d *dataset.Dataset) error {
	f := os.Stdout
	if outputPath != "" {
		var err error
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	_, err := fmt.Fprintln(f, strings.Join(text.Lines(d), "\n"))
	return err
}
