package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	configFile string
	v          *viper.Viper
	logger     *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cliParser().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:     "tdidt",
		Short:   "tdidt is a tool to grow binary decision trees",
		Long:    `A tool to grow binary decision trees from labeled examples, test them, and use them to classify new examples`,
		Version: version(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.load()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "trace the growing of trees on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YML config file with default flag values")
	rootCmd.PersistentFlags().String("positive", "", "outcome label of positive examples (defaults to yes)")
	rootCmd.PersistentFlags().String("negative", "", "outcome label of negative examples (defaults to no)")
	rootCmd.PersistentFlags().String("true", "", "value binary attributes take when they hold (defaults to yes)")
	for _, name := range []string{"positive", "negative", "true"} {
		config.v.BindPFlag("labels."+name, rootCmd.PersistentFlags().Lookup(name))
	}
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), classifyCmd(config), setCmd(config))
	return rootCmd
}
