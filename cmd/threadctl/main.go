package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/osterhed/thread-priority/pkg/config"
	"github.com/osterhed/thread-priority/pkg/logger"
)

func main() {
	defaultCfg := config.Load(config.ConstantConfigFilename)

	var logLevel string
	rootCmd := &cobra.Command{
		Use:   "threadctl",
		Short: "Inspect and control OS thread scheduling priorities",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Setup(os.Stderr, logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultCfg.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newBenchCmd(defaultCfg))
	rootCmd.AddCommand(newApplyCmd(defaultCfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
