package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacedata/tlefetch/internal/app"
	"github.com/spacedata/tlefetch/internal/config"
	"github.com/spacedata/tlefetch/internal/logging"
)

var (
	logger     *zap.Logger
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "tlefetch",
	Short: "TLE retriever for space-track.org",
	Long: `tlefetch retrieves two-line element sets for a configured list of
catalog IDs from space-track.org and writes them to a plain-text file,
three lines per object (name, TLE line 1, TLE line 2).`,
	Version:       "0.0.1",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(logging.Config{Level: logLevel})
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logging.Sync(logger)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("starting up", logging.ConfigFile(configFile))
		settings, err := config.Load(configFile)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context(), settings, logger)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to the settings file")
	rootCmd.MarkFlagRequired("config")
	rootCmd.Flags().StringVarP(&logLevel, "loglevel", "l", "info", "logging level off, error, warn, info, debug or trace")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
