// Package cli wires the goto commands together.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/svanberg/goto/internal/config"
	"github.com/svanberg/goto/internal/logging"
	"github.com/svanberg/goto/internal/storage"
)

var (
	cfgPath string
	debug   bool

	cfg    config.Config
	logger *slog.Logger
	store  *storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "goto",
	Short: "Web bookmarks utility",
	Long: `goto stores bookmarks as plain YAML files and finds them again by
tags and fuzzy keywords. Running goto without a subcommand lists all
bookmarks for selection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		path := cfgPath
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}

		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
		if debug {
			cfg.Debug = true
		}

		logger = logging.New(cmd.ErrOrStderr(), cfg.Debug)
		store = storage.New(cfg.DataDir, logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare `goto` behaves like `goto select` over the whole store.
		return runSelect(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
