package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/on-the-ground/tally/config"
	"github.com/on-the-ground/tally/internal/logging"
	"github.com/on-the-ground/tally/memo"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

func (a *app) load(*cobra.Command, []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("cache_policy", cfg.Cache.Policy),
	)
	return nil
}

func (a *app) sync(*cobra.Command, []string) {
	if a.logger != nil {
		logging.Sync(a.logger)
	}
}

func (a *app) newCache() (*memo.Cache, error) {
	opts, err := a.cfg.MemoOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = a.logger
	return memo.New(opts)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "tally",
		Short:             "Catalog lookup and compounding forecasts",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		PersistentPostRun: a.sync,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "tally.yaml", "path to the YAML configuration")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level from the configuration")

	root.AddCommand(
		newSearchCmd(a),
		newForecastCmd(a),
		newHistoryCmd(a),
		newRatesCmd(a),
		newReachCmd(a),
		newLatticeCmd(a),
		newDeskCmd(a),
		newConfigCmd(),
	)
	return root
}

func newConfigCmd() *cobra.Command {
	var keysOnly bool
	cmd := &cobra.Command{
		Use:   "default-config",
		Short: "Print the default configuration file",
		// skip config loading: this is how users bootstrap one
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		PersistentPostRun: func(*cobra.Command, []string) {},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if keysOnly {
				for _, key := range config.Keys {
					fmt.Fprintln(out, key)
				}
				return nil
			}
			_, err := out.Write([]byte(config.DefaultYAML()))
			return err
		},
	}
	cmd.Flags().BoolVar(&keysOnly, "keys", false, "list the dotted configuration keys instead")
	return cmd
}
