package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A trading journal for accounts and broker-reported trades",
	Long: `Tradelog records trading accounts and individual trades in a local
key-value store (SQLite or a JSON file).

It provides tools for:
  - Managing trading accounts (create, update, list, delete)
  - Recording trades manually with full execution detail
  - Importing pasted broker statement lines
  - Rendering journal entries as Org-mode blocks

Complete documentation is available at https://github.com/rustyeddy/tradelog`,
	SilenceUsage: true,
}

var (
	cfgFile string
	debug   bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default built-in sqlite at ./tradelog.sqlite)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, nil, err
		}
	}
	if debug {
		cfg.Log.Debug = true
	}

	log := zap.NewNop()
	if cfg.Log.Debug {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("init logger: %w", err)
		}
	}
	return cfg, log, nil
}

// openJournal wires config, storage and the journal together for a command
// run. The returned func closes the backend.
func openJournal() (*journal.Journal, *zap.Logger, func(), error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	kv, err := cfg.OpenStorage()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open storage: %w", err)
	}

	j, err := journal.Open(kv, log)
	if err != nil {
		kv.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		_ = kv.Close()
		_ = log.Sync()
	}
	return j, log, cleanup, nil
}
