// Package cmd provides CLI commands for splitctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/splitledger/pkg/config"
	"github.com/shunichi-ikebuchi/splitledger/pkg/db"
	"github.com/shunichi-ikebuchi/splitledger/pkg/logger"
	"github.com/shunichi-ikebuchi/splitledger/pkg/pathutil"
)

var (
	cfgFile string
	debug   bool
	logJSON bool

	appConfig *config.Config
	log       = zerolog.Nop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "splitctl",
	Short: "Manage double-entry transaction splits",
	Long: `splitctl stores and exchanges the splits of double-entry transactions.

A split is one leg of a transaction: an amount tagged CREDIT or DEBIT
against one account. Splits are exchanged as one record per line:

  amount;currency;accountUID;transactionUID;TYPE[;memo]

Example:
  splitctl import splits.csv
  splitctl pair 3f2a... --account acct-cash --save
  splitctl export --transaction txn-1
  splitctl beancount --transaction txn-1 --date 2024-03-15 --narration "Groceries"
  splitctl stats`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getConfigFile())
		if err != nil {
			return err
		}

		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		if debug || cfg.Debug {
			level = zerolog.DebugLevel
		}
		appConfig = cfg
		if logJSON {
			log = logger.NewWithWriter(os.Stderr, level)
		} else {
			log = logger.New(level)
		}
		cmd.SetContext(logger.WithContext(cmd.Context(), log))
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON lines")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(beancountCmd)
	rootCmd.AddCommand(statsCmd)
}

func getConfigFile() string {
	return cfgFile
}

// requireConfig validates the loaded configuration for a command.
func requireConfig(required ...[]string) *config.Config {
	required = append(required, []string{"ledger", "root"})
	exitOnError(appConfig.Validate(required...), "invalid configuration")
	return appConfig
}

// openStore opens the split database configured in cfg.
func openStore(cfg *config.Config) (*pathutil.PathResolver, *db.Connection, *db.SplitStore) {
	pathResolver := pathutil.New(pathutil.Config{
		Root:         cfg.Ledger.Root,
		DatabasePath: cfg.Ledger.DBPath,
	})

	dbPath := pathResolver.GetDatabasePath()
	log.Debug().Str("path", dbPath).Msg("Opening database")

	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")

	return pathResolver, conn, db.NewSplitStore(conn)
}

// exitOnError logs err and exits when it is non-nil.
func exitOnError(err error, msg string) {
	if err != nil {
		log.Error().Err(err).Msg(msg)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
