package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/splitledger/pkg/split"
)

var (
	exportTransaction string
	exportAccount     string
	exportOutput      string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored splits as split records",
	Long: `Export the splits of a transaction or an account, one record per line.

Example:
  splitctl export --transaction txn-1
  splitctl export --account acct-cash --output cash.csv`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportTransaction, "transaction", "", "transaction UID to export")
	exportCmd.Flags().StringVar(&exportAccount, "account", "", "account UID to export")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default is stdout)")
	exportCmd.MarkFlagsMutuallyExclusive("transaction", "account")
	exportCmd.MarkFlagsOneRequired("transaction", "account")
}

func runExport(cmd *cobra.Command, args []string) {
	cfg := requireConfig()

	_, conn, store := openStore(cfg)
	defer conn.Close()

	var (
		splits []*split.Split
		err    error
	)
	if exportTransaction != "" {
		splits, err = store.ListByTransaction(exportTransaction)
	} else {
		splits, err = store.ListByAccount(exportAccount)
	}
	exitOnError(err, "failed to load splits")

	if len(splits) == 0 {
		exitOnError(errors.New("no splits found"), "nothing to export")
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		exitOnError(err, "failed to create output file")
		defer f.Close()
		out = f
	}

	exitOnError(split.WriteSplits(out, splits), "failed to write splits")
	log.Info().Int("splits", len(splits)).Str("output", exportOutput).Msg("Exported splits")
}
