package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/splitledger/pkg/converter"
	"github.com/shunichi-ikebuchi/splitledger/pkg/logger"
	"github.com/shunichi-ikebuchi/splitledger/pkg/split"
)

var (
	importDryRun   bool
	importBalanced bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Import split records into the ledger database",
	Long: `Import split records from one or more files, one record per line.

Blank lines and lines starting with '#' are ignored. Records with an empty
currency field use the ledger currency (SPLITLEDGER_CURRENCY). A file is imported
atomically: if any record fails to parse or save, none of its splits are stored.

Example:
  splitctl import splits.csv
  splitctl import --dry-run --balanced january.csv february.csv`,
	Args: cobra.MinimumNArgs(1),
	Run:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and validate without saving")
	importCmd.Flags().BoolVar(&importBalanced, "balanced", false, "reject files whose transactions do not balance")
}

func runImport(cmd *cobra.Command, args []string) {
	cfg := requireConfig([]string{"ledger", "currency"})
	log := logger.FromContext(cmd.Context())

	_, conn, store := openStore(cfg)
	defer conn.Close()

	total := 0
	for _, path := range args {
		fileLog := fileLogger(log, path)

		splits, err := readSplitFile(path, cfg.Ledger.DefaultCurrency)
		exitOnError(err, "failed to read "+path)
		fileLog.Debug().Int("splits", len(splits)).Msg("Parsed split records")

		if importBalanced {
			for txnUID, group := range groupByTransaction(splits) {
				if err := converter.CheckBalanced(group); err != nil {
					exitOnError(fmt.Errorf("transaction %q: %w", txnUID, err), "unbalanced transaction in "+path)
				}
			}
		}

		if importDryRun {
			fmt.Printf("[DRY RUN] %s: %d split(s)\n", path, len(splits))
			for _, s := range splits {
				fmt.Printf("  %s\n", s)
			}
			continue
		}

		err = store.ImportSplits(filepath.Base(path), splits)
		exitOnError(err, "failed to import "+path)

		fileLog.Info().Int("splits", len(splits)).Msg("Imported splits")
		total += len(splits)
	}

	if !importDryRun {
		fmt.Printf("Imported %d split(s) from %d file(s)\n", total, len(args))
	}
}

// fileLogger tags base with the import file and the source name recorded in import history.
func fileLogger(base zerolog.Logger, path string) zerolog.Logger {
	return logger.WithFields(base, map[string]interface{}{
		"file":   path,
		"source": filepath.Base(path),
	})
}

// readSplitFile reads the split records of path. Records without a currency
// get defaultCurrency.
func readSplitFile(path, defaultCurrency string) ([]*split.Split, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return split.ReadSplits(f, split.WithDefaultCurrency(defaultCurrency))
}

// groupByTransaction groups splits by transaction UID. Splits without a
// transaction are grouped under "".
func groupByTransaction(splits []*split.Split) map[string][]*split.Split {
	groups := make(map[string][]*split.Split)
	for _, s := range splits {
		groups[s.TransactionUID()] = append(groups[s.TransactionUID()], s)
	}
	return groups
}
