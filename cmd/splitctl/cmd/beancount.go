package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/splitledger/pkg/beancount"
	"github.com/shunichi-ikebuchi/splitledger/pkg/converter"
)

var (
	beancountTransaction string
	beancountDate        string
	beancountNarration   string
	beancountPayee       string
	beancountDryRun      bool
)

// beancountCmd represents the beancount command.
var beancountCmd = &cobra.Command{
	Use:   "beancount",
	Short: "Append a stored transaction to the monthly Beancount file",
	Long: `Convert the splits of a stored transaction to a Beancount entry and append it
to {root}/YYYY/YYYY-MM.beancount.

DEBIT splits become positive postings and CREDIT splits negative ones.
Accounts are translated with the YAML account mapping; unmapped accounts are
written under Assets:Unmapped. The transaction must balance in every currency.

Example:
  splitctl beancount --transaction txn-1 --date 2024-03-15 --narration "Groceries"
  splitctl beancount --transaction txn-1 --date 2024-03-15 --narration "Groceries" --dry-run`,
	Run: runBeancount,
}

func init() {
	beancountCmd.Flags().StringVar(&beancountTransaction, "transaction", "", "transaction UID (required)")
	beancountCmd.Flags().StringVar(&beancountDate, "date", "", "transaction date YYYY-MM-DD (required)")
	beancountCmd.Flags().StringVar(&beancountNarration, "narration", "", "transaction narration")
	beancountCmd.Flags().StringVar(&beancountPayee, "payee", "", "payee name")
	beancountCmd.Flags().BoolVar(&beancountDryRun, "dry-run", false, "print the entry without writing")

	beancountCmd.MarkFlagRequired("transaction")
	beancountCmd.MarkFlagRequired("date")
}

func runBeancount(cmd *cobra.Command, args []string) {
	cfg := requireConfig([]string{"ledger", "mappingFile"})

	if _, err := time.Parse(time.DateOnly, beancountDate); err != nil {
		exitOnError(err, "invalid --date")
	}

	pathResolver, conn, store := openStore(cfg)
	defer conn.Close()

	splits, err := store.ListByTransaction(beancountTransaction)
	exitOnError(err, "failed to load splits")
	if len(splits) == 0 {
		exitOnError(errors.New(beancountTransaction), "transaction not found")
	}
	exitOnError(converter.CheckBalanced(splits), "cannot export transaction")

	mapper, err := converter.NewMapper(cfg.Ledger.MappingFile)
	exitOnError(err, "failed to load account mapping")

	txn, err := converter.NewConverter(mapper).SplitsToTransaction(beancountDate, beancountNarration, splits)
	exitOnError(err, "failed to convert transaction")
	txn.Payee = beancountPayee

	formatted := beancount.FormatTransaction(txn)
	monthKey := txn.YearMonth()

	filePath, err := pathResolver.GetMonthFilePath(monthKey)
	exitOnError(err, "failed to get month file path")

	if beancountDryRun {
		fmt.Printf("[DRY RUN] Would append to %s\n", filePath)
		fmt.Println(formatted)
		return
	}

	repo := beancount.NewFileSystemRepository(pathResolver)
	err = repo.AppendTransaction(monthKey, formatted, "splitledger transaction "+beancountTransaction)
	exitOnError(err, "failed to append transaction")

	exitOnError(store.SetMetadata("last_beancount_export", beancountTransaction), "failed to record export")

	log.Info().Str("path", filePath).Str("transaction", beancountTransaction).Int("postings", len(txn.Postings)).Msg("Updated file")
}
