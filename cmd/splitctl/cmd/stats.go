package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display ledger statistics",
	Long: `Display statistics about stored splits and imports.

Example:
  splitctl stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg := requireConfig()

	_, conn, store := openStore(cfg)
	defer conn.Close()

	stats, err := store.GetStats()
	exitOnError(err, "failed to get statistics")

	lastExport, err := store.GetMetadata("last_beancount_export")
	exitOnError(err, "failed to get metadata")

	fmt.Println("\n=== Ledger Statistics ===")
	fmt.Printf("Total splits:        %d\n", stats.TotalSplits)
	fmt.Printf("Total transactions:  %d\n", stats.TotalTransactions)
	fmt.Printf("Total accounts:      %d\n", stats.TotalAccounts)
	fmt.Printf("Total imports:       %d\n", stats.TotalImports)

	if stats.LastImport.Valid {
		fmt.Printf("Last import:         %s\n", stats.LastImport.String)
	} else {
		fmt.Printf("Last import:         (never)\n")
	}
	if lastExport != "" {
		fmt.Printf("Last export:         %s\n", lastExport)
	}

	fmt.Println()
}
