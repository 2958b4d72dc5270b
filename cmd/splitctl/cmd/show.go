package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show UID",
	Short: "Show a stored split",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	cfg := requireConfig()

	_, conn, store := openStore(cfg)
	defer conn.Close()

	s, err := store.GetSplit(args[0])
	exitOnError(err, "failed to load split")
	if s == nil {
		exitOnError(errors.New(args[0]), "split not found")
	}

	memo, hasMemo := s.Memo()
	fmt.Printf("UID:         %s\n", s.UID())
	fmt.Printf("Split:       %s\n", s)
	fmt.Printf("Transaction: %s\n", s.TransactionUID())
	if hasMemo {
		fmt.Printf("Memo:        %s\n", memo)
	}
	fmt.Printf("Record:      %s\n", s.ToCSV())
}
