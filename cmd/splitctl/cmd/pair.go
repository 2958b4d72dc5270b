package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	pairAccount string
	pairSave    bool
)

// pairCmd represents the pair command.
var pairCmd = &cobra.Command{
	Use:   "pair UID",
	Short: "Create the opposite leg of a stored split",
	Long: `Create the pair of a stored split: same absolute amount, memo and
transaction, inverted type, posted to another account.

Example:
  splitctl pair 3f2a... --account acct-cash
  splitctl pair 3f2a... --account acct-cash --save`,
	Args: cobra.ExactArgs(1),
	Run:  runPair,
}

func init() {
	pairCmd.Flags().StringVar(&pairAccount, "account", "", "account UID of the pair (required)")
	pairCmd.Flags().BoolVar(&pairSave, "save", false, "store the pair in the database")
	pairCmd.MarkFlagRequired("account")
}

func runPair(cmd *cobra.Command, args []string) {
	cfg := requireConfig()

	_, conn, store := openStore(cfg)
	defer conn.Close()

	source, err := store.GetSplit(args[0])
	exitOnError(err, "failed to load split")
	if source == nil {
		exitOnError(errors.New(args[0]), "split not found")
	}

	pair := source.CreatePair(pairAccount)
	if !source.IsPairOf(pair) {
		exitOnError(fmt.Errorf("%s does not pair with %s", pair, source), "pair check failed")
	}

	if pairSave {
		exitOnError(store.SaveSplit(pair), "failed to save pair")
		log.Info().Str("source", source.UID()).Str("pair", pair.UID()).Msg("Saved pair")
	}

	fmt.Println(pair.ToCSV())
}
