package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/splitledger/pkg/logger"
	"github.com/shunichi-ikebuchi/splitledger/pkg/split"
)

func TestReadSplitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splits.csv")
	content := "# January\n30.00;USD;acct-groceries;txn-1;DEBIT;market\n30.00;USD;acct-cash;txn-1;CREDIT;market\n5.00;USD;acct-cash;;CREDIT\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	splits, err := readSplitFile(path, "USD")
	require.NoError(t, err)
	require.Len(t, splits, 3)

	groups := groupByTransaction(splits)
	require.Len(t, groups, 2)
	assert.Len(t, groups["txn-1"], 2)
	assert.Len(t, groups[""], 1)
	assert.True(t, groups["txn-1"][0].IsPairOf(groups["txn-1"][1]))
}

func TestReadSplitFile_Errors(t *testing.T) {
	_, err := readSplitFile(filepath.Join(t.TempDir(), "missing.csv"), "USD")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("10.00;USD;acct-1;txn-1;WRONG\n"), 0o644))

	_, err = readSplitFile(path, "USD")
	assert.ErrorIs(t, err, split.ErrInvalidPolarity)
	assert.ErrorIs(t, err, split.ErrMalformedRecord)
}

func TestReadSplitFile_LedgerCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splits.csv")
	require.NoError(t, os.WriteFile(path, []byte("1500;;acct-rent;txn-9;DEBIT\n1500;JPY;acct-checking;txn-9;CREDIT\n"), 0o644))

	splits, err := readSplitFile(path, "JPY")
	require.NoError(t, err)
	require.Len(t, splits, 2)
	assert.Equal(t, "JPY", splits[0].Amount().CurrencyCode())
	assert.True(t, splits[0].IsPairOf(splits[1]))

	_, err = readSplitFile(path, "")
	assert.ErrorIs(t, err, split.ErrMalformedRecord)
}

func TestFileLogger(t *testing.T) {
	var buf bytes.Buffer
	base := logger.NewWithWriter(&buf, zerolog.InfoLevel)

	log := fileLogger(base, filepath.Join("imports", "january.csv"))
	log.Info().Int("splits", 2).Msg("Imported splits")

	out := buf.String()
	assert.Contains(t, out, `"source":"january.csv"`)
	assert.Contains(t, out, `"file":"`+filepath.Join("imports", "january.csv")+`"`)
	assert.Contains(t, out, `"splits":2`)
	assert.Contains(t, out, `"level":"info"`)
}
