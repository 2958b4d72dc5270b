package beancount

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/splitledger/pkg/pathutil"
)

func sampleTransaction() Transaction {
	return Transaction{
		Date:      "2024-03-15",
		Narration: "Groceries",
		Payee:     "Market",
		Tags:      []string{"txn-1"},
		Metadata:  map[string]string{"uid": "txn-1"},
		Postings: []Posting{
			{Account: "Expenses:Food", Amount: decimal.RequireFromString("30.00"), Currency: "USD", Comment: "weekly"},
			{Account: "Assets:Cash", Amount: decimal.RequireFromString("-30.00"), Currency: "USD"},
		},
	}
}

func TestFormatTransaction(t *testing.T) {
	out := FormatTransaction(sampleTransaction())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, `2024-03-15 * "Market" "Groceries" #txn-1`, lines[0])
	assert.Equal(t, `  uid: "txn-1"`, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "  Expenses:Food "))
	assert.True(t, strings.HasSuffix(lines[2], " 30.00 USD ; weekly"))
	assert.True(t, strings.HasSuffix(lines[3], " -30.00 USD"))
	assert.Equal(t, strings.Index(lines[2], "30.00"), strings.Index(lines[3], "-30.00"),
		"amounts start at the same column")
}

func TestTransaction_YearMonth(t *testing.T) {
	assert.Equal(t, "2024-03", sampleTransaction().YearMonth())
	assert.Equal(t, "", Transaction{Date: "2024"}.YearMonth())
}

func TestFileSystemRepository(t *testing.T) {
	resolver := pathutil.New(pathutil.Config{Root: t.TempDir()})
	repo := NewFileSystemRepository(resolver)
	repo.now = func() time.Time { return time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC) }

	assert.False(t, repo.MonthFileExists("2024-03"))
	content, err := repo.ReadMonthFile("2024-03")
	require.NoError(t, err)
	assert.Empty(t, content)

	formatted := FormatTransaction(sampleTransaction())
	require.NoError(t, repo.AppendTransaction("2024-03", formatted, "imported"))
	require.NoError(t, repo.AppendTransaction("2024-03", formatted))
	assert.True(t, repo.MonthFileExists("2024-03"))

	content, err = repo.ReadMonthFile("2024-03")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(content, "; Beancount file for 2024-03\n; Generated by splitledger at 2024-03-20T09:00:00Z\n\n"))
	assert.Contains(t, content, "; imported\n"+formatted+"\n")
	assert.Equal(t, 2, strings.Count(content, "Groceries"))

	months, err := repo.GetMonthFilesInYear("2024")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03"}, months)

	months, err = repo.GetMonthFilesInYear("1999")
	require.NoError(t, err)
	assert.Empty(t, months)

	assert.Error(t, repo.AppendTransaction("March", formatted))
}
