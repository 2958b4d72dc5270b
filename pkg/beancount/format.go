package beancount

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const amountColumn = 60

// FormatTransaction formats a Beancount transaction as a string.
func FormatTransaction(txn Transaction) string {
	var sb strings.Builder

	sb.WriteString(txn.Date)
	sb.WriteString(" *")
	if txn.Payee != "" {
		sb.WriteString(fmt.Sprintf(" %q", txn.Payee))
	}
	sb.WriteString(fmt.Sprintf(" %q", txn.Narration))
	for _, tag := range txn.Tags {
		sb.WriteString(" #")
		sb.WriteString(tag)
	}
	for _, link := range txn.Links {
		sb.WriteString(" ^")
		sb.WriteString(link)
	}
	sb.WriteString("\n")

	keys := make([]string, 0, len(txn.Metadata))
	for k := range txn.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s: %q\n", k, txn.Metadata[k]))
	}

	for _, posting := range txn.Postings {
		sb.WriteString("  ")
		sb.WriteString(posting.Account)

		// Amounts start at a fixed column
		spaces := max(1, amountColumn-len(posting.Account))
		sb.WriteString(strings.Repeat(" ", spaces))
		sb.WriteString(formatAmount(posting.Amount))
		sb.WriteString(" ")
		sb.WriteString(posting.Currency)

		if posting.Comment != "" {
			sb.WriteString(" ; ")
			sb.WriteString(posting.Comment)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatAmount keeps the scale the amount was built with, so 30.00 is not shortened to 30.
func formatAmount(d decimal.Decimal) string {
	places := int32(0)
	if exp := d.Exponent(); exp < 0 {
		places = -exp
	}
	return d.StringFixed(places)
}
