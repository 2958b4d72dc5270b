package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shunichi-ikebuchi/splitledger/pkg/money"
	"github.com/shunichi-ikebuchi/splitledger/pkg/split"
)

const splitColumns = `uid, transaction_uid, account_uid, amount, currency_code, split_type, memo`

// execer is satisfied by both *Connection and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// SplitStore persists splits.
type SplitStore struct {
	conn *Connection
}

// NewSplitStore creates a new SplitStore instance.
func NewSplitStore(conn *Connection) *SplitStore {
	return &SplitStore{conn: conn}
}

// SaveSplit inserts the split or updates the row with the same UID.
// The amount is stored as its absolute value.
func (s *SplitStore) SaveSplit(sp *split.Split) error {
	return saveSplit(s.conn, sp)
}

// SaveSplits saves all splits in a single database transaction.
func (s *SplitStore) SaveSplits(splits []*split.Split) error {
	return s.conn.Transaction(func(tx *sql.Tx) error {
		for _, sp := range splits {
			if err := saveSplit(tx, sp); err != nil {
				return err
			}
		}
		return nil
	})
}

// ImportSplits saves splits and records the import of source atomically.
func (s *SplitStore) ImportSplits(source string, splits []*split.Split) error {
	return s.conn.Transaction(func(tx *sql.Tx) error {
		for _, sp := range splits {
			if err := saveSplit(tx, sp); err != nil {
				return err
			}
		}
		return recordImport(tx, source, len(splits))
	})
}

func saveSplit(ex execer, sp *split.Split) error {
	if !sp.HasUID() {
		return fmt.Errorf("failed to save split: %w: split has no UID", split.ErrInvalidArgument)
	}
	if !sp.Type().IsValid() {
		return fmt.Errorf("failed to save split %s: %w: %q", sp.UID(), split.ErrInvalidPolarity, sp.Type())
	}

	var memo sql.NullString
	if text, ok := sp.Memo(); ok {
		memo = sql.NullString{String: text, Valid: true}
	}

	query := `
		INSERT INTO splits (uid, transaction_uid, account_uid, amount, currency_code, split_type, memo)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(uid) DO UPDATE SET
			transaction_uid = excluded.transaction_uid,
			account_uid = excluded.account_uid,
			amount = excluded.amount,
			currency_code = excluded.currency_code,
			split_type = excluded.split_type,
			memo = excluded.memo,
			updated_at = CURRENT_TIMESTAMP
	`

	amount := sp.Amount().Absolute()
	_, err := ex.Exec(query,
		sp.UID(),
		sp.TransactionUID(),
		sp.AccountUID(),
		amount.AsString(),
		amount.CurrencyCode(),
		sp.Type().Name(),
		memo,
	)
	if err != nil {
		return fmt.Errorf("failed to save split %s: %w", sp.UID(), err)
	}

	return nil
}

// GetSplit retrieves a split by UID. It returns nil, nil when no row matches.
func (s *SplitStore) GetSplit(uid string) (*split.Split, error) {
	query := `SELECT ` + splitColumns + ` FROM splits WHERE uid = ?`

	sp, err := scanSplit(s.conn.QueryRow(query, uid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}

	return sp, nil
}

// ListByTransaction returns the splits of a transaction in insertion order.
func (s *SplitStore) ListByTransaction(transactionUID string) ([]*split.Split, error) {
	return s.list(`SELECT `+splitColumns+` FROM splits WHERE transaction_uid = ? ORDER BY rowid`, transactionUID)
}

// ListByAccount returns the splits posted to an account in insertion order.
func (s *SplitStore) ListByAccount(accountUID string) ([]*split.Split, error) {
	return s.list(`SELECT `+splitColumns+` FROM splits WHERE account_uid = ? ORDER BY rowid`, accountUID)
}

func (s *SplitStore) list(query string, arg string) ([]*split.Split, error) {
	rows, err := s.conn.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var splits []*split.Split
	for rows.Next() {
		sp, err := scanSplit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return splits, nil
}

// DeleteSplit deletes a split and reports whether a row was removed.
func (s *SplitStore) DeleteSplit(uid string) (bool, error) {
	result, err := s.conn.Exec(`DELETE FROM splits WHERE uid = ?`, uid)
	if err != nil {
		return false, fmt.Errorf("failed to delete split: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// RecordImport records that recordCount splits were imported from source.
func (s *SplitStore) RecordImport(source string, recordCount int) error {
	return recordImport(s.conn, source, recordCount)
}

func recordImport(ex execer, source string, recordCount int) error {
	_, err := ex.Exec(`INSERT INTO import_history (source, record_count) VALUES (?, ?)`, source, recordCount)
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSplit(row rowScanner) (*split.Split, error) {
	var (
		uid, transactionUID, accountUID string
		amount, currencyCode, splitType string
		memo                            sql.NullString
	)
	if err := row.Scan(&uid, &transactionUID, &accountUID, &amount, &currencyCode, &splitType, &memo); err != nil {
		return nil, err
	}

	m, err := money.New(amount, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", uid, err)
	}
	t, err := split.ParseTransactionType(splitType)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", uid, err)
	}

	sp, err := split.NewSplit(m, accountUID)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", uid, err)
	}
	sp.SetUID(uid)
	sp.SetTransactionUID(transactionUID)
	sp.SetType(t)
	if memo.Valid {
		sp.SetMemo(memo.String)
	}

	return sp, nil
}

// Stats represents ledger statistics.
type Stats struct {
	TotalSplits       int
	TotalTransactions int
	TotalAccounts     int
	TotalImports      int
	LastImport        sql.NullString
}

// GetStats retrieves ledger statistics.
func (s *SplitStore) GetStats() (*Stats, error) {
	var stats Stats

	err := s.conn.QueryRow(`SELECT COUNT(*) FROM splits`).Scan(&stats.TotalSplits)
	if err != nil {
		return nil, fmt.Errorf("failed to get split count: %w", err)
	}

	err = s.conn.QueryRow(`SELECT COUNT(DISTINCT transaction_uid) FROM splits WHERE transaction_uid != ''`).Scan(&stats.TotalTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction count: %w", err)
	}

	err = s.conn.QueryRow(`SELECT COUNT(DISTINCT account_uid) FROM splits`).Scan(&stats.TotalAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to get account count: %w", err)
	}

	err = s.conn.QueryRow(`SELECT COUNT(*) FROM import_history`).Scan(&stats.TotalImports)
	if err != nil {
		return nil, fmt.Errorf("failed to get import count: %w", err)
	}

	err = s.conn.QueryRow(`SELECT MAX(imported_at) FROM import_history`).Scan(&stats.LastImport)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get last import time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value. Missing keys yield "".
func (s *SplitStore) GetMetadata(key string) (string, error) {
	var value string
	err := s.conn.QueryRow(`SELECT value FROM ledger_metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	return value, nil
}

// SetMetadata sets a metadata value.
func (s *SplitStore) SetMetadata(key, value string) error {
	query := `
		INSERT INTO ledger_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := s.conn.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
