// Package db provides SQLite persistence for splits and import history.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Splits table
-- amount holds the absolute magnitude; split_type carries the direction
CREATE TABLE IF NOT EXISTS splits (
    uid TEXT PRIMARY KEY,
    transaction_uid TEXT NOT NULL DEFAULT '',
    account_uid TEXT NOT NULL,
    amount TEXT NOT NULL,              -- canonical decimal string, e.g. '10.00'
    currency_code TEXT NOT NULL,       -- ISO 4217
    split_type TEXT NOT NULL CHECK (split_type IN ('CREDIT', 'DEBIT')),
    memo TEXT,                         -- NULL when the split has no memo
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_splits_transaction
    ON splits(transaction_uid);

CREATE INDEX IF NOT EXISTS idx_splits_account
    ON splits(account_uid);

-- Import history table
-- One row per imported split record file
CREATE TABLE IF NOT EXISTS import_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    record_count INTEGER NOT NULL,
    imported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Ledger metadata table
CREATE TABLE IF NOT EXISTS ledger_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
