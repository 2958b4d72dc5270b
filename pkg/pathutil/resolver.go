// Package pathutil provides centralized path management for ledger files and the split database.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathResolver manages paths for exported ledger files and the split database.
type PathResolver struct {
	root         string
	databasePath string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// Root is the root directory for exported ledger files (e.g., ~/accounting/ledger)
	Root string
	// DatabasePath is the path to the SQLite split database
	DatabasePath string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {Root}/.splitledger/splits.db
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.Root, ".splitledger", "splits.db")
	}

	return &PathResolver{
		root:         config.Root,
		databasePath: dbPath,
	}
}

// GetRoot returns the ledger root directory.
func (p *PathResolver) GetRoot() string {
	return p.root
}

// GetDatabasePath returns the database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetYearDir returns the directory path for a year.
// Example: ~/accounting/ledger/2024
func (p *PathResolver) GetYearDir(year string) string {
	return filepath.Join(p.root, year)
}

// GetMonthFilePath returns the Beancount file path for a month.
// yearMonth should be in YYYY-MM format.
// Example: ~/accounting/ledger/2024/2024-01.beancount
func (p *PathResolver) GetMonthFilePath(yearMonth string) (string, error) {
	parts := strings.Split(yearMonth, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return "", fmt.Errorf("invalid year-month format: %s. Expected YYYY-MM", yearMonth)
	}

	return filepath.Join(p.GetYearDir(parts[0]), yearMonth+".beancount"), nil
}

// EnsureDir creates a directory if it doesn't exist.
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	return p.EnsureDir(filepath.Dir(filePath))
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
