// Package storage provides the SQLite persistence layer for the application.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"budgeteer/internal/model"
	"budgeteer/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store implements the service.Storage interface using SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a new SQLite store at the given path.
func NewStore(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections, and a single
	// connection keeps every mutation atomic with respect to the others.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:     db,
		dbPath: dbPath,
	}, nil
}

var (
	sharedMu sync.Mutex
	shared   *Store
)

// Open returns the process-wide store handle, creating it on first use.
// Exactly one live handle exists at a time; concurrent first callers race
// only on the mutex, never on construction.
func Open(dbPath string) (*Store, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil {
		return shared, nil
	}

	store, err := NewStore(dbPath)
	if err != nil {
		return nil, err
	}

	shared = store
	return shared, nil
}

// ResetShared closes and clears the process-wide handle. Test isolation only.
func ResetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil {
		_ = shared.Close()
		shared = nil
	}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns the generic repository view over the users table.
func (s *Store) Users() service.Repository[*model.User, int] {
	return &repo[*model.User]{store: s, def: userTable(s)}
}

// Categories returns the generic repository view over the categories table.
// Rows are reconstructed into the concrete variant named by their kind column.
func (s *Store) Categories() service.Repository[model.Category, int] {
	return &repo[model.Category]{store: s, def: categoryTable(s)}
}

// Transactions returns the generic repository view over the transactions table.
func (s *Store) Transactions() service.Repository[model.Transaction, int] {
	return &repo[model.Transaction]{store: s, def: transactionTable(s)}
}

// Budgets returns the generic repository view over the budgets table.
func (s *Store) Budgets() service.Repository[*model.Budget, int] {
	return &repo[*model.Budget]{store: s, def: budgetTable(s)}
}

// Reports returns the generic repository view over the monthly_reports table.
func (s *Store) Reports() service.Repository[*model.MonthlyReport, int] {
	return &repo[*model.MonthlyReport]{store: s, def: reportTable(s)}
}
