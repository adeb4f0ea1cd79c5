package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/typexpr"
)

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens or creates a SQLite database at dbPath and
// initializes the schema. Parent directories are created if they do not exist.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		rhs TEXT,
		url TEXT,
		kind TEXT NOT NULL,
		inner_type TEXT,
		doc_html TEXT,
		pkg_name TEXT,
		pkg_version TEXT,
		is_from_module_type INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_entries_name ON entries(name);
	CREATE INDEX IF NOT EXISTS idx_entries_pkg_name ON entries(pkg_name);
	`
	_, err := db.Exec(schema)
	return err
}

// CreateEntry inserts an entry.
func (s *SQLiteStorage) CreateEntry(ctx context.Context, entry *models.Entry) error {
	entry.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, name, rhs, url, kind, inner_type, doc_html, pkg_name, pkg_version, is_from_module_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Name, entry.Rhs, entry.URL,
		entry.Kind.Class().String(), innerTypeString(entry.Kind),
		entry.DocHTML, entry.Pkg.Name, entry.Pkg.Version,
		boolToInt(entry.IsFromModuleType), entry.CreatedAt,
	)
	return err
}

// GetEntry returns an entry by ID.
func (s *SQLiteStorage) GetEntry(ctx context.Context, id string) (*models.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, rhs, url, kind, inner_type, doc_html, pkg_name, pkg_version, is_from_module_type, created_at
		 FROM entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("entry not found: %s", id)
	}
	return entry, err
}

// DeleteEntry removes an entry by ID.
func (s *SQLiteStorage) DeleteEntry(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	return err
}

// ListEntries returns a page of entries ordered by name.
func (s *SQLiteStorage) ListEntries(ctx context.Context, offset, limit int) ([]*models.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, rhs, url, kind, inner_type, doc_html, pkg_name, pkg_version, is_from_module_type, created_at
		 FROM entries ORDER BY name LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// AllEntries returns every indexed entry ordered by name.
func (s *SQLiteStorage) AllEntries(ctx context.Context) ([]*models.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, rhs, url, kind, inner_type, doc_html, pkg_name, pkg_version, is_from_module_type, created_at
		 FROM entries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// EntriesByPackage returns the entries of one package ordered by name.
func (s *SQLiteStorage) EntriesByPackage(ctx context.Context, pkgName string) ([]*models.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, rhs, url, kind, inner_type, doc_html, pkg_name, pkg_version, is_from_module_type, created_at
		 FROM entries WHERE pkg_name = ? ORDER BY name`, pkgName)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// DeletePackage removes every entry of a package.
func (s *SQLiteStorage) DeletePackage(ctx context.Context, pkgName string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE pkg_name = ?`, pkgName)
	return err
}

// BatchCreateEntries inserts entries in a single transaction.
func (s *SQLiteStorage) BatchCreateEntries(ctx context.Context, entries []*models.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (id, name, rhs, url, kind, inner_type, doc_html, pkg_name, pkg_version, is_from_module_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, entry := range entries {
		entry.CreatedAt = now
		_, err := stmt.ExecContext(ctx,
			entry.ID, entry.Name, entry.Rhs, entry.URL,
			entry.Kind.Class().String(), innerTypeString(entry.Kind),
			entry.DocHTML, entry.Pkg.Name, entry.Pkg.Version,
			boolToInt(entry.IsFromModuleType), entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", entry.ID, err)
		}
	}

	return tx.Commit()
}

// CountEntries returns the total number of indexed entries.
func (s *SQLiteStorage) CountEntries(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

// Close closes the database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var (
		entry      models.Entry
		kindStr    string
		innerStr   sql.NullString
		fromModTyp int
	)
	err := row.Scan(
		&entry.ID, &entry.Name, &entry.Rhs, &entry.URL,
		&kindStr, &innerStr, &entry.DocHTML,
		&entry.Pkg.Name, &entry.Pkg.Version, &fromModTyp, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	class, err := models.ParseKindClass(kindStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt entry %s: %w", entry.ID, err)
	}
	var inner *typexpr.Type
	if innerStr.Valid && innerStr.String != "" {
		inner, err = typexpr.Parse(innerStr.String)
		if err != nil {
			return nil, fmt.Errorf("corrupt type for entry %s: %w", entry.ID, err)
		}
	}
	entry.Kind = models.NewKind(class, inner)
	entry.IsFromModuleType = fromModTyp != 0

	return &entry, nil
}

func scanEntries(rows *sql.Rows) ([]*models.Entry, error) {
	defer rows.Close()
	var entries []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func innerTypeString(kind models.EntryKind) string {
	if inner, ok := kind.InnerType(); ok {
		return inner.String()
	}
	return ""
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
