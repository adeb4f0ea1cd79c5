// Package index defines entry persistence and index-file loading.
package index

import (
	"context"

	"github.com/panglesd/sherlodoc/internal/models"
)

// Storage defines entry persistence operations.
type Storage interface {
	CreateEntry(ctx context.Context, entry *models.Entry) error
	GetEntry(ctx context.Context, id string) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	ListEntries(ctx context.Context, offset, limit int) ([]*models.Entry, error)

	// AllEntries returns every indexed entry. The candidate set handed to
	// ranking; callers must not mutate shared entries concurrently.
	AllEntries(ctx context.Context) ([]*models.Entry, error)
	// EntriesByPackage returns the entries of one package.
	EntriesByPackage(ctx context.Context, pkgName string) ([]*models.Entry, error)
	// DeletePackage removes every entry of a package. Used when an index
	// file is regenerated and re-imported.
	DeletePackage(ctx context.Context, pkgName string) error

	// Batch operations
	BatchCreateEntries(ctx context.Context, entries []*models.Entry) error

	// Stats
	CountEntries(ctx context.Context) (int64, error)

	Close() error
}
