package index

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/typexpr"
)

// entryJSON is the on-disk shape of one entry in an index file.
type entryJSON struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	Rhs              string `json:"rhs,omitempty"`
	URL              string `json:"url,omitempty"`
	Kind             string `json:"kind"`
	Type             string `json:"type,omitempty"`
	DocHTML          string `json:"doc_html,omitempty"`
	IsFromModuleType bool   `json:"is_from_module_type,omitempty"`
}

// indexJSON is the on-disk shape of a package index file.
type indexJSON struct {
	Pkg     models.Package `json:"pkg"`
	Entries []entryJSON    `json:"entries"`
}

// Loader imports JSON index files into storage.
type Loader struct {
	storage Storage
	logger  *zap.Logger
}

// NewLoader creates a loader writing to the given storage.
func NewLoader(storage Storage, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{storage: storage, logger: logger}
}

// LoadFile parses an index file into entries. Entries without IDs are
// assigned fresh UUIDs. The storage is not touched.
func LoadFile(path string) ([]*models.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}

	var idx indexJSON
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse index file %s: %w", path, err)
	}

	entries := make([]*models.Entry, 0, len(idx.Entries))
	for i, raw := range idx.Entries {
		entry, err := decodeEntry(raw, idx.Pkg)
		if err != nil {
			return nil, fmt.Errorf("entry %d in %s: %w", i, path, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeEntry(raw entryJSON, pkg models.Package) (*models.Entry, error) {
	if raw.Name == "" {
		return nil, fmt.Errorf("entry has no name")
	}
	class, err := models.ParseKindClass(raw.Kind)
	if err != nil {
		return nil, err
	}
	var inner *typexpr.Type
	if raw.Type != "" {
		inner, err = typexpr.Parse(raw.Type)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", raw.Name, err)
		}
	}

	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}

	return &models.Entry{
		ID:               id,
		Name:             raw.Name,
		Rhs:              raw.Rhs,
		URL:              raw.URL,
		Kind:             models.NewKind(class, inner),
		DocHTML:          raw.DocHTML,
		Pkg:              pkg,
		IsFromModuleType: raw.IsFromModuleType,
	}, nil
}

// ImportFile loads an index file and stores its entries, replacing any
// previously imported entries of the same package. Returns the number of
// entries imported.
func (l *Loader) ImportFile(ctx context.Context, path string) (int, error) {
	entries, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		l.logger.Warn("index file has no entries", zap.String("path", path))
		return 0, nil
	}

	pkgName := entries[0].Pkg.Name
	if pkgName != "" {
		if err := l.storage.DeletePackage(ctx, pkgName); err != nil {
			return 0, fmt.Errorf("failed to clear package %s: %w", pkgName, err)
		}
	}

	if err := l.storage.BatchCreateEntries(ctx, entries); err != nil {
		return 0, fmt.Errorf("failed to store entries from %s: %w", path, err)
	}

	l.logger.Info("index file imported",
		zap.String("path", path),
		zap.String("pkg", pkgName),
		zap.Int("entries", len(entries)),
	)
	return len(entries), nil
}
