package index

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/typexpr"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "entries.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStorage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testEntry(id, name string) *models.Entry {
	return &models.Entry{
		ID:      id,
		Name:    name,
		Rhs:     ": int -> int",
		URL:     "pkg/doc/index.html#" + id,
		Kind:    models.NewValKind(typexpr.MustParse("int -> int")),
		DocHTML: "<p>doc</p>",
		Pkg:     models.Package{Name: "base", Version: "0.16.0"},
	}
}

func TestSQLiteStorage_CreateGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	want := testEntry("e1", "Base.incr")
	want.IsFromModuleType = true
	if err := store.CreateEntry(ctx, want); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	got, err := store.GetEntry(ctx, "e1")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got.Name != want.Name || got.Rhs != want.Rhs || got.URL != want.URL {
		t.Errorf("GetEntry = %+v, want %+v", got, want)
	}
	if got.Kind.Class() != models.ClassVal {
		t.Errorf("Kind = %v, want val", got.Kind.Class())
	}
	inner, ok := got.Kind.InnerType()
	if !ok || inner.String() != "int -> int" {
		t.Errorf("InnerType = %v (%v), want int -> int", inner, ok)
	}
	if !got.IsFromModuleType {
		t.Error("IsFromModuleType lost in round trip")
	}
	if got.Pkg != want.Pkg {
		t.Errorf("Pkg = %+v, want %+v", got.Pkg, want.Pkg)
	}
}

func TestSQLiteStorage_GetMissing(t *testing.T) {
	store := newTestStorage(t)
	if _, err := store.GetEntry(context.Background(), "nope"); err == nil {
		t.Error("GetEntry succeeded for missing entry")
	}
}

func TestSQLiteStorage_PayloadFreeKind(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entry := &models.Entry{ID: "m1", Name: "Base.List", Kind: models.NewModuleKind()}
	if err := store.CreateEntry(ctx, entry); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	got, err := store.GetEntry(ctx, "m1")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got.Kind.Class() != models.ClassModule {
		t.Errorf("Kind = %v, want module", got.Kind.Class())
	}
	if _, ok := got.Kind.InnerType(); ok {
		t.Error("module entry came back with an inner type")
	}
}

func TestSQLiteStorage_BatchAndCount(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entries := []*models.Entry{
		testEntry("e1", "Base.List.map"),
		testEntry("e2", "Base.List.iter"),
		testEntry("e3", "Base.Array.map"),
	}
	if err := store.BatchCreateEntries(ctx, entries); err != nil {
		t.Fatalf("BatchCreateEntries: %v", err)
	}

	n, err := store.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries: %v", err)
	}
	if n != 3 {
		t.Errorf("CountEntries = %d, want 3", n)
	}

	all, err := store.AllEntries(ctx)
	if err != nil {
		t.Fatalf("AllEntries: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(AllEntries) = %d, want 3", len(all))
	}
}

func TestSQLiteStorage_PackageOperations(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := testEntry("e1", "Base.List.map")
	other := testEntry("e2", "Other.thing")
	other.Pkg = models.Package{Name: "other", Version: "1.0"}
	if err := store.BatchCreateEntries(ctx, []*models.Entry{base, other}); err != nil {
		t.Fatalf("BatchCreateEntries: %v", err)
	}

	got, err := store.EntriesByPackage(ctx, "base")
	if err != nil {
		t.Fatalf("EntriesByPackage: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Errorf("EntriesByPackage = %v, want [e1]", got)
	}

	if err := store.DeletePackage(ctx, "base"); err != nil {
		t.Fatalf("DeletePackage: %v", err)
	}
	n, _ := store.CountEntries(ctx)
	if n != 1 {
		t.Errorf("CountEntries after DeletePackage = %d, want 1", n)
	}
}

func TestSQLiteStorage_ListPagination(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	entries := []*models.Entry{
		testEntry("e1", "A.a"),
		testEntry("e2", "B.b"),
		testEntry("e3", "C.c"),
	}
	if err := store.BatchCreateEntries(ctx, entries); err != nil {
		t.Fatalf("BatchCreateEntries: %v", err)
	}

	page, err := store.ListEntries(ctx, 1, 1)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(page) != 1 || page[0].Name != "B.b" {
		t.Errorf("ListEntries(1, 1) = %v, want [B.b]", page)
	}
}
