package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func setupKV(t *testing.T) *SQLiteKV {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tasklite-test.db")
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db.DB); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	kv, err := NewSQLiteKV(db)
	if err != nil {
		t.Fatalf("new kv: %v", err)
	}
	return kv
}

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, err := kv.Get(ctx, KeyTasks); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing key, got: %v", err)
	}

	if err := kv.Set(ctx, KeyTasks, `[{"id":1}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := kv.Get(ctx, KeyTasks)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `[{"id":1}]` {
		t.Fatalf("unexpected value: %q", got)
	}

	if err := kv.Set(ctx, KeyTasks, `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = kv.Get(ctx, KeyTasks)
	if err != nil || got != `[]` {
		t.Fatalf("expected overwritten value, got %q, %v", got, err)
	}

	if err := kv.Set(ctx, KeyDarkMode, "false"); err != nil {
		t.Fatalf("set dark mode: %v", err)
	}
	got, err = kv.Get(ctx, KeyTasks)
	if err != nil || got != `[]` {
		t.Fatalf("unrelated key changed tasks: %q, %v", got, err)
	}
}

func TestSQLiteKVGetSet(t *testing.T) {
	exerciseKV(t, setupKV(t))
}

func TestMemoryKVGetSet(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestOpenSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	kv, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Set(context.Background(), KeyTasks, "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get(context.Background(), KeyTasks)
	if err != nil || got != "[]" {
		t.Fatalf("expected value after reopen, got %q, %v", got, err)
	}
}
