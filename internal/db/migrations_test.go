package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteAppliesMigrationsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "repwise.db")

	database, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}

	var applied int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected migrations to be recorded")
	}

	// Reopening the same file must be a no-op, not a re-run.
	reopened, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}

	var appliedAgain int64
	if err := reopened.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&appliedAgain).Error; err != nil {
		t.Fatalf("count applied migrations after reopen: %v", err)
	}
	if appliedAgain != applied {
		t.Fatalf("expected %d applied migrations after reopen, got %d", applied, appliedAgain)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\nCREATE INDEX idx_a ON a(id);\n")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %#v", statements)
	}

	if statements := splitSQLStatements("  \n ;; "); len(statements) != 0 {
		t.Fatalf("expected no statements for blank input, got %#v", statements)
	}
}
