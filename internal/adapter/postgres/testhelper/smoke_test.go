package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	thread := SeedThread(t, pool, uuid.New(), "FD6", "ordering")

	// Verify thread exists in DB via SELECT.
	var primary string
	err := pool.QueryRow(
		context.Background(),
		`SELECT primary_category FROM translation_threads WHERE id = $1`,
		thread.ID,
	).Scan(&primary)
	if err != nil {
		t.Fatalf("expected thread in DB, got error: %v", err)
	}

	if primary != thread.PrimaryCategory {
		t.Fatalf("expected primary category %q, got %q", thread.PrimaryCategory, primary)
	}
}
