package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/travelmate-app/backend/internal/domain"
)

// SeedThread creates a translation thread for the given profile.
// Returns a filled domain.Thread.
func SeedThread(t *testing.T, pool *pgxpool.Pool, profileID uuid.UUID, primary, sub string) domain.Thread {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	thread := domain.Thread{
		ID:              uuid.New(),
		ProfileID:       profileID,
		PrimaryCategory: primary,
		SubCategory:     sub,
		CreatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO translation_threads (id, profile_id, primary_category, sub_category, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		thread.ID, thread.ProfileID, thread.PrimaryCategory, thread.SubCategory, thread.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedThread insert: %v", err)
	}

	return thread
}

// SeedTranslation creates a text translation record for the given profile,
// created at the given time. Pass a nil threadID for a standalone record.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, profileID uuid.UUID, threadID *uuid.UUID, createdAt time.Time) domain.Translation {
	t.Helper()
	ctx := context.Background()

	tr := domain.Translation{
		ID:             uuid.New(),
		ProfileID:      profileID,
		SourceText:     "안녕하세요",
		TranslatedText: "Hello",
		SourceLang:     "ko",
		TargetLang:     "en",
		Kind:           domain.TranslationKindText,
		ThreadID:       threadID,
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO translations (id, profile_id, source_text, translated_text, source_lang, target_lang, kind, thread_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tr.ID, tr.ProfileID, tr.SourceText, tr.TranslatedText, tr.SourceLang, tr.TargetLang, tr.Kind.String(), tr.ThreadID, tr.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation insert: %v", err)
	}

	return tr
}
