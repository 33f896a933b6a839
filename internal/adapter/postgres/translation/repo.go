// Package translation implements the translation ledger repository using
// PostgreSQL. Records are append-only: a row is inserted once by the
// orchestrator and only ever hard-deleted by its owner. There is no update.
package translation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/travelmate-app/backend/internal/adapter/postgres"
	"github.com/travelmate-app/backend/internal/domain"
)

const table = "translations"

var columns = []string{
	"id", "profile_id", "source_text", "translated_text", "source_lang",
	"target_lang", "kind", "thread_id", "context_primary", "context_sub",
	"audio_url", "duration_ms", "confidence", "mission_progress_id", "created_at",
}

// Repo provides translation record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new translation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new translation record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Translation) (*domain.Translation, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			t.ID, t.ProfileID, t.SourceText, t.TranslatedText, t.SourceLang,
			t.TargetLang, t.Kind.String(), t.ThreadID, t.ContextPrimary, t.ContextSub,
			t.AudioURL, t.DurationMS, t.Confidence, t.MissionProgressID, t.CreatedAt,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create translation query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	created, err := scanTranslation(row)
	if err != nil {
		return nil, postgres.MapError(err, "translation", t.ID)
	}

	return created, nil
}

// GetByID returns a record by primary key with owner filter.
// Absent and foreign records both map to domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, profileID, translationID uuid.UUID) (*domain.Translation, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": translationID, "profile_id": profileID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get translation query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	t, err := scanTranslation(row)
	if err != nil {
		return nil, postgres.MapError(err, "translation", translationID)
	}

	return t, nil
}

// List returns a page of the owner's records ordered by created_at
// descending (most recent first), plus the total matching count.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, profileID uuid.UUID, filter domain.TranslationFilter, limit, offset int) ([]*domain.Translation, int, error) {
	scope := squirrel.Eq{"profile_id": profileID}
	if filter.Kind != nil {
		scope["kind"] = filter.Kind.String()
	}
	if filter.ThreadID != nil {
		scope["thread_id"] = *filter.ThreadID
	}
	if filter.MissionProgressID != nil {
		scope["mission_progress_id"] = *filter.MissionProgressID
	}

	return r.list(ctx, scope, "created_at DESC", limit, offset)
}

// ListByThread returns a page of one thread's records in conversational
// order — created_at ascending — plus the total count for the thread.
func (r *Repo) ListByThread(ctx context.Context, threadID uuid.UUID, limit, offset int) ([]*domain.Translation, int, error) {
	return r.list(ctx, squirrel.Eq{"thread_id": threadID}, "created_at ASC", limit, offset)
}

func (r *Repo) list(ctx context.Context, scope squirrel.Eq, order string, limit, offset int) ([]*domain.Translation, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder.
		Select("COUNT(*)").
		From(table).
		Where(scope).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count translations query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count translations: %w", err)
	}

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(scope).
		OrderBy(order).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list translations query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	result := []*domain.Translation{}
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan translation: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list translations: %w", err)
	}

	return result, total, nil
}

// Delete permanently removes a record, scoped to the owner. This is a hard
// delete — the intentional asymmetry with the thread repository's soft
// delete. Absent and foreign records map to domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, profileID, translationID uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": translationID, "profile_id": profileID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete translation query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "translation", translationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("translation %s: %w", translationID, domain.ErrNotFound)
	}

	return nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

func scanTranslation(row pgx.Row) (*domain.Translation, error) {
	var (
		t    domain.Translation
		kind string
	)
	err := row.Scan(
		&t.ID, &t.ProfileID, &t.SourceText, &t.TranslatedText, &t.SourceLang,
		&t.TargetLang, &kind, &t.ThreadID, &t.ContextPrimary, &t.ContextSub,
		&t.AudioURL, &t.DurationMS, &t.Confidence, &t.MissionProgressID, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Kind = domain.TranslationKind(kind)
	return &t, nil
}
