// Package thread implements the conversation thread repository using
// PostgreSQL. Threads are owner-scoped and soft-deleted: reads filter
// deleted_at, writes never remove rows.
package thread

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/travelmate-app/backend/internal/adapter/postgres"
	"github.com/travelmate-app/backend/internal/domain"
)

const table = "translation_threads"

var columns = []string{
	"id", "profile_id", "primary_category", "sub_category",
	"created_at", "updated_at", "deleted_at",
}

// Repo provides thread persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new thread repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new thread and returns the persisted row.
func (r *Repo) Create(ctx context.Context, thread *domain.Thread) (*domain.Thread, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "profile_id", "primary_category", "sub_category", "created_at").
		Values(thread.ID, thread.ProfileID, thread.PrimaryCategory, thread.SubCategory, thread.CreatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create thread query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	created, err := scanThread(row)
	if err != nil {
		return nil, postgres.MapError(err, "thread", thread.ID)
	}

	return created, nil
}

// GetByID returns a thread by primary key, filtered by owner and excluding
// soft-deleted rows. Absent, deleted, and foreign threads all map to
// domain.ErrNotFound — the repository does not distinguish them.
func (r *Repo) GetByID(ctx context.Context, profileID, threadID uuid.UUID) (*domain.Thread, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": threadID, "profile_id": profileID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get thread query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	t, err := scanThread(row)
	if err != nil {
		return nil, postgres.MapError(err, "thread", threadID)
	}

	return t, nil
}

// List returns a page of the owner's live threads ordered by created_at
// descending, plus the total live count for pagination metadata.
// Returns an empty slice (not nil) when the owner has no threads.
func (r *Repo) List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*domain.Thread, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	scope := squirrel.Eq{"profile_id": profileID, "deleted_at": nil}

	countSQL, countArgs, err := postgres.Builder.
		Select("COUNT(*)").
		From(table).
		Where(scope).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count threads query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count threads: %w", err)
	}

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(scope).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list threads query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list threads: %w", err)
	}
	defer rows.Close()

	threads := []*domain.Thread{}
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list threads: %w", err)
	}

	return threads, total, nil
}

// SoftDelete marks the thread deleted, scoped to the owner. The deletion is
// terminal: the WHERE clause excludes already-deleted rows, so repeating the
// call yields domain.ErrNotFound — same as a foreign or absent thread.
func (r *Repo) SoftDelete(ctx context.Context, profileID, threadID uuid.UUID) error {
	now := time.Now().UTC()

	sql, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": threadID, "profile_id": profileID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete thread query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "thread", threadID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("thread %s: %w", threadID, domain.ErrNotFound)
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

func scanThread(row pgx.Row) (*domain.Thread, error) {
	var t domain.Thread
	err := row.Scan(
		&t.ID, &t.ProfileID, &t.PrimaryCategory, &t.SubCategory,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
