// Package category implements the category catalog repository using
// PostgreSQL. All data here is seeded reference data: primary/sub
// situational categories, the mapping whitelist, and per-mapping
// context prompts. Every operation is read-only.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/travelmate-app/backend/internal/adapter/postgres"
	"github.com/travelmate-app/backend/internal/domain"
)

const (
	primaryTable = "translation_primary_categories"
	subTable     = "translation_sub_categories"
	mappingTable = "translation_category_mappings"
	promptTable  = "translation_context_prompts"
)

// Repo provides read access to the seeded category catalog.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListPrimary returns primary categories ordered by display_order.
// With activeOnly, inactive rows are filtered out.
func (r *Repo) ListPrimary(ctx context.Context, activeOnly bool) ([]domain.PrimaryCategory, error) {
	q := postgres.Builder.
		Select("code", "name_ko", "name_en", "display_order", "is_active").
		From(primaryTable).
		OrderBy("display_order")
	if activeOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list primary query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list primary categories: %w", err)
	}
	defer rows.Close()

	var result []domain.PrimaryCategory
	for rows.Next() {
		var c domain.PrimaryCategory
		if err := rows.Scan(&c.Code, &c.NameKo, &c.NameEn, &c.DisplayOrder, &c.Active); err != nil {
			return nil, fmt.Errorf("scan primary category: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list primary categories: %w", err)
	}

	return result, nil
}

// ListSub returns sub categories ordered by display_order.
// With activeOnly, inactive rows are filtered out.
func (r *Repo) ListSub(ctx context.Context, activeOnly bool) ([]domain.SubCategory, error) {
	q := postgres.Builder.
		Select("code", "name_ko", "name_en", "display_order", "is_active").
		From(subTable).
		OrderBy("display_order")
	if activeOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sub query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sub categories: %w", err)
	}
	defer rows.Close()

	var result []domain.SubCategory
	for rows.Next() {
		var c domain.SubCategory
		if err := rows.Scan(&c.Code, &c.NameKo, &c.NameEn, &c.DisplayOrder, &c.Active); err != nil {
			return nil, fmt.Errorf("scan sub category: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sub categories: %w", err)
	}

	return result, nil
}

// GetPrimary returns one primary category by code.
// Returns nil, nil when the code is unknown — unknown codes are not errors
// in the catalog.
func (r *Repo) GetPrimary(ctx context.Context, code string) (*domain.PrimaryCategory, error) {
	sql, args, err := postgres.Builder.
		Select("code", "name_ko", "name_en", "display_order", "is_active").
		From(primaryTable).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get primary query: %w", err)
	}

	var c domain.PrimaryCategory
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	if err := row.Scan(&c.Code, &c.NameKo, &c.NameEn, &c.DisplayOrder, &c.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get primary category %q: %w", code, err)
	}

	return &c, nil
}

// GetSub returns one sub category by code.
// Returns nil, nil when the code is unknown.
func (r *Repo) GetSub(ctx context.Context, code string) (*domain.SubCategory, error) {
	sql, args, err := postgres.Builder.
		Select("code", "name_ko", "name_en", "display_order", "is_active").
		From(subTable).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sub query: %w", err)
	}

	var c domain.SubCategory
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	if err := row.Scan(&c.Code, &c.NameKo, &c.NameEn, &c.DisplayOrder, &c.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub category %q: %w", code, err)
	}

	return &c, nil
}

// ListMappings returns every legal (primary, sub) combination, ordered for
// stable grouping by the caller.
func (r *Repo) ListMappings(ctx context.Context) ([]domain.CategoryMapping, error) {
	sql, args, err := postgres.Builder.
		Select("primary_code", "sub_code").
		From(mappingTable).
		OrderBy("primary_code", "sub_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list mappings query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list category mappings: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryMapping
	for rows.Next() {
		var m domain.CategoryMapping
		if err := rows.Scan(&m.PrimaryCode, &m.SubCode); err != nil {
			return nil, fmt.Errorf("scan category mapping: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list category mappings: %w", err)
	}

	return result, nil
}

// IsValidPair reports whether (primary, sub) exists in the mapping table.
// The mapping table is the sole source of truth for situation validity.
func (r *Repo) IsValidPair(ctx context.Context, primary, sub string) (bool, error) {
	sql, args, err := postgres.Builder.
		Select("1").
		From(mappingTable).
		Where(squirrel.Eq{"primary_code": primary, "sub_code": sub}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build pair check query: %w", err)
	}

	var one int
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check category pair (%s, %s): %w", primary, sub, err)
	}

	return true, nil
}

// GetContextPrompt returns the active prompt for one mapping.
// Returns nil, nil when the pair has no active prompt.
func (r *Repo) GetContextPrompt(ctx context.Context, primary, sub string) (*domain.ContextPrompt, error) {
	sql, args, err := postgres.Builder.
		Select("primary_code", "sub_code", "prompt_ko", "prompt_en", "keywords", "is_active").
		From(promptTable).
		Where(squirrel.Eq{"primary_code": primary, "sub_code": sub, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get prompt query: %w", err)
	}

	var p domain.ContextPrompt
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	if err := row.Scan(&p.PrimaryCode, &p.SubCode, &p.PromptKo, &p.PromptEn, &p.Keywords, &p.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get context prompt (%s, %s): %w", primary, sub, err)
	}

	return &p, nil
}
