// Package catalog implements the category catalog business logic: listing
// the situation taxonomy, validating (primary, sub) pairs, and assembling
// the situational context passed to the translation pipeline.
package catalog

import (
	"context"
	"log/slog"

	"github.com/travelmate-app/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type categoryRepo interface {
	ListPrimary(ctx context.Context, activeOnly bool) ([]domain.PrimaryCategory, error)
	ListSub(ctx context.Context, activeOnly bool) ([]domain.SubCategory, error)
	GetPrimary(ctx context.Context, code string) (*domain.PrimaryCategory, error)
	GetSub(ctx context.Context, code string) (*domain.SubCategory, error)
	ListMappings(ctx context.Context) ([]domain.CategoryMapping, error)
	IsValidPair(ctx context.Context, primary, sub string) (bool, error)
	GetContextPrompt(ctx context.Context, primary, sub string) (*domain.ContextPrompt, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
}

// NewService creates a new Catalog service.
func NewService(logger *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		log:        logger.With("service", "catalog"),
		categories: categories,
	}
}

// IsValidPair reports whether the (primary, sub) combination is a legal
// situation. Unknown codes yield false, never an error.
func (s *Service) IsValidPair(ctx context.Context, primary, sub string) (bool, error) {
	return s.categories.IsValidPair(ctx, primary, sub)
}
