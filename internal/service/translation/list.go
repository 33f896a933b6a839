package translation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// Page is one page of the caller's ledger, most recent first.
type Page struct {
	Records    []*domain.Translation
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// List returns a page of the caller's translation records, optionally
// narrowed by kind, thread, or mission token.
func (s *Service) List(ctx context.Context, input ListInput) (*Page, error) {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	offset := (input.Page - 1) * input.Limit

	filter := domain.TranslationFilter{
		Kind:              input.Kind,
		ThreadID:          input.ThreadID,
		MissionProgressID: input.MissionProgressID,
	}

	records, total, err := s.records.List(ctx, profileID, filter, input.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	return &Page{
		Records:    records,
		Page:       input.Page,
		Limit:      input.Limit,
		Total:      total,
		TotalPages: totalPages(total, input.Limit),
	}, nil
}

// Get returns one of the caller's records. Foreign records are
// indistinguishable from absent ones.
func (s *Service) Get(ctx context.Context, translationID uuid.UUID) (*domain.Translation, error) {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	record, err := s.records.GetByID(ctx, profileID, translationID)
	if err != nil {
		return nil, fmt.Errorf("get translation: %w", err)
	}
	return record, nil
}

// totalPages computes ceil(total / limit); zero rows is zero pages.
func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}
