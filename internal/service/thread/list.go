package thread

import (
	"context"
	"fmt"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// Page is one page of the caller's threads, most recent first.
type Page struct {
	Threads    []*domain.Thread
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// List returns a page of the caller's live threads ordered by creation time
// descending.
func (s *Service) List(ctx context.Context, input ListInput) (*Page, error) {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	offset := (input.Page - 1) * input.Limit

	threads, total, err := s.threads.List(ctx, profileID, input.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}

	return &Page{
		Threads:    threads,
		Page:       input.Page,
		Limit:      input.Limit,
		Total:      total,
		TotalPages: totalPages(total, input.Limit),
	}, nil
}

// totalPages computes ceil(total / limit); zero rows is zero pages.
func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}
