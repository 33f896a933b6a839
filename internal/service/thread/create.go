package thread

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// Create opens a new conversation thread for a validated situation.
// The (primary, sub) pair must exist in the category mapping whitelist.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Thread, error) {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	thread := &domain.Thread{
		ID:              uuid.New(),
		ProfileID:       profileID,
		PrimaryCategory: input.PrimaryCategory,
		SubCategory:     input.SubCategory,
		CreatedAt:       time.Now().UTC(),
	}

	// Validate the pair and insert under one transaction so the insert sees
	// the same catalog snapshot the check did.
	var created *domain.Thread
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		valid, err := s.catalog.IsValidPair(txCtx, input.PrimaryCategory, input.SubCategory)
		if err != nil {
			return fmt.Errorf("validate category pair: %w", err)
		}
		if !valid {
			return fmt.Errorf("%s/%s: %w", input.PrimaryCategory, input.SubCategory, domain.ErrInvalidCategory)
		}

		created, err = s.threads.Create(txCtx, thread)
		if err != nil {
			return fmt.Errorf("create thread: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "thread created",
		"thread_id", created.ID,
		"primary", created.PrimaryCategory,
		"sub", created.SubCategory,
	)

	return created, nil
}
