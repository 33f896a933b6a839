package thread

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// Delete soft-deletes one of the caller's threads. Records already linked to
// the thread stay in the ledger. Repeating the call yields ErrNotFound.
func (s *Service) Delete(ctx context.Context, threadID uuid.UUID) error {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.threads.SoftDelete(ctx, profileID, threadID); err != nil {
		return fmt.Errorf("delete thread: %w", err)
	}

	s.log.InfoContext(ctx, "thread deleted", "thread_id", threadID)
	return nil
}
