package translation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// Delete permanently removes one of the caller's records. Unlike threads,
// ledger records are hard-deleted; the stored audio object is not touched.
func (s *Service) Delete(ctx context.Context, translationID uuid.UUID) error {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.records.Delete(ctx, profileID, translationID); err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}

	s.log.InfoContext(ctx, "translation deleted", "translation_id", translationID)
	return nil
}
