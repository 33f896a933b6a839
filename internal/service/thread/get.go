package thread

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// Threads are short app conversations; this cap is far above anything a
// real session produces.
const maxTimelineRecords = 1000

// Detail is a thread together with its full translation timeline in
// conversational order (oldest first).
type Detail struct {
	Thread  *domain.Thread
	Records []*domain.Translation
}

// Get returns one of the caller's threads with its timeline. Foreign and
// deleted threads are indistinguishable from absent ones.
func (s *Service) Get(ctx context.Context, threadID uuid.UUID) (*Detail, error) {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	thread, err := s.threads.GetByID(ctx, profileID, threadID)
	if err != nil {
		return nil, fmt.Errorf("get thread: %w", err)
	}

	records, _, err := s.translations.ListByThread(ctx, threadID, maxTimelineRecords, 0)
	if err != nil {
		return nil, fmt.Errorf("list thread records: %w", err)
	}

	return &Detail{Thread: thread, Records: records}, nil
}
