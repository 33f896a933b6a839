// Package thread implements the conversation thread business logic: opening
// a thread for a validated situation, listing and inspecting threads, and
// soft-deleting them.
package thread

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/config"
	"github.com/travelmate-app/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type threadRepo interface {
	Create(ctx context.Context, thread *domain.Thread) (*domain.Thread, error)
	GetByID(ctx context.Context, profileID, threadID uuid.UUID) (*domain.Thread, error)
	List(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*domain.Thread, int, error)
	SoftDelete(ctx context.Context, profileID, threadID uuid.UUID) error
}

type translationRepo interface {
	ListByThread(ctx context.Context, threadID uuid.UUID, limit, offset int) ([]*domain.Translation, int, error)
}

type catalogService interface {
	IsValidPair(ctx context.Context, primary, sub string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the thread business logic.
type Service struct {
	log          *slog.Logger
	threads      threadRepo
	translations translationRepo
	catalog      catalogService
	tx           txManager
	cfg          config.LimitsConfig
}

// NewService creates a new Thread service.
func NewService(
	logger *slog.Logger,
	threads threadRepo,
	translations translationRepo,
	catalog catalogService,
	tx txManager,
	cfg config.LimitsConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "thread"),
		threads:      threads,
		translations: translations,
		catalog:      catalog,
		tx:           tx,
		cfg:          cfg,
	}
}
