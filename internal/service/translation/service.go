// Package translation implements the translation pipeline: text and voice
// translation through external providers, situational context injection,
// and the append-only ledger of finished runs.
package translation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/config"
	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type translationRepo interface {
	Create(ctx context.Context, t *domain.Translation) (*domain.Translation, error)
	GetByID(ctx context.Context, profileID, translationID uuid.UUID) (*domain.Translation, error)
	List(ctx context.Context, profileID uuid.UUID, filter domain.TranslationFilter, limit, offset int) ([]*domain.Translation, int, error)
	Delete(ctx context.Context, profileID, translationID uuid.UUID) error
}

type threadRepo interface {
	GetByID(ctx context.Context, profileID, threadID uuid.UUID) (*domain.Thread, error)
}

type catalogService interface {
	BuildTranslationContext(ctx context.Context, primary, sub, lang string) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the translation pipeline.
type Service struct {
	log           *slog.Logger
	records       translationRepo
	threads       threadRepo
	catalog       catalogService
	translator    provider.Translator
	ctxTranslator provider.ContextTranslator
	stt           provider.SpeechToText
	tts           provider.TextToSpeech
	storage       provider.BlobStorage
	cfg           config.LimitsConfig
}

// NewService creates a new Translation service. Every provider must be
// non-nil; the application factory substitutes stubs when a real
// collaborator is not configured.
func NewService(
	logger *slog.Logger,
	records translationRepo,
	threads threadRepo,
	catalog catalogService,
	translator provider.Translator,
	ctxTranslator provider.ContextTranslator,
	stt provider.SpeechToText,
	tts provider.TextToSpeech,
	storage provider.BlobStorage,
	cfg config.LimitsConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "translation"),
		records:       records,
		threads:       threads,
		catalog:       catalog,
		translator:    translator,
		ctxTranslator: ctxTranslator,
		stt:           stt,
		tts:           tts,
		storage:       storage,
		cfg:           cfg,
	}
}

// situationContext resolves the situational hint for one run. A linked
// thread overrides explicit context codes; its categories were validated
// when the thread was opened. The hint is written in the target language so
// the provider reads it in the language it translates into. The resolved
// codes are returned alongside the built context so the ledger can record
// them.
func (s *Service) situationContext(ctx context.Context, profileID uuid.UUID, input contextSource) (text string, primary, sub *string, err error) {
	primary, sub = input.contextCodes()

	if threadID := input.threadID(); threadID != nil {
		thread, err := s.threads.GetByID(ctx, profileID, *threadID)
		if err != nil {
			return "", nil, nil, err
		}
		primary, sub = &thread.PrimaryCategory, &thread.SubCategory
	}

	if primary == nil || sub == nil {
		return "", primary, sub, nil
	}

	text, err = s.catalog.BuildTranslationContext(ctx, *primary, *sub, input.targetLang())
	if err != nil {
		return "", nil, nil, err
	}
	return text, primary, sub, nil
}

// contextSource is the part of a translate input the context resolution
// needs; both text and voice inputs satisfy it.
type contextSource interface {
	threadID() *uuid.UUID
	contextCodes() (primary, sub *string)
	targetLang() string
}

// translate routes one text through the provider chain: the context-aware
// translator when a situation hint exists, the plain translator otherwise.
func (s *Service) translate(ctx context.Context, text, source, target, situation string) (string, error) {
	if situation != "" {
		return s.ctxTranslator.TranslateWithContext(ctx, text, source, target, situation)
	}
	return s.translator.Translate(ctx, text, source, target)
}
