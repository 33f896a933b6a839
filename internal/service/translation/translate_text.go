package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// TranslateText runs the text pipeline: resolve the situational context,
// translate, and persist one ledger record. Nothing is written when any
// stage fails.
func (s *Service) TranslateText(ctx context.Context, input TranslateTextInput) (*domain.Translation, error) {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxTextLength); err != nil {
		return nil, err
	}

	situation, ctxPrimary, ctxSub, err := s.situationContext(ctx, profileID, &input)
	if err != nil {
		return nil, fmt.Errorf("resolve context: %w", err)
	}

	translated, err := s.translate(ctx, input.SourceText, input.SourceLang, input.TargetLang, situation)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	record := &domain.Translation{
		ID:                uuid.New(),
		ProfileID:         profileID,
		SourceText:        input.SourceText,
		TranslatedText:    translated,
		SourceLang:        domain.NormalizeLang(input.SourceLang),
		TargetLang:        domain.NormalizeLang(input.TargetLang),
		Kind:              domain.TranslationKindText,
		ThreadID:          input.ThreadID,
		ContextPrimary:    ctxPrimary,
		ContextSub:        ctxSub,
		MissionProgressID: input.MissionProgressID,
		CreatedAt:         time.Now().UTC(),
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("persist translation: %w", err)
	}

	s.log.InfoContext(ctx, "text translated",
		"translation_id", created.ID,
		"source_lang", created.SourceLang,
		"target_lang", created.TargetLang,
		"with_context", situation != "",
	)

	return created, nil
}
