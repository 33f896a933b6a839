package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/pkg/ctxutil"
)

// TranslateVoice runs the voice pipeline: transcribe, translate with the
// resolved situational context, synthesize the result, upload the audio, and
// persist one ledger record carrying both text and audio fields. The record
// is written only after every stage has succeeded.
func (s *Service) TranslateVoice(ctx context.Context, input TranslateVoiceInput) (*domain.Translation, error) {
	profileID, ok := ctxutil.ProfileIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	speech, err := s.stt.Recognize(ctx, input.Audio, input.SourceLang)
	if err != nil {
		// Whatever went wrong at this stage, the caller's actionable
		// problem is the audio itself.
		if !errors.Is(err, domain.ErrInvalidAudio) {
			err = fmt.Errorf("%w: %w", domain.ErrInvalidAudio, err)
		}
		s.log.DebugContext(ctx, "speech recognition failed", "error", err.Error())
		return nil, err
	}

	situation, ctxPrimary, ctxSub, err := s.situationContext(ctx, profileID, &input)
	if err != nil {
		return nil, fmt.Errorf("resolve context: %w", err)
	}

	translated, err := s.translate(ctx, speech.Text, input.SourceLang, input.TargetLang, situation)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	synth, err := s.tts.Synthesize(ctx, translated, input.TargetLang)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	recordID := uuid.New()
	audioURL, err := s.storage.Upload(ctx, fmt.Sprintf("tts/%s.mp3", recordID), synth.Audio, "audio/mpeg")
	if err != nil {
		return nil, fmt.Errorf("upload audio: %w", err)
	}

	record := &domain.Translation{
		ID:                recordID,
		ProfileID:         profileID,
		SourceText:        speech.Text,
		TranslatedText:    translated,
		SourceLang:        domain.NormalizeLang(input.SourceLang),
		TargetLang:        domain.NormalizeLang(input.TargetLang),
		Kind:              domain.TranslationKindVoice,
		ThreadID:          input.ThreadID,
		ContextPrimary:    ctxPrimary,
		ContextSub:        ctxSub,
		AudioURL:          &audioURL,
		DurationMS:        &synth.DurationMS,
		Confidence:        &speech.Confidence,
		MissionProgressID: input.MissionProgressID,
		CreatedAt:         time.Now().UTC(),
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("persist translation: %w", err)
	}

	s.log.InfoContext(ctx, "voice translated",
		"translation_id", created.ID,
		"source_lang", created.SourceLang,
		"target_lang", created.TargetLang,
		"confidence", speech.Confidence,
		"duration_ms", synth.DurationMS,
	)

	return created, nil
}
