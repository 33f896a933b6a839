package app

import (
	"context"
	"log/slog"

	"github.com/travelmate-app/backend/internal/adapter/provider/googlespeech"
	"github.com/travelmate-app/backend/internal/adapter/provider/googletranslate"
	"github.com/travelmate-app/backend/internal/adapter/provider/llmtranslate"
	"github.com/travelmate-app/backend/internal/adapter/provider/stub"
	"github.com/travelmate-app/backend/internal/adapter/provider/supastorage"
	"github.com/travelmate-app/backend/internal/config"
	"github.com/travelmate-app/backend/internal/provider"
)

// Providers is the fixed set of external collaborators the translation
// pipeline runs on. Every field is non-nil: collaborators without
// credentials are backed by deterministic stubs, decided once at startup.
type Providers struct {
	Translator    provider.Translator
	CtxTranslator provider.ContextTranslator
	STT           provider.SpeechToText
	TTS           provider.TextToSpeech
	Storage       provider.BlobStorage
}

// BuildProviders selects real adapters or stubs from configuration.
func BuildProviders(cfg *config.Config, logger *slog.Logger) Providers {
	p := Providers{
		Translator:    stub.NewTranslator(),
		CtxTranslator: stub.NewTranslator(),
		STT:           stub.NewSpeechToText(),
		TTS:           stub.NewTextToSpeech(),
		Storage:       stub.NewBlobStorage(),
	}

	if cfg.HasPlainTranslator() {
		p.Translator = googletranslate.NewProvider(cfg.Translate.GoogleAPIKey, logger)
		// No context-aware provider: context-bearing runs still go through
		// the real translator, dropping the situation hint.
		p.CtxTranslator = plainContextAdapter{plain: p.Translator}
	}
	if cfg.HasContextTranslator() {
		p.CtxTranslator = llmtranslate.NewProvider(cfg.Translate.OpenAIAPIKey, cfg.Translate.OpenAIModel, logger)
	}
	if cfg.HasSpeech() {
		p.STT = googlespeech.NewSTT(cfg.Speech.GoogleAPIKey, logger)
		p.TTS = googlespeech.NewTTS(cfg.Speech.GoogleAPIKey, cfg.Speech.TTSVoice, logger)
	}
	if cfg.HasStorage() {
		p.Storage = supastorage.NewProvider(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, cfg.Storage.Bucket, logger)
	}

	logger.Info("providers selected",
		slog.Bool("translator_stub", !cfg.HasPlainTranslator()),
		slog.Bool("ctx_translator_stub", !cfg.HasContextTranslator() && !cfg.HasPlainTranslator()),
		slog.Bool("ctx_translator_plain_fallback", !cfg.HasContextTranslator() && cfg.HasPlainTranslator()),
		slog.Bool("speech_stub", !cfg.HasSpeech()),
		slog.Bool("storage_stub", !cfg.HasStorage()),
	)

	return p
}

// plainContextAdapter backs the context-aware slot with the plain provider
// when only the plain provider is configured. The situation hint is ignored;
// the run still succeeds against the real service.
type plainContextAdapter struct {
	plain provider.Translator
}

func (a plainContextAdapter) TranslateWithContext(ctx context.Context, text, sourceLang, targetLang, situationContext string) (string, error) {
	return a.plain.Translate(ctx, text, sourceLang, targetLang)
}
