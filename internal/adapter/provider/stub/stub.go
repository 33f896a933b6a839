// Package stub provides deterministic stand-ins for every external provider.
// They are wired in when credentials for the real service are absent, so the
// pipeline stays fully functional in local development and CI.
package stub

import (
	"context"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/internal/provider"
)

// Fixed stub outputs. Tests rely on these staying stable.
const (
	stubTranscript = "안녕하세요"
	stubConfidence = 0.95
	stubAudioURL   = "https://storage.supabase.co/tts/abc123.mp3"
	stubDurationMS = 1500
)

// Translator is a deterministic translation stand-in: Korean to English
// yields a fixed greeting, every other pair echoes the input.
type Translator struct{}

// NewTranslator creates a stub translator.
func NewTranslator() *Translator { return &Translator{} }

func (s *Translator) Translate(_ context.Context, text, sourceLang, targetLang string) (string, error) {
	return stubTranslate(text, sourceLang, targetLang), nil
}

// TranslateWithContext satisfies the context-aware interface; the situation
// hint is ignored.
func (s *Translator) TranslateWithContext(_ context.Context, text, sourceLang, targetLang, _ string) (string, error) {
	return stubTranslate(text, sourceLang, targetLang), nil
}

func stubTranslate(text, sourceLang, targetLang string) string {
	if domain.NormalizeLang(sourceLang) == "ko" && domain.NormalizeLang(targetLang) == "en" {
		return "Hello"
	}
	return text
}

// SpeechToText is a stand-in transcriber returning a fixed Korean greeting.
type SpeechToText struct{}

// NewSpeechToText creates a stub transcriber.
func NewSpeechToText() *SpeechToText { return &SpeechToText{} }

func (s *SpeechToText) Recognize(_ context.Context, _ []byte, _ string) (*provider.SpeechResult, error) {
	return &provider.SpeechResult{Text: stubTranscript, Confidence: stubConfidence}, nil
}

// TextToSpeech is a stand-in synthesizer returning a short fixed payload.
type TextToSpeech struct{}

// NewTextToSpeech creates a stub synthesizer.
func NewTextToSpeech() *TextToSpeech { return &TextToSpeech{} }

func (s *TextToSpeech) Synthesize(_ context.Context, _, _ string) (*provider.SynthesisResult, error) {
	return &provider.SynthesisResult{
		Audio:      []byte("stub-mp3-payload"),
		DurationMS: stubDurationMS,
	}, nil
}

// BlobStorage is a stand-in store: nothing is persisted and every upload
// reports the same public URL.
type BlobStorage struct{}

// NewBlobStorage creates a stub store.
func NewBlobStorage() *BlobStorage { return &BlobStorage{} }

func (s *BlobStorage) Upload(_ context.Context, _ string, _ []byte, _ string) (string, error) {
	return stubAudioURL, nil
}
