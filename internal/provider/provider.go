// Package provider defines the external-service interfaces the translation
// pipeline is built on. Concrete adapters live in internal/adapter/provider;
// stubs stand in when credentials are absent.
package provider

import "context"

// Translator performs plain machine translation with no situational hints.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// ContextTranslator performs translation guided by a situation description.
// An empty situationContext means translate without guidance.
type ContextTranslator interface {
	TranslateWithContext(ctx context.Context, text, sourceLang, targetLang, situationContext string) (string, error)
}

// SpeechResult is the transcription produced by a speech-to-text provider.
type SpeechResult struct {
	Text       string
	Confidence float64
}

// SpeechToText transcribes spoken audio in the given language.
type SpeechToText interface {
	Recognize(ctx context.Context, audio []byte, lang string) (*SpeechResult, error)
}

// SynthesisResult is the audio produced by a text-to-speech provider.
type SynthesisResult struct {
	Audio      []byte
	DurationMS int
}

// TextToSpeech renders text as spoken audio in the given language.
type TextToSpeech interface {
	Synthesize(ctx context.Context, text, lang string) (*SynthesisResult, error)
}

// BlobStorage uploads binary payloads and returns a public URL.
type BlobStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
