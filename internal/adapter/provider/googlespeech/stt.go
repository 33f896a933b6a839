// Package googlespeech calls the Google Cloud Speech-to-Text and
// Text-to-Speech REST APIs with an API key. Both endpoints want full BCP-47
// tags, so bare codes are widened before each call.
package googlespeech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/internal/provider"
)

const defaultSTTBaseURL = "https://speech.googleapis.com/v1/speech:recognize"

// bcp47 widens a bare language code to the regional tag the speech APIs
// expect. Tags that already carry a region pass through unchanged.
var bcp47 = map[string]string{
	"ko": "ko-KR",
	"en": "en-US",
	"ja": "ja-JP",
	"zh": "zh-CN",
	"es": "es-ES",
	"fr": "fr-FR",
	"de": "de-DE",
}

func toBCP47(lang string) string {
	if widened, ok := bcp47[lang]; ok {
		return widened
	}
	return lang
}

// STT transcribes audio via the Google Cloud Speech-to-Text API.
type STT struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewSTT creates an STT provider with the default API URL.
func NewSTT(apiKey string, logger *slog.Logger) *STT {
	return &STT{
		baseURL:    defaultSTTBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "googlespeech.stt"),
	}
}

// NewSTTWithURL creates an STT provider with a custom base URL (for testing).
func NewSTTWithURL(baseURL, apiKey string, logger *slog.Logger) *STT {
	return &STT{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "googlespeech.stt"),
	}
}

type recognizeRequest struct {
	Config recognizeConfig `json:"config"`
	Audio  recognizeAudio  `json:"audio"`
}

type recognizeConfig struct {
	LanguageCode    string `json:"languageCode"`
	EnableAutomatic bool   `json:"enableAutomaticPunctuation"`
}

type recognizeAudio struct {
	Content string `json:"content"`
}

type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
}

// Recognize transcribes the audio payload. An empty transcription result
// (silence, noise) maps to domain.ErrInvalidAudio; transport and server
// failures map to domain.ErrExternalService.
func (p *STT) Recognize(ctx context.Context, audio []byte, lang string) (*provider.SpeechResult, error) {
	payload, err := json.Marshal(recognizeRequest{
		Config: recognizeConfig{
			LanguageCode:    toBCP47(domain.NormalizeLang(lang)),
			EnableAutomatic: true,
		},
		Audio: recognizeAudio{Content: base64.StdEncoding.EncodeToString(audio)},
	})
	if err != nil {
		return nil, fmt.Errorf("googlespeech: marshal recognize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"?key="+p.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("googlespeech: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "recognize request",
		slog.String("lang", lang),
		slog.Int("audio_bytes", len(audio)),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "recognize request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("googlespeech: request failed: %w: %w", err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, fmt.Errorf("googlespeech: rejected audio: %w", domain.ErrInvalidAudio)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googlespeech: unexpected status %d: %w", resp.StatusCode, domain.ErrExternalService)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("googlespeech: read body: %w: %w", err, domain.ErrExternalService)
	}

	var parsed recognizeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("googlespeech: decode json: %w: %w", err, domain.ErrExternalService)
	}

	if len(parsed.Results) == 0 || len(parsed.Results[0].Alternatives) == 0 {
		return nil, fmt.Errorf("googlespeech: no transcription produced: %w", domain.ErrInvalidAudio)
	}

	best := parsed.Results[0].Alternatives[0]
	if best.Transcript == "" {
		return nil, fmt.Errorf("googlespeech: empty transcript: %w", domain.ErrInvalidAudio)
	}

	return &provider.SpeechResult{Text: best.Transcript, Confidence: best.Confidence}, nil
}
