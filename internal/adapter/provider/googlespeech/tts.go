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
	"strings"
	"time"

	"github.com/travelmate-app/backend/internal/domain"
	"github.com/travelmate-app/backend/internal/provider"
)

const defaultTTSBaseURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

// mp3BitrateKbps is the bitrate the API encodes MP3 output at; used to
// derive playback duration from the payload size.
const mp3BitrateKbps = 32

// TTS synthesizes speech via the Google Cloud Text-to-Speech API.
type TTS struct {
	baseURL    string
	apiKey     string
	voice      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewTTS creates a TTS provider with the default API URL.
func NewTTS(apiKey, voice string, logger *slog.Logger) *TTS {
	return &TTS{
		baseURL:    defaultTTSBaseURL,
		apiKey:     apiKey,
		voice:      voice,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "googlespeech.tts"),
	}
}

// NewTTSWithURL creates a TTS provider with a custom base URL (for testing).
func NewTTSWithURL(baseURL, apiKey, voice string, logger *slog.Logger) *TTS {
	return &TTS{
		baseURL:    baseURL,
		apiKey:     apiKey,
		voice:      voice,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "googlespeech.tts"),
	}
}

type synthesizeRequest struct {
	Input       synthesizeInput  `json:"input"`
	Voice       synthesizeVoice  `json:"voice"`
	AudioConfig synthesizeConfig `json:"audioConfig"`
}

type synthesizeInput struct {
	Text string `json:"text"`
}

type synthesizeVoice struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name,omitempty"`
}

type synthesizeConfig struct {
	AudioEncoding string `json:"audioEncoding"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

// Synthesize renders text as MP3 audio. The configured voice name is used
// only when it matches the target language; otherwise the API picks a
// default voice for the language. Failures map to domain.ErrExternalService.
func (p *TTS) Synthesize(ctx context.Context, text, lang string) (*provider.SynthesisResult, error) {
	langCode := toBCP47(domain.NormalizeLang(lang))

	voice := synthesizeVoice{LanguageCode: langCode}
	if strings.HasPrefix(p.voice, langCode) {
		voice.Name = p.voice
	}

	payload, err := json.Marshal(synthesizeRequest{
		Input:       synthesizeInput{Text: text},
		Voice:       voice,
		AudioConfig: synthesizeConfig{AudioEncoding: "MP3"},
	})
	if err != nil {
		return nil, fmt.Errorf("googlespeech: marshal synthesize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"?key="+p.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("googlespeech: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "synthesize request",
		slog.String("lang", langCode),
		slog.Int("text_len", len(text)),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "synthesize request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("googlespeech: request failed: %w: %w", err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googlespeech: unexpected status %d: %w", resp.StatusCode, domain.ErrExternalService)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("googlespeech: read body: %w: %w", err, domain.ErrExternalService)
	}

	var parsed synthesizeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("googlespeech: decode json: %w: %w", err, domain.ErrExternalService)
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("googlespeech: decode audio content: %w: %w", err, domain.ErrExternalService)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("googlespeech: empty audio in response: %w", domain.ErrExternalService)
	}

	return &provider.SynthesisResult{
		Audio:      audio,
		DurationMS: len(audio) * 8 / mp3BitrateKbps,
	}, nil
}
