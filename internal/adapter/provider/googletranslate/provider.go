// Package googletranslate calls the Google Cloud Translation v2 REST API
// with an API key. It is the plain translator used when no situational
// context applies.
package googletranslate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/travelmate-app/backend/internal/domain"
)

const defaultBaseURL = "https://translation.googleapis.com/language/translate/v2"

// Provider translates text via the Google Cloud Translation API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default API URL.
func NewProvider(apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "googletranslate"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "googletranslate"),
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates text between the given languages. Failures are
// wrapped in domain.ErrExternalService so callers can classify them.
func (p *Provider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: domain.NormalizeLang(sourceLang),
		Target: domain.NormalizeLang(targetLang),
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("googletranslate: marshal request: %w", err)
	}

	reqURL := p.baseURL + "?key=" + p.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("googletranslate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "translate request",
		slog.String("source", sourceLang),
		slog.String("target", targetLang),
		slog.Int("text_len", len(text)),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "translate request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("googletranslate: request failed: %w: %w", err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("googletranslate: unexpected status %d: %w", resp.StatusCode, domain.ErrExternalService)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("googletranslate: read body: %w: %w", err, domain.ErrExternalService)
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("googletranslate: decode json: %w: %w", err, domain.ErrExternalService)
	}

	if len(parsed.Data.Translations) == 0 {
		return "", fmt.Errorf("googletranslate: empty translations in response: %w", domain.ErrExternalService)
	}

	return parsed.Data.Translations[0].TranslatedText, nil
}
