// Package supastorage uploads binary objects to Supabase Storage over its
// REST API and hands back the public URL for the uploaded object.
package supastorage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/travelmate-app/backend/internal/domain"
)

// Provider stores blobs in a single Supabase Storage bucket.
type Provider struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given project URL, service key,
// and bucket.
func NewProvider(baseURL, serviceKey, bucket string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "supastorage"),
	}
}

// Upload stores the payload under the given key and returns its public URL.
// Uploads overwrite: re-running a key replaces the previous object.
func (p *Provider) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", p.baseURL, p.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("supastorage: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	p.log.DebugContext(ctx, "upload request",
		slog.String("bucket", p.bucket),
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "upload failed", slog.String("key", key), slog.String("error", err.Error()))
		return "", fmt.Errorf("supastorage: request failed: %w: %w", err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("supastorage: unexpected status %d: %w", resp.StatusCode, domain.ErrExternalService)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", p.baseURL, p.bucket, key), nil
}
