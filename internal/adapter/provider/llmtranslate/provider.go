// Package llmtranslate performs context-aware translation through an
// OpenAI-compatible chat completion API. The situation description built by
// the catalog service is folded into the system prompt so the model picks
// register and vocabulary fitting the venue.
package llmtranslate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/travelmate-app/backend/internal/domain"
)

// Provider translates text via chat completions.
type Provider struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider for the given API key and model.
func NewProvider(apiKey, model string, logger *slog.Logger) *Provider {
	return &Provider{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.With("adapter", "llmtranslate"),
	}
}

// NewProviderWithClient creates a Provider around an existing client (for testing).
func NewProviderWithClient(client *openai.Client, model string, logger *slog.Logger) *Provider {
	return &Provider{
		client: client,
		model:  model,
		log:    logger.With("adapter", "llmtranslate"),
	}
}

// TranslateWithContext translates text guided by an optional situation
// description. Failures are wrapped in domain.ErrExternalService.
func (p *Provider) TranslateWithContext(ctx context.Context, text, sourceLang, targetLang, situationContext string) (string, error) {
	system := buildSystemPrompt(sourceLang, targetLang, situationContext)

	p.log.DebugContext(ctx, "llm translate request",
		slog.String("model", p.model),
		slog.String("source", sourceLang),
		slog.String("target", targetLang),
		slog.Bool("has_context", situationContext != ""),
	)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.2,
	})
	if err != nil {
		p.log.ErrorContext(ctx, "llm translate failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("llmtranslate: chat completion: %w: %w", err, domain.ErrExternalService)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llmtranslate: empty choices in response: %w", domain.ErrExternalService)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildSystemPrompt assembles the translator persona. The situation block is
// omitted entirely when no context applies.
func buildSystemPrompt(sourceLang, targetLang, situationContext string) string {
	source := domain.LanguageName(sourceLang)
	target := domain.LanguageName(targetLang)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional translator helping a traveler communicate. Translate the user's message from %s to %s.\n", source, target)
	b.WriteString("Keep the meaning exact, use natural spoken phrasing, and match the politeness level of the original.\n")

	if situationContext != "" {
		b.WriteString("\nSituation:\n")
		b.WriteString(situationContext)
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with the translation only, no explanations or quotation marks.")
	return b.String()
}
