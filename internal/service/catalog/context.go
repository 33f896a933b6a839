package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/travelmate-app/backend/internal/domain"
)

// BuildTranslationContext assembles the situation description injected into
// context-aware translation, in the source language. The result is a
// situation sentence naming the venue and intent, followed by the catalog's
// guidance prompt for the pair when one exists.
//
// Both codes must be present; otherwise no context applies and the result is
// empty. Codes unknown to the catalog fall back to the raw code so that a
// stale client still gets a usable hint.
func (s *Service) BuildTranslationContext(ctx context.Context, primary, sub, lang string) (string, error) {
	if primary == "" || sub == "" {
		return "", nil
	}

	primaryName, err := s.primaryName(ctx, primary, lang)
	if err != nil {
		return "", err
	}
	subName, err := s.subName(ctx, sub, lang)
	if err != nil {
		return "", err
	}

	parts := []string{situationSentence(primaryName, subName, lang)}

	prompt, err := s.categories.GetContextPrompt(ctx, primary, sub)
	if err != nil {
		return "", fmt.Errorf("get context prompt: %w", err)
	}
	if prompt != nil {
		parts = append(parts, prompt.Text(lang))
	}

	return strings.Join(parts, "\n"), nil
}

func (s *Service) primaryName(ctx context.Context, code, lang string) (string, error) {
	pc, err := s.categories.GetPrimary(ctx, code)
	if err != nil {
		return "", fmt.Errorf("get primary category: %w", err)
	}
	if pc == nil {
		return code, nil
	}
	return pc.Name(lang), nil
}

func (s *Service) subName(ctx context.Context, code, lang string) (string, error) {
	sc, err := s.categories.GetSub(ctx, code)
	if err != nil {
		return "", fmt.Errorf("get sub category: %w", err)
	}
	if sc == nil {
		return code, nil
	}
	return sc.Name(lang), nil
}

func situationSentence(primaryName, subName, lang string) string {
	if domain.NormalizeLang(lang) == "ko" {
		return fmt.Sprintf("%s에서 %s 상황입니다.", primaryName, subName)
	}
	return fmt.Sprintf("This is a %s situation at a %s.", subName, primaryName)
}
