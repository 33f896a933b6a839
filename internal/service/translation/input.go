package translation

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/travelmate-app/backend/internal/domain"
)

// langPattern accepts bare ISO 639-1 codes and BCP-47 regional tags
// ("ko", "en-US"). Case per convention: lowercase language, uppercase region.
var langPattern = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z]{2,4})?$`)

// TranslateTextInput holds the parameters for a text translation run.
type TranslateTextInput struct {
	SourceText string
	SourceLang string
	TargetLang string

	// ThreadID links the run to a conversation; the thread's categories
	// override ContextPrimary/ContextSub.
	ThreadID *uuid.UUID

	ContextPrimary *string
	ContextSub     *string

	MissionProgressID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *TranslateTextInput) Validate(maxTextLen int) error {
	errs := validateLangs(i.SourceLang, i.TargetLang)

	if i.SourceText == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len([]rune(i.SourceText)) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	errs = append(errs, validateContextCodes(i.ContextPrimary, i.ContextSub)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *TranslateTextInput) threadID() *uuid.UUID             { return i.ThreadID }
func (i *TranslateTextInput) contextCodes() (*string, *string) { return i.ContextPrimary, i.ContextSub }
func (i *TranslateTextInput) targetLang() string               { return i.TargetLang }

// TranslateVoiceInput holds the parameters for a voice translation run.
type TranslateVoiceInput struct {
	Audio      []byte
	SourceLang string
	TargetLang string

	ThreadID *uuid.UUID

	ContextPrimary *string
	ContextSub     *string

	MissionProgressID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *TranslateVoiceInput) Validate() error {
	errs := validateLangs(i.SourceLang, i.TargetLang)

	if len(i.Audio) == 0 {
		errs = append(errs, domain.FieldError{Field: "audio", Message: "required"})
	}

	errs = append(errs, validateContextCodes(i.ContextPrimary, i.ContextSub)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *TranslateVoiceInput) threadID() *uuid.UUID             { return i.ThreadID }
func (i *TranslateVoiceInput) contextCodes() (*string, *string) { return i.ContextPrimary, i.ContextSub }
func (i *TranslateVoiceInput) targetLang() string               { return i.TargetLang }

func validateLangs(source, target string) []domain.FieldError {
	var errs []domain.FieldError

	switch {
	case source == "":
		errs = append(errs, domain.FieldError{Field: "source_lang", Message: "required"})
	case !langPattern.MatchString(source):
		errs = append(errs, domain.FieldError{Field: "source_lang", Message: "malformed language tag"})
	}

	switch {
	case target == "":
		errs = append(errs, domain.FieldError{Field: "target_lang", Message: "required"})
	case !langPattern.MatchString(target):
		errs = append(errs, domain.FieldError{Field: "target_lang", Message: "malformed language tag"})
	}

	// Same language after normalization is a pointless run; reject it.
	if len(errs) == 0 && domain.NormalizeLang(source) == domain.NormalizeLang(target) {
		errs = append(errs, domain.FieldError{Field: "target_lang", Message: "must differ from source_lang"})
	}

	return errs
}

// validateContextCodes checks only the shape of the codes. Whether the pair
// is a known situation is not re-checked here: the codes are stored as
// given, and an unknown pair degrades to a raw-code context hint.
func validateContextCodes(primary, sub *string) []domain.FieldError {
	var errs []domain.FieldError

	if primary != nil && len(*primary) > 10 {
		errs = append(errs, domain.FieldError{Field: "context_primary", Message: "too long (max 10)"})
	}
	if sub != nil && len(*sub) > 50 {
		errs = append(errs, domain.FieldError{Field: "context_sub", Message: "too long (max 50)"})
	}

	return errs
}

// ListInput holds the parameters for listing the caller's records.
type ListInput struct {
	Page  int
	Limit int

	Kind              *domain.TranslationKind
	ThreadID          *uuid.UUID
	MissionProgressID *uuid.UUID
}

// Validate checks the filter fields.
func (i *ListInput) Validate() error {
	if i.Kind != nil && !i.Kind.IsValid() {
		return domain.NewValidationError("kind", "must be text or voice")
	}
	return nil
}

// normalize clamps pagination to sane bounds.
func (i *ListInput) normalize(defaultLimit, maxLimit int) {
	if i.Page < 1 {
		i.Page = 1
	}
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	if i.Limit > maxLimit {
		i.Limit = maxLimit
	}
}
