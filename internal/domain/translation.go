package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslationKind distinguishes typed and spoken inputs.
type TranslationKind string

const (
	TranslationKindText  TranslationKind = "text"
	TranslationKindVoice TranslationKind = "voice"
)

func (k TranslationKind) String() string { return string(k) }

func (k TranslationKind) IsValid() bool {
	switch k {
	case TranslationKindText, TranslationKindVoice:
		return true
	}
	return false
}

// Translation is one persisted translation record, written exactly once as
// the terminal step of a pipeline run. There is no update operation; the
// only mutation is a hard delete by the owner.
type Translation struct {
	ID             uuid.UUID
	ProfileID      uuid.UUID
	SourceText     string
	TranslatedText string
	SourceLang     string
	TargetLang     string
	Kind           TranslationKind

	// ThreadID links the record to a conversation thread, if any.
	ThreadID *uuid.UUID
	// ContextPrimary / ContextSub echo the situational category codes the
	// caller supplied, stored as given.
	ContextPrimary *string
	ContextSub     *string

	// Voice-pipeline fields; nil for text translations.
	AudioURL   *string
	DurationMS *int
	Confidence *float64

	// MissionProgressID is an opaque token from the gamification subsystem,
	// passed through unchanged.
	MissionProgressID *uuid.UUID

	CreatedAt time.Time
}

// TranslationFilter narrows record listings. Nil fields mean "no filter".
type TranslationFilter struct {
	Kind              *TranslationKind
	ThreadID          *uuid.UUID
	MissionProgressID *uuid.UUID
}
