package domain

// PrimaryCategory is a top-level situational classification (venue type),
// e.g. FD6 = restaurant, CE7 = cafe. Reference data, seeded by migration.
type PrimaryCategory struct {
	Code         string
	NameKo       string
	NameEn       string
	DisplayOrder int
	Active       bool
}

// Name returns the category name localized for the given language code.
// Unknown languages fall back to English.
func (c PrimaryCategory) Name(lang string) string {
	if NormalizeLang(lang) == "ko" {
		return c.NameKo
	}
	return c.NameEn
}

// SubCategory is a secondary situational classification (intent within a
// venue), e.g. ordering, payment. Reference data, seeded by migration.
type SubCategory struct {
	Code         string
	NameKo       string
	NameEn       string
	DisplayOrder int
	Active       bool
}

// Name returns the category name localized for the given language code.
// Unknown languages fall back to English.
func (c SubCategory) Name(lang string) string {
	if NormalizeLang(lang) == "ko" {
		return c.NameKo
	}
	return c.NameEn
}

// CategoryMapping is one legal (primary, sub) combination. The mapping
// table is the sole source of truth for whether a situation is valid.
type CategoryMapping struct {
	PrimaryCode string
	SubCode     string
}

// ContextPrompt is free-text guidance attached to one category mapping,
// used to bias translation toward situational vocabulary. At most one
// prompt exists per mapping; many mappings have none.
type ContextPrompt struct {
	PrimaryCode string
	SubCode     string
	PromptKo    string
	PromptEn    string
	// Keywords is a comma-separated hint list carried alongside the prompt.
	Keywords *string
	Active   bool
}

// Text returns the prompt text localized for the given language code.
// Unknown languages fall back to English.
func (p ContextPrompt) Text(lang string) string {
	if NormalizeLang(lang) == "ko" {
		return p.PromptKo
	}
	return p.PromptEn
}
