package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Limits.MaxTextLength <= 0 {
		return fmt.Errorf("limits.max_text_length must be > 0 (got %d)", c.Limits.MaxTextLength)
	}
	if c.Limits.DefaultPageSize <= 0 {
		return fmt.Errorf("limits.default_page_size must be > 0 (got %d)", c.Limits.DefaultPageSize)
	}
	if c.Limits.MaxPageSize < c.Limits.DefaultPageSize {
		return fmt.Errorf("limits.max_page_size must be >= default_page_size (got %d < %d)",
			c.Limits.MaxPageSize, c.Limits.DefaultPageSize)
	}

	// Supabase storage is all-or-nothing: a URL without a key (or the
	// reverse) is a misconfiguration, not a partial setup.
	if (c.Storage.SupabaseURL == "") != (c.Storage.SupabaseKey == "") {
		return fmt.Errorf("storage: supabase_url and supabase_key must be set together")
	}

	if c.Translate.OpenAIAPIKey != "" && c.Translate.OpenAIModel == "" {
		return fmt.Errorf("translate.openai_model is required when openai_api_key is set")
	}

	return nil
}

// HasContextTranslator reports whether the context-aware LLM provider is
// configured.
func (c *Config) HasContextTranslator() bool {
	return c.Translate.OpenAIAPIKey != ""
}

// HasPlainTranslator reports whether the plain translation provider is
// configured.
func (c *Config) HasPlainTranslator() bool {
	return c.Translate.GoogleAPIKey != ""
}

// HasSpeech reports whether the STT/TTS provider is configured.
func (c *Config) HasSpeech() bool {
	return c.Speech.GoogleAPIKey != ""
}

// HasStorage reports whether blob storage is configured.
func (c *Config) HasStorage() bool {
	return c.Storage.SupabaseURL != "" && c.Storage.SupabaseKey != ""
}
