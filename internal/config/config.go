package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Translate TranslateConfig `yaml:"translate"`
	Speech    SpeechConfig    `yaml:"speech"`
	Storage   StorageConfig   `yaml:"storage"`
	Limits    LimitsConfig    `yaml:"limits"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TranslateConfig holds translation provider credentials. Either provider
// may be left unconfigured; the provider factory substitutes deterministic
// stubs so the pipeline never depends on third-party credentials.
type TranslateConfig struct {
	// GoogleAPIKey enables the plain Cloud Translation provider.
	GoogleAPIKey string `yaml:"google_api_key" env:"TRANSLATE_GOOGLE_API_KEY"`
	// OpenAIAPIKey enables the context-aware LLM provider.
	OpenAIAPIKey string `yaml:"openai_api_key" env:"TRANSLATE_OPENAI_API_KEY"`
	OpenAIModel  string `yaml:"openai_model"   env:"TRANSLATE_OPENAI_MODEL"   env-default:"gpt-4o-mini"`
}

// SpeechConfig holds speech-to-text / text-to-speech provider settings.
type SpeechConfig struct {
	GoogleAPIKey string `yaml:"google_api_key" env:"SPEECH_GOOGLE_API_KEY"`
	TTSVoice     string `yaml:"tts_voice"      env:"SPEECH_TTS_VOICE"      env-default:"ko-KR-Standard-A"`
}

// StorageConfig holds blob storage settings for synthesized audio.
type StorageConfig struct {
	SupabaseURL string `yaml:"supabase_url"    env:"STORAGE_SUPABASE_URL"`
	SupabaseKey string `yaml:"supabase_key"    env:"STORAGE_SUPABASE_KEY"`
	Bucket      string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"tts"`
}

// LimitsConfig holds request-shaping limits.
type LimitsConfig struct {
	MaxTextLength   int `yaml:"max_text_length"   env:"LIMITS_MAX_TEXT_LENGTH"   env-default:"5000"`
	DefaultPageSize int `yaml:"default_page_size" env:"LIMITS_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"LIMITS_MAX_PAGE_SIZE"     env-default:"100"`
}
