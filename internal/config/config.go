package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Fetcher   FetcherConfig   `yaml:"fetcher"`
	LLM       LLMConfig       `yaml:"llm"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"300s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
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

// RateLimitConfig limits the AI-backed endpoints per client IP.
type RateLimitConfig struct {
	AIRequestsPerMinute int           `yaml:"ai_requests_per_minute" env:"RATE_LIMIT_AI_RPM"     env-default:"20"`
	CleanupInterval     time.Duration `yaml:"cleanup_interval"       env:"RATE_LIMIT_CLEANUP"    env-default:"5m"`
}

// AnalysisConfig tunes the batch analysis pipeline.
type AnalysisConfig struct {
	Concurrency         int           `yaml:"concurrency"           env:"ANALYSIS_CONCURRENCY"           env-default:"5"`
	MaxURLs             int           `yaml:"max_urls"              env:"ANALYSIS_MAX_URLS"              env-default:"20"`
	FetchTimeout        time.Duration `yaml:"fetch_timeout"         env:"ANALYSIS_FETCH_TIMEOUT"         env-default:"30s"`
	FetchMaxAttempts    int           `yaml:"fetch_max_attempts"    env:"ANALYSIS_FETCH_MAX_ATTEMPTS"    env-default:"3"`
	FetchInitialBackoff time.Duration `yaml:"fetch_initial_backoff" env:"ANALYSIS_FETCH_INITIAL_BACKOFF" env-default:"500ms"`
	FetchMaxBackoff     time.Duration `yaml:"fetch_max_backoff"     env:"ANALYSIS_FETCH_MAX_BACKOFF"     env-default:"5s"`
	ExtractTimeout      time.Duration `yaml:"extract_timeout"       env:"ANALYSIS_EXTRACT_TIMEOUT"       env-default:"90s"`
	// BatchTimeout bounds a whole analyze-urls request; it must end before server.write_timeout.
	BatchTimeout        time.Duration `yaml:"batch_timeout"         env:"ANALYSIS_BATCH_TIMEOUT"         env-default:"240s"`
}

// FetcherConfig configures the note page fetcher.
type FetcherConfig struct {
	UserAgent         string  `yaml:"user_agent"          env:"FETCHER_USER_AGENT"     env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"`
	Cookie            string  `yaml:"cookie"              env:"FETCHER_COOKIE"`
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"FETCHER_RPS"            env-default:"2"`
	Burst             int     `yaml:"burst"               env:"FETCHER_BURST"          env-default:"5"`
	MaxBodyBytes      int64   `yaml:"max_body_bytes"      env:"FETCHER_MAX_BODY_BYTES" env-default:"4194304"`
}

// LLMConfig configures the Anthropic-backed extractor and generator.
type LLMConfig struct {
	APIKey          string        `yaml:"api_key"          env:"LLM_API_KEY"          env-required:"true"`
	BaseURL         string        `yaml:"base_url"         env:"LLM_BASE_URL"`
	Model           string        `yaml:"model"            env:"LLM_MODEL"            env-default:"claude-sonnet-4-5"`
	MaxTokens       int64         `yaml:"max_tokens"       env:"LLM_MAX_TOKENS"       env-default:"4096"`
	GenerateTimeout time.Duration `yaml:"generate_timeout" env:"LLM_GENERATE_TIMEOUT" env-default:"120s"`
}
