package config

import (
	"errors"
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return errors.New("llm.api_key is required")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.GenerateTimeout <= 0 {
		return fmt.Errorf("llm.generate_timeout must be > 0 (got %v)", c.LLM.GenerateTimeout)
	}

	if err := c.Analysis.validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	if c.Server.WriteTimeout > 0 && c.Analysis.BatchTimeout >= c.Server.WriteTimeout {
		return fmt.Errorf("analysis.batch_timeout (%v) must be < server.write_timeout (%v)",
			c.Analysis.BatchTimeout, c.Server.WriteTimeout)
	}

	if c.Fetcher.RequestsPerSecond <= 0 {
		return fmt.Errorf("fetcher.requests_per_second must be > 0 (got %v)", c.Fetcher.RequestsPerSecond)
	}
	if c.Fetcher.Burst < 1 {
		return fmt.Errorf("fetcher.burst must be >= 1 (got %d)", c.Fetcher.Burst)
	}
	if c.Fetcher.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetcher.max_body_bytes must be > 0 (got %d)", c.Fetcher.MaxBodyBytes)
	}

	if c.RateLimit.AIRequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.ai_requests_per_minute must be > 0 (got %d)", c.RateLimit.AIRequestsPerMinute)
	}

	return nil
}

func (a *AnalysisConfig) validate() error {
	if a.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", a.Concurrency)
	}
	if a.MaxURLs < 1 {
		return fmt.Errorf("max_urls must be >= 1 (got %d)", a.MaxURLs)
	}
	if a.FetchMaxAttempts < 1 {
		return fmt.Errorf("fetch_max_attempts must be >= 1 (got %d)", a.FetchMaxAttempts)
	}
	if a.FetchTimeout <= 0 || a.ExtractTimeout <= 0 || a.BatchTimeout <= 0 {
		return errors.New("fetch_timeout, extract_timeout and batch_timeout must be > 0")
	}
	if a.FetchInitialBackoff <= 0 || a.FetchMaxBackoff < a.FetchInitialBackoff {
		return fmt.Errorf("fetch backoff must satisfy 0 < initial (%v) <= max (%v)", a.FetchInitialBackoff, a.FetchMaxBackoff)
	}
	return nil
}
