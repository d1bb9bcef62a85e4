package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type GeminiConfig struct {
	APIKey         string
	EmbeddingModel string
	MaxRetries     int
	RequestTimeout time.Duration
}

var (
	geminiConfig    *GeminiConfig
	geminiConfigErr error
	geminiOnce      sync.Once
)

func LoadGeminiConfig() (*GeminiConfig, error) {
	geminiOnce.Do(func() {
		geminiConfig, geminiConfigErr = parseGeminiConfig(os.Getenv)
	})
	return geminiConfig, geminiConfigErr
}

func parseGeminiConfig(getenv func(string) string) (*GeminiConfig, error) {
	cfg := &GeminiConfig{
		APIKey:         strings.TrimSpace(getenv("GEMINI_API_KEY")),
		EmbeddingModel: strings.TrimSpace(getenv("GEMINI_EMBEDDING_MODEL")),
		MaxRetries:     3,
		RequestTimeout: time.Minute,
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "gemini-embedding-001"
	}
	if raw := strings.TrimSpace(getenv("GEMINI_MAX_RETRIES")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("GEMINI_MAX_RETRIES must be a non-negative integer, got %q", raw)
		}
		cfg.MaxRetries = n
	}
	if raw := strings.TrimSpace(getenv("GEMINI_REQUEST_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("GEMINI_REQUEST_TIMEOUT must be a positive duration, got %q", raw)
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}

// Enabled reports whether an API key was configured.
func (c *GeminiConfig) Enabled() bool { return c.APIKey != "" }
