package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fadilmartias/studylink/internal/config"
	"github.com/fadilmartias/studylink/internal/model"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client            *genai.Client
	Model             string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	Logger            *zap.Logger
	consecutiveErrors atomic.Int32
	circuitBreakerMax int32
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig, err := config.LoadGeminiConfig()
	if err != nil {
		return nil, err
	}
	if !geminiConfig.Enabled() {
		return nil, fmt.Errorf("GEMINI_API_KEY not set: %w", ErrNoEmbedder)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		Model:             geminiConfig.EmbeddingModel,
		MaxRetries:        geminiConfig.MaxRetries,
		BaseDelay:         time.Second,
		MaxDelay:          30 * time.Second,
		RequestTimeout:    geminiConfig.RequestTimeout,
		Logger:            zap.NewNop(),
		circuitBreakerMax: 5,
	}, nil
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	input, err := prepareEmbeddingInput(text)
	if err != nil {
		return nil, err
	}

	if n := s.consecutiveErrors.Load(); n >= s.circuitBreakerMax {
		return nil, fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", n)
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	content := []*genai.Content{genai.NewContentFromText(input, genai.RoleUser)}
	embedConfig := &genai.EmbedContentConfig{
		OutputDimensionality: genai.Ptr(int32(model.EmbeddingDimensions)),
	}

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.Logger.Debug("retrying gemini embedding",
				zap.Int("attempt", attempt), zap.Int("max_retries", s.MaxRetries), zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return nil, fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.Client.Models.EmbedContent(timeoutCtx, s.Model, content, embedConfig)
		if err == nil {
			s.consecutiveErrors.Store(0)
			if result == nil || len(result.Embeddings) == 0 || result.Embeddings[0] == nil {
				return nil, fmt.Errorf("invalid embedding response: no embeddings returned")
			}
			values, err := validateEmbedding(result.Embeddings[0].Values)
			if err != nil {
				return nil, fmt.Errorf("invalid embedding response: %w", err)
			}
			return values, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			s.consecutiveErrors.Add(1)
			return nil, fmt.Errorf("generate embedding failed: %w", err)
		}
		s.Logger.Warn("retryable gemini error", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.consecutiveErrors.Add(1)
	return nil, fmt.Errorf("max retries (%d) exceeded for GenerateEmbedding: %w", s.MaxRetries, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}
	return delay
}

func (s *GeminiService) ResetCircuitBreaker() {
	s.consecutiveErrors.Store(0)
}

func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	n := s.consecutiveErrors.Load()
	return int(n), n >= s.circuitBreakerMax
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "context canceled") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return false
	}

	var apiErr genai.APIError
	switch e := err.(type) {
	case genai.APIError:
		apiErr = e
	case *genai.APIError:
		apiErr = *e
	}
	switch apiErr.Code {
	case 429, 500, 502, 503, 504:
		return true
	case 400, 401, 403, 404:
		return false
	}

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}
