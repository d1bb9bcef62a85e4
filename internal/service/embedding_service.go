package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// ErrNoEmbedder is returned by NewEmbeddingService when no provider has an API key.
var ErrNoEmbedder = errors.New("no embedding provider configured")

const maxEmbeddingInput = 10000

type EmbeddingServiceInterface interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// NewEmbeddingService picks Gemini when GEMINI_API_KEY is set, otherwise the
// OpenAI-compatible endpoint when OPENROUTER_API_KEY is set.
func NewEmbeddingService(ctx context.Context, log *zap.Logger) (EmbeddingServiceInterface, error) {
	gemini, err := NewGeminiService(ctx)
	if err == nil {
		if log != nil {
			gemini.Logger = log.Named("gemini")
		}
		return gemini, nil
	}
	if !errors.Is(err, ErrNoEmbedder) {
		return nil, err
	}

	openRouter, err := NewOpenRouterService()
	if err != nil {
		return nil, err
	}
	return openRouter, nil
}

func prepareEmbeddingInput(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("text for embedding cannot be empty")
	}
	if r := []rune(trimmed); len(r) > maxEmbeddingInput {
		trimmed = string(r[:maxEmbeddingInput])
	}
	return trimmed, nil
}

func validateEmbedding(values []float32) ([]float32, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, val := range values {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}
	return values, nil
}
