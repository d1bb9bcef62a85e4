package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/studylink/internal/config"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterService calls an OpenAI-compatible /embeddings endpoint.
type OpenRouterService struct {
	client *resty.Client
	model  string
}

func NewOpenRouterService() (*OpenRouterService, error) {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set: %w", ErrNoEmbedder)
	}
	return newOpenRouterService(cfg.BaseURL, cfg.APIKey, cfg.EmbeddingModel), nil
}

func newOpenRouterService(baseURL, apiKey, embeddingModel string) *OpenRouterService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	return &OpenRouterService{client: client, model: embeddingModel}
}

func (s *OpenRouterService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	input, err := prepareEmbeddingInput(text)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":      s.model,
			"input":      input,
			"dimensions": model.EmbeddingDimensions,
		}).
		Post("/embeddings")
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}

	body := resp.String()
	if resp.IsError() {
		msg := gjson.Get(body, "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return nil, fmt.Errorf("embedding request failed with status %d: %s", resp.StatusCode(), msg)
	}

	raw := gjson.Get(body, "data.0.embedding")
	if !raw.IsArray() {
		return nil, fmt.Errorf("invalid embedding response: no embeddings returned")
	}
	items := raw.Array()
	values := make([]float32, 0, len(items))
	for _, v := range items {
		values = append(values, float32(v.Float()))
	}
	return validateEmbedding(values)
}
