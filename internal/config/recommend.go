package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fadilmartias/studylink/internal/recommend"
)

type RecommendConfig struct {
	Engine recommend.Config
	// Limit caps the number of returned recommendations; 0 returns all.
	Limit int
}

var (
	recommendConfig    *RecommendConfig
	recommendConfigErr error
	recommendOnce      sync.Once
)

// LoadRecommendConfig reads RECOMMEND_* variables. Unset weights keep their
// defaults; RECOMMEND_STOP_WORDS is a comma separated list replacing the
// built-in one.
func LoadRecommendConfig() (*RecommendConfig, error) {
	recommendOnce.Do(func() {
		recommendConfig, recommendConfigErr = parseRecommendConfig(os.Getenv)
	})
	return recommendConfig, recommendConfigErr
}

func parseRecommendConfig(getenv func(string) string) (*RecommendConfig, error) {
	cfg := &RecommendConfig{Engine: recommend.DefaultConfig()}

	weights := []struct {
		key string
		dst *float64
	}{
		{"RECOMMEND_WEIGHT_GOAL", &cfg.Engine.Weights.Goal},
		{"RECOMMEND_WEIGHT_TAG", &cfg.Engine.Weights.Tag},
		{"RECOMMEND_WEIGHT_CAREER", &cfg.Engine.Weights.Career},
		{"RECOMMEND_WEIGHT_STYLE", &cfg.Engine.Weights.Style},
		{"RECOMMEND_WEIGHT_REGION", &cfg.Engine.Weights.Region},
	}
	for _, w := range weights {
		raw := strings.TrimSpace(getenv(w.key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", w.key, err)
		}
		*w.dst = v
	}

	if raw := getenv("RECOMMEND_STOP_WORDS"); strings.TrimSpace(raw) != "" {
		words := make([]string, 0)
		for _, w := range strings.Split(raw, ",") {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, w)
			}
		}
		cfg.Engine.StopWords = words
	}

	if raw := strings.TrimSpace(getenv("RECOMMEND_LIMIT")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("parse RECOMMEND_LIMIT: invalid value %q", raw)
		}
		cfg.Limit = n
	}

	if err := cfg.Engine.Weights.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
