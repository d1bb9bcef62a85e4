package recommend

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Config configures an Engine.
type Config struct {
	Weights   Weights
	StopWords []string
}

// DefaultConfig returns the default weights and stop words.
func DefaultConfig() Config {
	return Config{Weights: DefaultWeights(), StopWords: DefaultStopWords()}
}

// Engine ranks candidate groups. It holds only immutable configuration.
type Engine struct {
	weights   Weights
	tokenizer *Tokenizer
}

// NewEngine validates cfg and builds an Engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		weights:   cfg.Weights,
		tokenizer: NewTokenizer(cfg.StopWords),
	}, nil
}

// Weights returns the configured weights.
func (e *Engine) Weights() Weights { return e.weights }

// Recommend scores every candidate that is not excluded and whose recruitment
// deadline is not before now's calendar day, drops non-positive scores and
// returns the rest sorted by descending score. Equal scores keep input order.
func (e *Engine) Recommend(profile UserProfile, candidates []CandidateGroup, excluded map[uuid.UUID]struct{}, now time.Time) []MatchResult {
	corpus := make([][]string, 0, len(candidates)+1)
	for _, c := range candidates {
		corpus = append(corpus, e.tokenizer.Tokenize(c.Goal))
	}
	profileTokens := e.tokenizer.Tokenize(profile.Goal)
	corpus = append(corpus, profileTokens)

	vocab := BuildVocabulary(corpus)
	profileVec := vocab.Vectorize(profileTokens)

	results := make([]MatchResult, 0, len(candidates))
	for i, c := range candidates {
		if _, skip := excluded[c.ID]; skip {
			continue
		}
		if Expired(c.RecruitmentDeadline, now) {
			continue
		}

		b := e.breakdown(profile, c, profileVec, vocab.Vectorize(corpus[i]))
		score := e.weights.Score(b)
		if score <= 0 {
			continue
		}
		results = append(results, MatchResult{Group: c, Score: score, Breakdown: b})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func (e *Engine) breakdown(p UserProfile, c CandidateGroup, profileVec, groupVec Vector) Breakdown {
	return Breakdown{
		Goal:   Cosine(profileVec, groupVec),
		Tag:    TagOverlap(p.Tags, c.Tags),
		Career: CareerFit(p.Career, c.RequiredCareer),
		Style:  StyleFit(p.StudyStyle, c.StudyStyle),
		Region: RegionFit(p.Region, c.Region, p.StudyStyle, c.StudyStyle),
	}
}

// Expired reports whether deadline falls on a calendar day before now's day.
// The deadline is read as a date; a nil deadline never expires.
func Expired(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return false
	}
	y, m, d := deadline.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	return day.Before(today)
}
