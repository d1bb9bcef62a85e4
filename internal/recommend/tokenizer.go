package recommend

import (
	"slices"
	"strings"
	"unicode"
)

// defaultStopWords lists functional and filler words ignored when comparing
// goal texts. Korean particles and endings come first, then English.
var defaultStopWords = []string{
	"은", "는", "이", "가", "을", "를", "으로", "로", "와", "과", "도", "만", "좀", "잘", "더",
	"가장", "아주", "정말", "바로", "그리고", "그래서", "그러나", "하지만", "또는", "및", "즉", "등",
	"것", "수", "있습니다", "합니다", "이다", "위해", "대한", "통해", "개발", "스터디", "목표",
	"the", "and", "for", "with", "from", "into", "about", "to", "of", "in", "on", "at",
	"by", "an", "or", "is", "are", "was", "be", "it", "this", "that", "my", "our", "we", "you",
}

// DefaultStopWords returns a fresh copy of the built-in stop-word list.
func DefaultStopWords() []string {
	return slices.Clone(defaultStopWords)
}

// Tokenizer splits free text into normalized tokens.
type Tokenizer struct {
	stopWords map[string]struct{}
}

// NewTokenizer returns a Tokenizer that drops the given stop words.
// A nil or empty list disables stop-word filtering.
func NewTokenizer(stopWords []string) *Tokenizer {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Tokenizer{stopWords: set}
}

// Tokenize lowercases text, replaces every rune that is not a letter, digit or
// space with a space, splits on whitespace and drops single-rune tokens and
// stop words. Duplicates are kept since they feed term frequency.
func (t *Tokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) <= 1 {
			continue
		}
		if _, stop := t.stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
