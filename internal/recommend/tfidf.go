package recommend

import "math"

// Vector is a sparse token -> weight mapping.
type Vector map[string]float64

// Vocabulary maps every token of a corpus to its inverse document frequency.
// It is built per ranking call and never modified afterwards.
type Vocabulary struct {
	idf  map[string]float64
	docs int
}

// TermFrequency counts occurrences of each token.
func TermFrequency(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}

// InverseDocumentFrequency is the smoothed idf ln((1+n)/(1+df)) + 1.
// It strictly decreases as df grows and stays positive for df <= n, so terms
// shared by every document still carry some weight.
func InverseDocumentFrequency(docs, df int) float64 {
	return math.Log(float64(1+docs)/float64(1+df)) + 1
}

// BuildVocabulary computes document frequencies over the tokenized corpus.
// Presence is counted once per document regardless of repetitions.
func BuildVocabulary(corpus [][]string) Vocabulary {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	idf := make(map[string]float64, len(df))
	for tok, n := range df {
		idf[tok] = InverseDocumentFrequency(len(corpus), n)
	}
	return Vocabulary{idf: idf, docs: len(corpus)}
}

// IDF returns the weight of token and whether it belongs to the vocabulary.
func (v Vocabulary) IDF(token string) (float64, bool) {
	w, ok := v.idf[token]
	return w, ok
}

// Len is the number of distinct tokens.
func (v Vocabulary) Len() int { return len(v.idf) }

// Documents is the corpus size the vocabulary was built from.
func (v Vocabulary) Documents() int { return v.docs }

// Vectorize weights tokens by tf*idf. Tokens outside the vocabulary and
// non-positive weights are dropped.
func (v Vocabulary) Vectorize(tokens []string) Vector {
	if len(tokens) == 0 {
		return Vector{}
	}
	vec := make(Vector, len(tokens))
	for tok, count := range TermFrequency(tokens) {
		idf, ok := v.idf[tok]
		if !ok {
			continue
		}
		if w := float64(count) * idf; w > 0 {
			vec[tok] = w
		}
	}
	return vec
}
