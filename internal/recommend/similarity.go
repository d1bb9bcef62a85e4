package recommend

import "math"

// Cosine returns the cosine similarity of two non-negative vectors, in [0,1].
// An empty vector or a zero norm yields 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	var dot float64
	for tok, w := range small {
		if other, ok := large[tok]; ok {
			dot += w * other
		}
	}

	normA, normB := norm(a), norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	return clamp01(dot / (normA * normB))
}

func norm(v Vector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
