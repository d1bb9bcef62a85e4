package usecase

import (
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/recommend"
)

// normalizeTagNames normalizes names and drops blanks and duplicates,
// keeping first-seen order.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		key := recommend.NormalizeTag(n)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

func resolveTags(repo TagRepository, names []string) ([]model.Tag, error) {
	normalized := normalizeTagNames(names)
	if len(normalized) == 0 {
		return []model.Tag{}, nil
	}
	return repo.FindOrCreateTags(normalized)
}
