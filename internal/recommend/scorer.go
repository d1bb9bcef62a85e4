package recommend

import "strings"

// careerFitByDistance is indexed by the absolute rank distance between the
// member's level and the group's required level. Larger distances score 0.
var careerFitByDistance = []float64{1.0, 0.5, 0.1}

// NormalizeTag trims, lowercases and removes all whitespace from a tag name.
func NormalizeTag(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

// NormalizeTags returns the distinct normalized, non-empty tag names.
func NormalizeTags(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if t := NormalizeTag(n); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

// TagOverlap is |common| / min(|user|, |group|) over normalized tags, so a
// set fully contained in the other scores 1.
func TagOverlap(userTags, groupTags []string) float64 {
	u, g := NormalizeTags(userTags), NormalizeTags(groupTags)
	if len(u) == 0 || len(g) == 0 {
		return 0
	}

	common := 0
	for t := range u {
		if _, ok := g[t]; ok {
			common++
		}
	}
	return float64(common) / float64(min(len(u), len(g)))
}

// CareerFit scores how close the member's level is to the required one.
func CareerFit(user, required Career) float64 {
	ur, ok := user.Rank()
	if !ok {
		return 0
	}
	rr, ok := required.Rank()
	if !ok {
		return 0
	}

	diff := ur - rr
	if diff < 0 {
		diff = -diff
	}
	if diff >= len(careerFitByDistance) {
		return 0
	}
	return careerFitByDistance[diff]
}

// StyleFit is 1 when both formats are set and equal.
func StyleFit(user, group StudyStyle) float64 {
	if user == "" || group == "" {
		return 0
	}
	if user == group {
		return 1
	}
	return 0
}

// RegionFit compares regions for offline and hybrid groups. For online groups
// the region is irrelevant and members preferring online get half credit.
func RegionFit(userRegion, groupRegion string, userStyle, groupStyle StudyStyle) float64 {
	userRegion, groupRegion = strings.TrimSpace(userRegion), strings.TrimSpace(groupRegion)
	if userRegion == "" || groupRegion == "" || groupStyle == "" {
		return 0
	}

	if groupStyle == StyleOnline {
		if userStyle == StyleOnline {
			return 0.5
		}
		return 0
	}

	if strings.EqualFold(userRegion, groupRegion) {
		return 1
	}
	return 0
}
