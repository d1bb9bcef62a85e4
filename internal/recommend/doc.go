// Package recommend ranks study groups for a member profile.
//
// A ranking call scores every candidate along five independent dimensions and
// combines them with configurable weights into a 0-100 match score:
//
//	score = 100 * (w_goal*cos(goal) + w_tag*overlap(tags) + w_career*fit(career) +
//	               w_style*fit(style) + w_region*fit(region))
//
// Goal similarity is the cosine of TF-IDF vectors built over a vocabulary that
// is computed from scratch for every call (candidate goals plus the profile
// goal). Nothing is cached between calls, so an Engine is safe for concurrent
// use and never mutates its inputs.
package recommend
