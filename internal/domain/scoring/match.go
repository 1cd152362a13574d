package scoring

import (
	"math"
	"strings"
)

// looseMatch reports whether either string contains the other,
// case-insensitively. This tolerates phrasing variance between profile
// skills and job tags ("payment" vs "payment processing") at the cost
// of known false positives ("java" matches "javascript"); tightening it
// to token-boundary matching would change every emitted score, so the
// behavior is kept as-is.
func looseMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// matchAgainst returns the percentage of userSkills found in jobTags via
// loose matching, plus the matched skills in user order. An empty user
// set scores 0, not full credit.
func matchAgainst(userSkills, jobTags []string) (int, []string) {
	if len(userSkills) == 0 {
		return 0, nil
	}

	matched := make([]string, 0, len(userSkills))
	for _, us := range userSkills {
		for _, jt := range jobTags {
			if looseMatch(us, jt) {
				matched = append(matched, us)
				break
			}
		}
	}

	pct := int(math.Round(100 * float64(len(matched)) / float64(len(userSkills))))
	return pct, matched
}

func containsLoose(haystack []string, needle string) bool {
	for _, h := range haystack {
		if looseMatch(h, needle) {
			return true
		}
	}
	return false
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
