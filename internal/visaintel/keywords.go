package visaintel

import (
	"regexp"
	"strings"
)

var positiveKeywordPatterns = []struct {
	label string
	rx    *regexp.Regexp
}{
	{"visa sponsorship", regexp.MustCompile(`(?i)\bvisa sponsorship\b`)},
	{"sponsorship available", regexp.MustCompile(`(?i)\bsponsorship (?:is )?available\b`)},
	{"sponsor", regexp.MustCompile(`(?i)\b(?:we |will |can )sponsor\b`)},
	{"work permit", regexp.MustCompile(`(?i)\bwork permit\b`)},
	{"skilled worker", regexp.MustCompile(`(?i)\bskilled worker\b`)},
	{"relocation support", regexp.MustCompile(`(?i)\brelocation (?:support|package|assistance)\b`)},
	{"h1b", regexp.MustCompile(`(?i)\bh-?1b\b`)},
	{"blue card", regexp.MustCompile(`(?i)\bblue card\b`)},
	{"highly skilled migrant", regexp.MustCompile(`(?i)\bhighly skilled migrant\b`)},
}

var negativeKeywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bno visa sponsorship\b`),
	regexp.MustCompile(`(?i)\bwithout (?:visa )?sponsorship\b`),
	regexp.MustCompile(`(?i)\b(?:do|does|can|will)\s?not\s(?:offer|provide)?\s?sponsor`),
	regexp.MustCompile(`(?i)\bunable to sponsor\b`),
	regexp.MustCompile(`(?i)\bcannot sponsor\b`),
	regexp.MustCompile(`(?i)\bmust (?:be authorized|have the right) to work\b`),
	regexp.MustCompile(`(?i)\bexisting right to work\b`),
	regexp.MustCompile(`(?i)\bno relocation\b`),
}

// ScanDescription inspects a job description for sponsorship language.
// Negative phrasing wins over positive: a posting that says "no visa
// sponsorship" still matches the positive "visa sponsorship" pattern,
// so callers must treat explicitNo as overriding.
func ScanDescription(description string) (found []string, explicitNo bool) {
	text := strings.ToLower(description)
	for _, rx := range negativeKeywordPatterns {
		if rx.MatchString(text) {
			explicitNo = true
			break
		}
	}
	for _, p := range positiveKeywordPatterns {
		if p.rx.MatchString(text) {
			found = append(found, p.label)
		}
	}
	return found, explicitNo
}
