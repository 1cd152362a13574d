package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"sponsor-scout/internal/domain/job"
)

// skillLexicon is the vocabulary scanned for in posting text. Matches
// are recorded verbatim from this list so downstream matching works on
// a stable casing.
var skillLexicon = []string{
	"product strategy", "roadmap", "stakeholder management", "user research",
	"a/b testing", "agile", "scrum", "kanban", "okr", "go-to-market",
	"data analysis", "discovery", "prioritization", "backlog",
	"jira", "confluence", "figma", "amplitude", "mixpanel", "tableau",
	"looker", "notion", "productboard", "miro",
	"sql", "python", "api", "rest", "graphql", "machine learning",
}

var domainLexicon = []string{
	"fintech", "payments", "banking", "healthtech", "e-commerce",
	"marketplace", "saas", "b2b", "b2c", "edtech", "logistics",
	"gaming", "cybersecurity", "insurtech", "proptech",
}

var cityCountry = map[string]string{
	"london":        "GB",
	"manchester":    "GB",
	"edinburgh":     "GB",
	"amsterdam":     "NL",
	"rotterdam":     "NL",
	"berlin":        "DE",
	"munich":        "DE",
	"hamburg":       "DE",
	"stockholm":     "SE",
	"gothenburg":    "SE",
	"sydney":        "AU",
	"melbourne":     "AU",
	"toronto":       "CA",
	"vancouver":     "CA",
	"dubai":         "AE",
	"new york":      "US",
	"san francisco": "US",
}

var currencySymbols = map[string]string{
	"£":   "GBP",
	"$":   "USD",
	"€":   "EUR",
	"kr":  "SEK",
	"aed": "AED",
	"gbp": "GBP",
	"usd": "USD",
	"eur": "EUR",
	"sek": "SEK",
	"aud": "AUD",
	"cad": "CAD",
}

var (
	salaryRangeRe  = regexp.MustCompile(`(?i)(£|\$|€|gbp|usd|eur|sek|aud|cad|aed|kr)\s?([\d][\d,.]*)\s?(k)?\s*(?:-|–|to)\s*(?:£|\$|€|gbp|usd|eur|sek|aud|cad|aed|kr)?\s?([\d][\d,.]*)\s?(k)?`)
	salarySingleRe = regexp.MustCompile(`(?i)(£|\$|€|gbp|usd|eur|sek|aud|cad|aed|kr)\s?([\d][\d,.]*)\s?(k)?`)
	expRangeRe     = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:-|–|to)\s*(\d{1,2})\s*\+?\s*years?`)
	expMinRe       = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*years?`)
	companyAtRe    = regexp.MustCompile(`(?i)\bat\s+([A-Z][A-Za-z0-9&.\- ]{1,40})`)
	locationLineRe = regexp.MustCompile(`(?i)location\s*[:\-]\s*([A-Za-z ,\-]{2,60})`)
)

// Normalize turns a fetched page into the structured record the scoring
// engine consumes. Every field is best-effort; absent attributes stay
// nil so scorers can distinguish unknown from empty.
func Normalize(page FetchedPage) job.NormalizedJob {
	nj := job.NormalizedJob{}
	text := page.BodyText
	lower := strings.ToLower(text)

	if title := cleanTitle(page.Title); title != "" {
		nj.Title = &title
	}

	if company := extractCompany(page.Title, text); company != "" {
		nj.Company = &company
	}

	location, country := extractLocation(text, lower)
	if location != "" {
		nj.Location = &location
	}
	if country != "" {
		nj.CountryCode = &country
	}

	nj.Skills = scanLexicon(lower, skillLexicon)
	nj.Domains = scanLexicon(lower, domainLexicon)
	nj.IsRemote = strings.Contains(lower, "remote")
	nj.Salary = extractSalary(text)
	nj.ExperienceMin, nj.ExperienceMax = extractExperience(text)

	return nj
}

// cleanTitle strips the "| Company" and "- Board" suffixes job boards
// append to the document title.
func cleanTitle(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, sep := range []string{" | ", " – ", " - "} {
		if i := strings.Index(raw, sep); i > 0 {
			raw = raw[:i]
			break
		}
	}
	return strings.TrimSpace(raw)
}

func extractCompany(title, body string) string {
	// "Product Manager - Monzo" style document titles put the company
	// after the separator.
	t := strings.TrimSpace(title)
	for _, sep := range []string{" | ", " – ", " - ", " at "} {
		if i := strings.Index(t, sep); i > 0 {
			candidate := strings.TrimSpace(t[i+len(sep):])
			if candidate != "" && len(candidate) <= 60 && !looksLikeBoardName(candidate) {
				return candidate
			}
		}
	}
	if m := companyAtRe.FindStringSubmatch(body); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func looksLikeBoardName(s string) bool {
	l := strings.ToLower(s)
	for _, b := range []string{"linkedin", "indeed", "glassdoor", "jobs", "careers"} {
		if strings.Contains(l, b) {
			return true
		}
	}
	return false
}

func extractLocation(text, lower string) (location, country string) {
	if m := locationLineRe.FindStringSubmatch(text); len(m) == 2 {
		location = strings.TrimSpace(m[1])
	}
	probe := strings.ToLower(location)
	if probe == "" {
		probe = lower
	}
	// The earliest city mention wins so the same text always yields the
	// same country.
	bestIdx := -1
	bestCity := ""
	for city := range cityCountry {
		i := strings.Index(probe, city)
		if i < 0 {
			continue
		}
		if bestIdx == -1 || i < bestIdx || (i == bestIdx && city < bestCity) {
			bestIdx = i
			bestCity = city
		}
	}
	if bestCity != "" {
		if location == "" {
			location = bestCity
		}
		country = cityCountry[bestCity]
	}
	return location, country
}

func scanLexicon(lower string, lexicon []string) []string {
	var out []string
	for _, term := range lexicon {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}

func extractSalary(text string) *job.SalaryRange {
	if m := salaryRangeRe.FindStringSubmatch(text); len(m) == 6 {
		min := parseAmount(m[2], m[3] != "")
		max := parseAmount(m[4], m[5] != "")
		if min != nil || max != nil {
			return &job.SalaryRange{Min: min, Max: max, Currency: currencyFor(m[1])}
		}
	}
	if m := salarySingleRe.FindStringSubmatch(text); len(m) == 4 {
		v := parseAmount(m[2], m[3] != "")
		// Lone figures below a plausible annual salary are usually
		// something else (a duration, a headcount).
		if v != nil && *v >= 1000 {
			return &job.SalaryRange{Min: v, Max: v, Currency: currencyFor(m[1])}
		}
	}
	return nil
}

func currencyFor(token string) string {
	if c, ok := currencySymbols[strings.ToLower(strings.TrimSpace(token))]; ok {
		return c
	}
	return strings.ToUpper(strings.TrimSpace(token))
}

func parseAmount(raw string, kSuffix bool) *float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	raw = strings.TrimSuffix(raw, ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return nil
	}
	if kSuffix {
		v *= 1000
	}
	return &v
}

func extractExperience(text string) (min, max *int) {
	if m := expRangeRe.FindStringSubmatch(text); len(m) == 3 {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && lo <= hi {
			return &lo, &hi
		}
	}
	if m := expMinRe.FindStringSubmatch(text); len(m) == 2 {
		lo, err := strconv.Atoi(m[1])
		if err == nil {
			return &lo, nil
		}
	}
	return nil, nil
}
