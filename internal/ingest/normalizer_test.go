package ingest

import (
	"strings"
	"testing"
)

const sampleBody = `
Senior Product Manager

Monzo is looking for a Senior Product Manager to join our payments team in London.

Location: London, United Kingdom

What you'll do:
- Own the product strategy and roadmap for our payments platform
- Run user research and a/b testing with the discovery squad
- Work with stakeholders across fintech partners

What we're looking for:
- 4-7 years of product management experience
- Comfortable with sql and amplitude
- Experience shipping in agile teams using jira

Salary: £70,000 - £90,000 plus equity. Visa sponsorship available.
`

func TestNormalize_FullPosting(t *testing.T) {
	page := FetchedPage{
		URL:      "https://example.com/jobs/123",
		Title:    "Senior Product Manager - Monzo",
		BodyText: sampleBody,
	}
	nj := Normalize(page)

	if nj.Title == nil || *nj.Title != "Senior Product Manager" {
		t.Fatalf("title = %v", nj.Title)
	}
	if nj.Company == nil || *nj.Company != "Monzo" {
		t.Fatalf("company = %v", nj.Company)
	}
	if nj.Location == nil || !strings.Contains(strings.ToLower(*nj.Location), "london") {
		t.Fatalf("location = %v", nj.Location)
	}
	if nj.CountryCode == nil || *nj.CountryCode != "GB" {
		t.Fatalf("country = %v", nj.CountryCode)
	}

	for _, want := range []string{"product strategy", "roadmap", "user research", "a/b testing", "sql", "amplitude", "jira", "agile"} {
		if !hasTerm(nj.Skills, want) {
			t.Errorf("missing skill %q in %v", want, nj.Skills)
		}
	}
	if !hasTerm(nj.Domains, "fintech") || !hasTerm(nj.Domains, "payments") {
		t.Errorf("domains = %v", nj.Domains)
	}

	if nj.Salary == nil {
		t.Fatal("expected salary")
	}
	if nj.Salary.Currency != "GBP" {
		t.Errorf("currency = %s", nj.Salary.Currency)
	}
	if nj.Salary.Min == nil || *nj.Salary.Min != 70000 {
		t.Errorf("salary min = %v", nj.Salary.Min)
	}
	if nj.Salary.Max == nil || *nj.Salary.Max != 90000 {
		t.Errorf("salary max = %v", nj.Salary.Max)
	}

	if nj.ExperienceMin == nil || *nj.ExperienceMin != 4 {
		t.Errorf("experience min = %v", nj.ExperienceMin)
	}
	if nj.ExperienceMax == nil || *nj.ExperienceMax != 7 {
		t.Errorf("experience max = %v", nj.ExperienceMax)
	}
}

func TestNormalize_KSuffixSalary(t *testing.T) {
	nj := Normalize(FetchedPage{BodyText: "Base comp $120k - $150k depending on experience."})
	if nj.Salary == nil {
		t.Fatal("expected salary")
	}
	if nj.Salary.Currency != "USD" {
		t.Errorf("currency = %s", nj.Salary.Currency)
	}
	if nj.Salary.Min == nil || *nj.Salary.Min != 120000 {
		t.Errorf("min = %v", nj.Salary.Min)
	}
	if nj.Salary.Max == nil || *nj.Salary.Max != 150000 {
		t.Errorf("max = %v", nj.Salary.Max)
	}
}

func TestNormalize_SingleSalaryFigure(t *testing.T) {
	nj := Normalize(FetchedPage{BodyText: "We pay €85,000 a year."})
	if nj.Salary == nil {
		t.Fatal("expected salary")
	}
	if nj.Salary.Min == nil || nj.Salary.Max == nil || *nj.Salary.Min != 85000 || *nj.Salary.Max != 85000 {
		t.Fatalf("salary = %v/%v", nj.Salary.Min, nj.Salary.Max)
	}
}

func TestNormalize_SmallFigureIsNotSalary(t *testing.T) {
	nj := Normalize(FetchedPage{BodyText: "Join a team of $10 million ARR... wait, $10 is too small."})
	if nj.Salary != nil {
		t.Fatalf("unexpected salary %v/%v", nj.Salary.Min, nj.Salary.Max)
	}
}

func TestNormalize_RemoteDetection(t *testing.T) {
	nj := Normalize(FetchedPage{BodyText: "This is a fully remote position."})
	if !nj.IsRemote {
		t.Fatal("expected remote")
	}
}

func TestNormalize_MinYearsOnly(t *testing.T) {
	nj := Normalize(FetchedPage{BodyText: "At least 5+ years of experience required."})
	if nj.ExperienceMin == nil || *nj.ExperienceMin != 5 {
		t.Fatalf("experience min = %v", nj.ExperienceMin)
	}
	if nj.ExperienceMax != nil {
		t.Fatalf("experience max = %v", nj.ExperienceMax)
	}
}

func TestNormalize_FirstCityMentionWins(t *testing.T) {
	cases := map[string]string{
		"Our offices are in London and Berlin.":        "GB",
		"Our offices are in Berlin and London.":        "DE",
		"Teams in Stockholm, Amsterdam and Toronto.":   "SE",
		"Hybrid from Toronto; HQ remains in New York.": "CA",
	}
	for body, want := range cases {
		for i := 0; i < 50; i++ {
			nj := Normalize(FetchedPage{BodyText: body})
			if nj.CountryCode == nil || *nj.CountryCode != want {
				t.Fatalf("iteration %d: country for %q = %v, want %s", i, body, nj.CountryCode, want)
			}
		}
	}
}

func TestNormalize_EmptyPage(t *testing.T) {
	nj := Normalize(FetchedPage{})
	if nj.Title != nil || nj.Company != nil || nj.Salary != nil {
		t.Fatal("expected empty normalization")
	}
	if len(nj.Skills) != 0 || len(nj.Domains) != 0 {
		t.Fatal("expected no lexicon matches")
	}
}

func TestCleanTitle_StripsBoardSuffix(t *testing.T) {
	cases := map[string]string{
		"Product Manager | LinkedIn":        "Product Manager",
		"Product Manager - Acme":            "Product Manager",
		"Growth PM – Berlin – Acme Careers": "Growth PM",
		"Plain Title":                       "Plain Title",
	}
	for in, want := range cases {
		if got := cleanTitle(in); got != want {
			t.Errorf("cleanTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func hasTerm(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
