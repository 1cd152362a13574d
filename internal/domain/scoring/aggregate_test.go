package scoring

import (
	"reflect"
	"testing"

	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/profile"
	"sponsor-scout/internal/domain/visa"
)

func perfectJob() job.NormalizedJob {
	return job.NormalizedJob{
		Title:         strPtr("Senior Product Manager - Payments"),
		Company:       strPtr("Monzo"),
		Location:      strPtr("London"),
		CountryCode:   strPtr("GB"),
		Skills:        []string{"product strategy", "roadmapping", "sql", "jira", "stakeholder management"},
		Domains:       []string{"payments", "fintech"},
		Salary:        &job.SalaryRange{Min: f64Ptr(60000), Max: f64Ptr(80000), Currency: "GBP"},
		ExperienceMin: intPtr(4),
		ExperienceMax: intPtr(8),
	}
}

func perfectProfile() profile.Profile {
	p := londonProfile()
	p.SkillsDomain = []string{"payments", "fintech"}
	p.SkillsCorePM = []string{"product strategy", "roadmapping"}
	p.SkillsTools = []string{"jira", "sql"}
	p.SkillsTech = []string{"sql"}
	return p
}

func perfectSignal() visa.Signal {
	return visa.Signal{
		RegistryMatch:       true,
		RecentActivityCount: 4,
		Community:           &visa.CommunitySignals{PositiveCount: 10, NegativeCount: 0},
		JDKeywordsFound:     true,
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	a := Aggregate(perfectJob(), perfectProfile(), perfectSignal(), DefaultConfig())
	b := Aggregate(perfectJob(), perfectProfile(), perfectSignal(), DefaultConfig())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}

func TestAggregate_PerfectMatchScenario(t *testing.T) {
	got := Aggregate(perfectJob(), perfectProfile(), perfectSignal(), DefaultConfig())

	if got.VisaScore != 100 {
		t.Fatalf("expected visa 100, got %d", got.VisaScore)
	}
	if got.OverallScore < 85 {
		t.Fatalf("expected overall >= 85, got %d", got.OverallScore)
	}
	if got.Recommendation.Action != "APPLY NOW" {
		t.Fatalf("expected APPLY NOW, got %s", got.Recommendation.Action)
	}
	if got.Breakdown.Weights != (WeightsUsed{Visa: 0.40, Resume: 0.35, Relevance: 0.25}) {
		t.Fatalf("weights not echoed in breakdown: %+v", got.Breakdown.Weights)
	}
}

func TestAggregate_ExplicitRejectionDropsTier(t *testing.T) {
	base := Aggregate(perfectJob(), perfectProfile(), perfectSignal(), DefaultConfig())

	sig := perfectSignal()
	sig.ExplicitNoSponsorship = true
	rejected := Aggregate(perfectJob(), perfectProfile(), sig, DefaultConfig())

	if rejected.VisaScore != base.VisaScore-30 {
		t.Fatalf("expected visa to drop exactly 30: %d -> %d", base.VisaScore, rejected.VisaScore)
	}
	if rejected.Recommendation.Action == base.Recommendation.Action {
		t.Fatalf("recommendation should drop at least one tier, both %q", base.Recommendation.Action)
	}
}

func TestAggregate_EmptyProfileScenario(t *testing.T) {
	got := Aggregate(perfectJob(), profile.Profile{}, perfectSignal(), DefaultConfig())

	if got.ResumeMatchScore != 0 {
		t.Fatalf("empty skill tiers should give resume 0, got %d", got.ResumeMatchScore)
	}
	// Relevance reads other profile fields, so it still produces its own
	// neutral-band score rather than collapsing with the resume score.
	if got.JobRelevanceScore == 0 {
		t.Fatalf("relevance should not be zeroed by empty skill tiers")
	}
}

func TestRecommend_DecisionTableOrdering(t *testing.T) {
	cases := []struct {
		overall, visa int
		action        string
	}{
		{85, 80, "APPLY NOW"},
		{84, 80, "STRONGLY CONSIDER"},
		{85, 79, "STRONGLY CONSIDER"},
		{75, 60, "STRONGLY CONSIDER"},
		{75, 59, "CONSIDER"},
		{65, 0, "CONSIDER"},
		{64, 100, "REVIEW CAREFULLY"},
		{50, 0, "REVIEW CAREFULLY"},
		{49, 100, "SKIP"},
		{0, 0, "SKIP"},
	}

	for _, tc := range cases {
		got := RecommendationFor(tc.overall, tc.visa)
		if got.Action != tc.action {
			t.Fatalf("overall=%d visa=%d: expected %q, got %q", tc.overall, tc.visa, tc.action, got.Action)
		}
		if got.Priority == "" || got.Confidence == "" || got.Reason == "" {
			t.Fatalf("overall=%d visa=%d: incomplete recommendation %+v", tc.overall, tc.visa, got)
		}
	}
}

func TestAggregate_OverallWeighting(t *testing.T) {
	// Known component totals: visa 100, resume 0, relevance as computed.
	got := Aggregate(perfectJob(), profile.Profile{}, perfectSignal(), DefaultConfig())

	want := clampScore(roundToInt(
		float64(got.VisaScore)*0.40 + float64(got.ResumeMatchScore)*0.35 + float64(got.JobRelevanceScore)*0.25,
	))
	if got.OverallScore != want {
		t.Fatalf("overall %d does not match weighted sum %d", got.OverallScore, want)
	}
}

func TestAggregate_Bounded(t *testing.T) {
	jobs := []job.NormalizedJob{{}, perfectJob()}
	profiles := []profile.Profile{{}, perfectProfile()}
	signals := []visa.Signal{
		{},
		perfectSignal(),
		{ExplicitNoSponsorship: true},
		{RegistryMatch: true, RecentActivityCount: 9999, Community: &visa.CommunitySignals{PositiveCount: 9999}},
	}

	for _, nj := range jobs {
		for _, p := range profiles {
			for _, sig := range signals {
				got := Aggregate(nj, p, sig, DefaultConfig())
				for name, v := range map[string]int{
					"overall":   got.OverallScore,
					"visa":      got.VisaScore,
					"resume":    got.ResumeMatchScore,
					"relevance": got.JobRelevanceScore,
				} {
					if v < 0 || v > 100 {
						t.Fatalf("%s score out of range: %d", name, v)
					}
				}
			}
		}
	}
}
