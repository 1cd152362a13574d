package scoring

import (
	"testing"

	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/visa"
)

func strPtr(s string) *string   { return &s }
func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }

func jobWithSalary(country string, min, max float64, currency string) job.NormalizedJob {
	return job.NormalizedJob{
		CountryCode: strPtr(country),
		Salary:      &job.SalaryRange{Min: f64Ptr(min), Max: f64Ptr(max), Currency: currency},
	}
}

func TestScoreVisa_PerfectSignal(t *testing.T) {
	nj := jobWithSalary("GB", 40000, 55000, "GBP")
	sig := visa.Signal{
		RegistryMatch:       true,
		RecentActivityCount: 4,
		Community:           &visa.CommunitySignals{PositiveCount: 10, NegativeCount: 0},
		JDKeywordsFound:     true,
	}

	got := ScoreVisa(nj, sig)
	if got.Total != 100 {
		t.Fatalf("expected total 100 (40+20+20+10+10), got %d", got.Total)
	}
	if got.Rating != RatingExcellent {
		t.Fatalf("expected EXCELLENT rating, got %s", got.Rating)
	}
	if got.Breakdown.Salary.Status != SalaryMeets {
		t.Fatalf("expected salary status meets, got %s", got.Breakdown.Salary.Status)
	}
}

func TestScoreVisa_ExplicitNoSponsorshipPenalty(t *testing.T) {
	nj := jobWithSalary("GB", 40000, 55000, "GBP")
	sig := visa.Signal{
		RegistryMatch:       true,
		RecentActivityCount: 4,
		Community:           &visa.CommunitySignals{PositiveCount: 10},
		JDKeywordsFound:     true,
	}

	base := ScoreVisa(nj, sig)

	sig.ExplicitNoSponsorship = true
	penalized := ScoreVisa(nj, sig)

	if penalized.Total != base.Total-30 {
		t.Fatalf("expected exact -30 penalty: base=%d penalized=%d", base.Total, penalized.Total)
	}
	if !penalized.Breakdown.Penalty.Applied || penalized.Breakdown.Penalty.Points != -30 {
		t.Fatalf("penalty not recorded: %+v", penalized.Breakdown.Penalty)
	}
}

func TestScoreVisa_PenaltyFloorsAtZero(t *testing.T) {
	got := ScoreVisa(job.NormalizedJob{}, visa.Signal{
		RecentActivityCount:   1,
		ExplicitNoSponsorship: true,
	})
	if got.Total != 0 {
		t.Fatalf("expected floor at 0, got %d", got.Total)
	}
}

func TestScoreVisa_ActivityMonotonicUntilCap(t *testing.T) {
	prev := -1
	for count := 0; count <= 6; count++ {
		got := ScoreVisa(job.NormalizedJob{}, visa.Signal{RecentActivityCount: count})
		if got.Total < prev {
			t.Fatalf("visa total decreased at count=%d: %d < %d", count, got.Total, prev)
		}
		prev = got.Total

		want := count * 5
		if want > 20 {
			want = 20
		}
		if got.Breakdown.Activity.Points != want {
			t.Fatalf("count=%d: expected %d activity points, got %d", count, want, got.Breakdown.Activity.Points)
		}
	}
}

func TestScoreVisa_CommunityNegativeNotSubtracted(t *testing.T) {
	got := ScoreVisa(job.NormalizedJob{}, visa.Signal{
		Community: &visa.CommunitySignals{PositiveCount: 3, NegativeCount: 50},
	})
	if got.Breakdown.Community.Points != 6 {
		t.Fatalf("expected 6 community points regardless of negatives, got %d", got.Breakdown.Community.Points)
	}
	if got.Breakdown.Community.NegativeCount != 50 {
		t.Fatalf("negative count should be recorded, got %d", got.Breakdown.Community.NegativeCount)
	}
}

func TestScoreVisa_CommunityAbsent(t *testing.T) {
	got := ScoreVisa(job.NormalizedJob{}, visa.Signal{})
	if got.Breakdown.Community.Present || got.Breakdown.Community.Points != 0 {
		t.Fatalf("absent community signals should score 0: %+v", got.Breakdown.Community)
	}
}

func TestScoreVisa_SalaryThreshold(t *testing.T) {
	cases := []struct {
		name   string
		nj     job.NormalizedJob
		status SalaryThresholdStatus
		points int
	}{
		{"meets GB threshold", jobWithSalary("GB", 38700, 38700, "GBP"), SalaryMeets, 10},
		{"close within 10 pct", jobWithSalary("GB", 35000, 35000, "GBP"), SalaryClose, 5},
		{"below", jobWithSalary("GB", 20000, 25000, "GBP"), SalaryBelow, 0},
		{"usd conversion meets", jobWithSalary("GB", 50000, 60000, "USD"), SalaryMeets, 10},
		{"sek threshold converted", jobWithSalary("SE", 160000, 170000, "SEK"), SalaryMeets, 10},
		{"unknown country", jobWithSalary("US", 200000, 250000, "USD"), SalaryUnknown, 0},
		{"no salary", job.NormalizedJob{CountryCode: strPtr("GB")}, SalaryUnknown, 0},
		{"no country", job.NormalizedJob{Salary: &job.SalaryRange{Min: f64Ptr(50000), Currency: "GBP"}}, SalaryUnknown, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreVisa(tc.nj, visa.Signal{})
			if got.Breakdown.Salary.Status != tc.status {
				t.Fatalf("expected status %s, got %s", tc.status, got.Breakdown.Salary.Status)
			}
			if got.Breakdown.Salary.Points != tc.points {
				t.Fatalf("expected %d points, got %d", tc.points, got.Breakdown.Salary.Points)
			}
		})
	}
}

func TestScoreVisa_Bounded(t *testing.T) {
	signals := []visa.Signal{
		{},
		{RegistryMatch: true, RecentActivityCount: 1000, Community: &visa.CommunitySignals{PositiveCount: 1000}, JDKeywordsFound: true},
		{ExplicitNoSponsorship: true},
		{RecentActivityCount: -5},
	}
	for i, sig := range signals {
		got := ScoreVisa(jobWithSalary("GB", 40000, 60000, "GBP"), sig)
		if got.Total < 0 || got.Total > 100 {
			t.Fatalf("signal %d: total out of range: %d", i, got.Total)
		}
	}
}

func TestRatingFor(t *testing.T) {
	cases := []struct {
		score int
		want  Rating
	}{
		{95, RatingExcellent}, {90, RatingExcellent},
		{89, RatingStrong}, {80, RatingStrong},
		{79, RatingGood}, {70, RatingGood},
		{69, RatingFair}, {60, RatingFair},
		{59, RatingWeak}, {50, RatingWeak},
		{49, RatingPoor}, {0, RatingPoor},
	}
	for _, tc := range cases {
		if got := RatingFor(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}
