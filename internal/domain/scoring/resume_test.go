package scoring

import (
	"testing"

	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/profile"
)

func pmJob() job.NormalizedJob {
	return job.NormalizedJob{
		Title:   strPtr("Senior Product Manager - Payments"),
		Skills:  []string{"product strategy", "roadmapping", "sql", "jira", "stakeholder management"},
		Domains: []string{"payments", "fintech"},
	}
}

func pmProfile() profile.Profile {
	return profile.Profile{
		SkillsDomain: []string{"payments", "fintech"},
		SkillsCorePM: []string{"product strategy", "roadmapping"},
		SkillsTools:  []string{"jira", "sql"},
		SkillsTech:   []string{"python"},
	}
}

func TestScoreResume_WeightCoupling(t *testing.T) {
	// With the default 0.50 domain weight and a 100% match, the domain
	// tier must land exactly on its 50-point max.
	got := ScoreResume(pmJob(), pmProfile(), DefaultConfig())
	if got.Breakdown.Domain.MatchPct != 100 {
		t.Fatalf("expected 100%% domain match, got %d", got.Breakdown.Domain.MatchPct)
	}
	if got.Breakdown.Domain.Points != 50 {
		t.Fatalf("expected exactly 50 domain points, got %d", got.Breakdown.Domain.Points)
	}
}

func TestScoreResume_EmptyTierScoresZero(t *testing.T) {
	p := pmProfile()
	p.SkillsDomain = nil

	got := ScoreResume(pmJob(), p, DefaultConfig())
	if got.Breakdown.Domain.MatchPct != 0 || got.Breakdown.Domain.Points != 0 {
		t.Fatalf("empty domain tier should score 0, got %+v", got.Breakdown.Domain)
	}
}

func TestScoreResume_EmptyProfileScoresZero(t *testing.T) {
	got := ScoreResume(pmJob(), profile.Profile{}, DefaultConfig())
	if got.Total != 0 {
		t.Fatalf("all-empty profile should score 0, got %d", got.Total)
	}
}

func TestScoreResume_PartialMatchRounding(t *testing.T) {
	p := profile.Profile{SkillsCorePM: []string{"roadmapping", "user research", "okr planning"}}
	got := ScoreResume(pmJob(), p, DefaultConfig())

	// 1 of 3 matched: round(100/3) = 33.
	if got.Breakdown.CorePM.MatchPct != 33 {
		t.Fatalf("expected 33%% core PM match, got %d", got.Breakdown.CorePM.MatchPct)
	}
	// round(30 * 0.30 * 2 * 33/100) = round(5.94) = 6.
	if got.Breakdown.CorePM.Points != 6 {
		t.Fatalf("expected 6 core PM points, got %d", got.Breakdown.CorePM.Points)
	}
}

func TestScoreResume_BidirectionalSubstring(t *testing.T) {
	nj := job.NormalizedJob{Skills: []string{"payment processing"}}
	p := profile.Profile{SkillsCorePM: []string{"payment"}}

	got := ScoreResume(nj, p, DefaultConfig())
	if got.Breakdown.CorePM.MatchPct != 100 {
		t.Fatalf("user skill contained in job tag should match, got %d%%", got.Breakdown.CorePM.MatchPct)
	}

	nj = job.NormalizedJob{Skills: []string{"sql"}}
	p = profile.Profile{SkillsCorePM: []string{"advanced sql"}}
	got = ScoreResume(nj, p, DefaultConfig())
	if got.Breakdown.CorePM.MatchPct != 100 {
		t.Fatalf("job tag contained in user skill should match, got %d%%", got.Breakdown.CorePM.MatchPct)
	}
}

func TestScoreResume_DomainTierSeesJobDomains(t *testing.T) {
	nj := job.NormalizedJob{Domains: []string{"fintech"}}
	p := profile.Profile{
		SkillsDomain: []string{"fintech"},
		SkillsCorePM: []string{"fintech"},
	}

	got := ScoreResume(nj, p, DefaultConfig())
	if got.Breakdown.Domain.MatchPct != 100 {
		t.Fatalf("domain tier should match against job domains, got %d%%", got.Breakdown.Domain.MatchPct)
	}
	if got.Breakdown.CorePM.MatchPct != 0 {
		t.Fatalf("core PM tier should not see job domains, got %d%%", got.Breakdown.CorePM.MatchPct)
	}
}

func TestScoreResume_BreakdownSumsToTotal(t *testing.T) {
	got := ScoreResume(pmJob(), pmProfile(), DefaultConfig())
	sum := got.Breakdown.Domain.Points + got.Breakdown.CorePM.Points +
		got.Breakdown.Tools.Points + got.Breakdown.Tech.Points
	if sum > 100 {
		sum = 100
	}
	if got.Total != sum {
		t.Fatalf("tier points sum %d != total %d", sum, got.Total)
	}
}

func TestScoreResume_TotalCappedAt100(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DomainSkillsWeight = 1.0
	cfg.CorePMSkillsWeight = 1.0

	got := ScoreResume(pmJob(), pmProfile(), cfg)
	if got.Total != 100 {
		t.Fatalf("inflated weights should cap at 100, got %d", got.Total)
	}
}
