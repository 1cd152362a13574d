package scoring

import (
	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/profile"
)

const (
	domainTierMax = 50
	corePMTierMax = 30
	toolsTierMax  = 15
	techTierMax   = 5
)

// ScoreResume measures skill overlap across the four profile tiers.
// The domain tier matches against the job's skills and domain tags
// combined; the other tiers match skills only.
func ScoreResume(nj job.NormalizedJob, p profile.Profile, cfg Config) ResumeScore {
	domainTags := make([]string, 0, len(nj.Skills)+len(nj.Domains))
	domainTags = append(domainTags, nj.Skills...)
	domainTags = append(domainTags, nj.Domains...)

	bd := ResumeBreakdown{
		Domain: scoreTier(TierDomain, p.SkillsDomain, domainTags, domainTierMax, cfg.DomainSkillsWeight),
		CorePM: scoreTier(TierCorePM, p.SkillsCorePM, nj.Skills, corePMTierMax, cfg.CorePMSkillsWeight),
		Tools:  scoreTier(TierTools, p.SkillsTools, nj.Skills, toolsTierMax, cfg.ToolsSkillsWeight),
		Tech:   scoreTier(TierTech, p.SkillsTech, nj.Skills, techTierMax, cfg.TechSkillsWeight),
	}

	total := clampScore(bd.Domain.Points + bd.CorePM.Points + bd.Tools.Points + bd.Tech.Points)
	return ResumeScore{Total: total, Rating: RatingFor(total), Breakdown: bd}
}

func scoreTier(tier Tier, userSkills, jobTags []string, maxPoints int, weight float64) TierScore {
	pct, matched := matchAgainst(userSkills, jobTags)

	// weight == maxPoints/100 gives full tier credit at pct 100; the *2
	// keeps that baseline while letting the weight tune around it.
	points := roundToInt(float64(maxPoints) * weight * 2 * float64(pct) / 100)

	return TierScore{
		Tier:          tier,
		MatchPct:      pct,
		Points:        points,
		MaxPoints:     maxPoints,
		MatchedSkills: matched,
	}
}
