package scoring

import (
	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/profile"
	"sponsor-scout/internal/domain/visa"
)

// Aggregate runs the three component scorers and combines them into one
// overall score with a recommendation. It is pure: same inputs always
// produce the same result, so callers may memoize or fan out batches
// without coordination.
func Aggregate(nj job.NormalizedJob, p profile.Profile, sig visa.Signal, cfg Config) MultiScoreResult {
	visaScore := ScoreVisa(nj, sig)
	resumeScore := ScoreResume(nj, p, cfg)
	relevanceScore := ScoreRelevance(nj, p)

	overall := clampScore(roundToInt(
		float64(visaScore.Total)*cfg.VisaWeight +
			float64(resumeScore.Total)*cfg.ResumeWeight +
			float64(relevanceScore.Total)*cfg.RelevanceWeight,
	))

	return MultiScoreResult{
		OverallScore:      overall,
		VisaScore:         visaScore.Total,
		ResumeMatchScore:  resumeScore.Total,
		JobRelevanceScore: relevanceScore.Total,
		Recommendation:    RecommendationFor(overall, visaScore.Total),
		Breakdown: Breakdown{
			Visa:      visaScore,
			Resume:    resumeScore,
			Relevance: relevanceScore,
			Weights: WeightsUsed{
				Visa:      cfg.VisaWeight,
				Resume:    cfg.ResumeWeight,
				Relevance: cfg.RelevanceWeight,
			},
		},
	}
}

// RecommendationFor walks the fixed decision table in order; the first row whose
// thresholds hold wins. Both bounds are inclusive.
func RecommendationFor(overall, visaTotal int) Recommendation {
	switch {
	case overall >= 85 && visaTotal >= 80:
		return Recommendation{
			Action:     "APPLY NOW",
			Priority:   "HIGH",
			Confidence: "Very High",
			Reason:     "Excellent overall fit and a strong sponsorship track record",
		}
	case overall >= 75 && visaTotal >= 60:
		return Recommendation{
			Action:     "STRONGLY CONSIDER",
			Priority:   "HIGH",
			Confidence: "High",
			Reason:     "Strong fit with good sponsorship likelihood",
		}
	case overall >= 65:
		return Recommendation{
			Action:     "CONSIDER",
			Priority:   "MEDIUM",
			Confidence: "Moderate",
			Reason:     "Decent fit; verify sponsorship before investing time",
		}
	case overall >= 50:
		return Recommendation{
			Action:     "REVIEW CAREFULLY",
			Priority:   "LOW",
			Confidence: "Low",
			Reason:     "Partial fit; several factors scored poorly",
		}
	default:
		return Recommendation{
			Action:     "SKIP",
			Priority:   "VERY LOW",
			Confidence: "Very Low",
			Reason:     "Weak fit or unlikely sponsorship",
		}
	}
}
