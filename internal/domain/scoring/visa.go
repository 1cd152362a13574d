package scoring

import (
	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/visa"
)

const (
	registryPoints       = 40
	activityPerGrant     = 5
	activityCapPoints    = 20
	communityPerPositive = 2
	communityCapPoints   = 20
	keywordPoints        = 10
	salaryMeetsPoints    = 10
	salaryClosePoints    = 5
	noSponsorshipPenalty = 30
)

// ScoreVisa turns sponsorship intelligence into a 0-100 likelihood
// score. Factors are additive and independent; the explicit
// no-sponsorship penalty is applied once after all of them, floored at
// zero. The cap at 100 is redundant while the factor maxima sum to 100
// but is enforced so weight retuning cannot leak an out-of-range score.
func ScoreVisa(nj job.NormalizedJob, sig visa.Signal) VisaScore {
	bd := VisaBreakdown{}

	if sig.RegistryMatch {
		bd.Registry = RegistryFactor{Matched: true, Points: registryPoints}
	}

	activity := sig.RecentActivityCount * activityPerGrant
	if activity > activityCapPoints {
		activity = activityCapPoints
	}
	if activity < 0 {
		activity = 0
	}
	bd.Activity = ActivityFactor{Count: sig.RecentActivityCount, Points: activity}

	if sig.Community != nil {
		pts := sig.Community.PositiveCount * communityPerPositive
		if pts > communityCapPoints {
			pts = communityCapPoints
		}
		if pts < 0 {
			pts = 0
		}
		bd.Community = CommunityFactor{
			Present:       true,
			PositiveCount: sig.Community.PositiveCount,
			NegativeCount: sig.Community.NegativeCount,
			Points:        pts,
		}
	}

	if sig.JDKeywordsFound {
		bd.Keywords = KeywordFactor{Found: true, Points: keywordPoints}
	}

	bd.Salary = salaryThresholdFactor(nj)

	total := bd.Registry.Points + bd.Activity.Points + bd.Community.Points +
		bd.Keywords.Points + bd.Salary.Points

	if sig.ExplicitNoSponsorship {
		bd.Penalty = PenaltyFactor{Applied: true, Points: -noSponsorshipPenalty}
		total -= noSponsorshipPenalty
	}

	total = clampScore(total)
	return VisaScore{Total: total, Rating: RatingFor(total), Breakdown: bd}
}

// salaryThresholdFactor checks the advertised salary against the
// per-country sponsorship minimum. A missing country or salary is
// "unknown": zero points, never a penalty.
func salaryThresholdFactor(nj job.NormalizedJob) SalaryFactor {
	if nj.CountryCode == nil || nj.Salary == nil {
		return SalaryFactor{Status: SalaryUnknown}
	}
	threshold, ok := SponsorSalaryThreshold(*nj.CountryCode)
	if !ok {
		return SalaryFactor{Status: SalaryUnknown}
	}

	// The attainable salary is the top of the band when stated.
	var amount *float64
	if nj.Salary.Max != nil {
		amount = nj.Salary.Max
	} else if nj.Salary.Min != nil {
		amount = nj.Salary.Min
	}
	if amount == nil {
		return SalaryFactor{Status: SalaryUnknown}
	}

	normalized := ToReferenceCurrency(*amount, nj.Salary.Currency)
	switch {
	case normalized >= threshold:
		return SalaryFactor{Status: SalaryMeets, Points: salaryMeetsPoints}
	case normalized >= threshold*0.9:
		return SalaryFactor{Status: SalaryClose, Points: salaryClosePoints}
	default:
		return SalaryFactor{Status: SalaryBelow}
	}
}
