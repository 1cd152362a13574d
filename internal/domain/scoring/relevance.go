package scoring

import (
	"strings"

	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/profile"
)

// ScoreRelevance rates how well the posting fits the profile across five
// independent factors with hardcoded point bands: location 25, salary
// 25, role 25, experience 15, industry 10.
func ScoreRelevance(nj job.NormalizedJob, p profile.Profile) RelevanceScore {
	bd := RelevanceBreakdown{
		Location:   locationFactor(nj, p),
		Salary:     salaryFitFactor(nj, p),
		Role:       roleFactor(nj, p),
		Experience: experienceFactor(nj, p),
		Industry:   industryFactor(nj, p),
	}

	total := clampScore(bd.Location.Points + bd.Salary.Points + bd.Role.Points +
		bd.Experience.Points + bd.Industry.Points)
	return RelevanceScore{Total: total, Rating: RatingFor(total), Breakdown: bd}
}

// locationFactor checks in priority order: preferred city, target
// country, remote. First match wins.
func locationFactor(nj job.NormalizedJob, p profile.Profile) LocationFactor {
	if nj.Location != nil {
		for _, loc := range p.PreferredLocations {
			if looseMatch(*nj.Location, loc) {
				return LocationFactor{MatchType: LocationPreferredCity, Matched: loc, Points: 25}
			}
		}
	}
	if nj.CountryCode != nil {
		for _, cc := range p.TargetCountries {
			if strings.EqualFold(strings.TrimSpace(cc), strings.TrimSpace(*nj.CountryCode)) {
				return LocationFactor{MatchType: LocationTargetCountry, Matched: strings.ToUpper(cc), Points: 20}
			}
		}
	}
	if nj.IsRemote {
		return LocationFactor{MatchType: LocationRemote, Points: 15}
	}
	return LocationFactor{MatchType: LocationNone}
}

// salaryFitFactor compares the posting's band against the profile's
// expectation in the reference currency. Missing data on either side is
// neutral (12), not zero: absence of a number should not sink a job.
func salaryFitFactor(nj job.NormalizedJob, p profile.Profile) SalaryFitFactor {
	if nj.Salary == nil || nj.Salary.Min == nil || p.SalaryExpectation.Min == nil {
		return SalaryFitFactor{Status: SalaryFitUnknown, Points: 12}
	}

	jobTop := *nj.Salary.Min
	if nj.Salary.Max != nil {
		jobTop = *nj.Salary.Max
	}
	jobTop = ToReferenceCurrency(jobTop, nj.Salary.Currency)

	wantMin := *p.SalaryExpectation.Min
	switch {
	case jobTop >= wantMin:
		return SalaryFitFactor{Status: SalaryFitInRange, Points: 25}
	case jobTop >= wantMin*0.9:
		return SalaryFitFactor{Status: SalaryFitNearBottom, Points: 15}
	default:
		return SalaryFitFactor{Status: SalaryFitBelow}
	}
}

func roleFactor(nj job.NormalizedJob, p profile.Profile) RoleFactor {
	if nj.Title == nil {
		return RoleFactor{MatchType: RoleNone}
	}
	title := *nj.Title

	for _, r := range p.RoleFlexibility.Preferred {
		if looseMatch(title, r) {
			return RoleFactor{MatchType: RolePreferred, Matched: r, Points: 25}
		}
	}
	for _, r := range p.RoleFlexibility.Acceptable {
		if looseMatch(title, r) {
			return RoleFactor{MatchType: RoleAcceptable, Matched: r, Points: 20}
		}
	}

	lower := strings.ToLower(title)
	for _, kw := range genericRoleKeywords {
		if strings.Contains(lower, kw) {
			return RoleFactor{MatchType: RoleGeneric, Matched: kw, Points: 10}
		}
	}
	return RoleFactor{MatchType: RoleNone}
}

func experienceFactor(nj job.NormalizedJob, p profile.Profile) ExperienceFactor {
	jobMin := 0
	if nj.ExperienceMin != nil {
		jobMin = *nj.ExperienceMin
	}
	jobMax := 99
	if nj.ExperienceMax != nil {
		jobMax = *nj.ExperienceMax
	}

	years := p.YearsOfExperience
	switch {
	case years >= jobMin && years <= jobMax:
		return ExperienceFactor{Status: ExperienceInRange, Points: 15}
	case years > jobMax && years <= jobMax+2:
		return ExperienceFactor{Status: ExperienceSlightOver, Points: 12}
	case years < jobMin && years >= jobMin-2:
		return ExperienceFactor{Status: ExperienceSlightUnder, Points: 10}
	default:
		return ExperienceFactor{Status: ExperienceMismatch}
	}
}

// industryFactor never scores zero: domain tagging is noisy enough that
// a mismatch only drops to a baseline 3.
func industryFactor(nj job.NormalizedJob, p profile.Profile) IndustryFactor {
	for _, ind := range p.Industries {
		if containsLoose(nj.Domains, ind) {
			return IndustryFactor{MatchType: IndustryDirect, Matched: ind, Points: 10}
		}
	}

	for _, common := range commonIndustries {
		if containsLoose(p.Industries, common) && containsLoose(nj.Domains, common) {
			return IndustryFactor{MatchType: IndustryCommon, Matched: common, Points: 7}
		}
	}

	return IndustryFactor{MatchType: IndustryBaseline, Points: 3}
}
