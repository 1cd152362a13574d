package scoring

// Rating is a display label derived from fixed score thresholds. It is
// cosmetic: it never feeds back into any numeric total.
type Rating string

const (
	RatingExcellent Rating = "EXCELLENT"
	RatingStrong    Rating = "STRONG"
	RatingGood      Rating = "GOOD"
	RatingFair      Rating = "FAIR"
	RatingWeak      Rating = "WEAK"
	RatingPoor      Rating = "POOR"
)

func RatingFor(score int) Rating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 80:
		return RatingStrong
	case score >= 70:
		return RatingGood
	case score >= 60:
		return RatingFair
	case score >= 50:
		return RatingWeak
	default:
		return RatingPoor
	}
}

// SalaryThresholdStatus discriminates the visa salary sub-check.
type SalaryThresholdStatus string

const (
	SalaryMeets   SalaryThresholdStatus = "meets"
	SalaryClose   SalaryThresholdStatus = "close"
	SalaryBelow   SalaryThresholdStatus = "below"
	SalaryUnknown SalaryThresholdStatus = "unknown"
)

// VisaBreakdown records every additive factor of the visa score plus the
// penalty, each as its own variant so the shape is the same on every
// branch.
type VisaBreakdown struct {
	Registry  RegistryFactor  `json:"registry"`
	Activity  ActivityFactor  `json:"recent_activity"`
	Community CommunityFactor `json:"community_signals"`
	Keywords  KeywordFactor   `json:"jd_keywords"`
	Salary    SalaryFactor    `json:"salary_threshold"`
	Penalty   PenaltyFactor   `json:"no_sponsorship_penalty"`
}

type RegistryFactor struct {
	Matched bool `json:"matched"`
	Points  int  `json:"points"`
}

type ActivityFactor struct {
	Count  int `json:"count"`
	Points int `json:"points"`
}

// CommunityFactor keeps the negative count for display even though only
// the positive count earns points; the explicit-no-sponsorship penalty
// is the sole negative-weight path.
type CommunityFactor struct {
	Present       bool `json:"present"`
	PositiveCount int  `json:"positive_count"`
	NegativeCount int  `json:"negative_count"`
	Points        int  `json:"points"`
}

type KeywordFactor struct {
	Found  bool `json:"found"`
	Points int  `json:"points"`
}

type SalaryFactor struct {
	Status SalaryThresholdStatus `json:"status"`
	Points int                   `json:"points"`
}

type PenaltyFactor struct {
	Applied bool `json:"applied"`
	Points  int  `json:"points"`
}

// Tier identifies one of the four resume skill buckets.
type Tier string

const (
	TierDomain Tier = "domain"
	TierCorePM Tier = "core_pm"
	TierTools  Tier = "tools"
	TierTech   Tier = "tech"
)

type TierScore struct {
	Tier          Tier     `json:"tier"`
	MatchPct      int      `json:"match_pct"`
	Points        int      `json:"points"`
	MaxPoints     int      `json:"max_points"`
	MatchedSkills []string `json:"matched_skills"`
}

type ResumeBreakdown struct {
	Domain TierScore `json:"domain"`
	CorePM TierScore `json:"core_pm"`
	Tools  TierScore `json:"tools"`
	Tech   TierScore `json:"tech"`
}

// LocationMatchType discriminates the relevance location factor; checks
// run in priority order and the first match wins.
type LocationMatchType string

const (
	LocationPreferredCity LocationMatchType = "preferred_city"
	LocationTargetCountry LocationMatchType = "target_country"
	LocationRemote        LocationMatchType = "remote"
	LocationNone          LocationMatchType = "none"
)

type SalaryFitStatus string

const (
	SalaryFitInRange    SalaryFitStatus = "in_range"
	SalaryFitNearBottom SalaryFitStatus = "near_bottom"
	SalaryFitBelow      SalaryFitStatus = "below"
	SalaryFitUnknown    SalaryFitStatus = "unknown"
)

type RoleMatchType string

const (
	RolePreferred  RoleMatchType = "preferred"
	RoleAcceptable RoleMatchType = "acceptable"
	RoleGeneric    RoleMatchType = "generic_keyword"
	RoleNone       RoleMatchType = "none"
)

type ExperienceFitStatus string

const (
	ExperienceInRange     ExperienceFitStatus = "in_range"
	ExperienceSlightOver  ExperienceFitStatus = "slightly_over"
	ExperienceSlightUnder ExperienceFitStatus = "slightly_under"
	ExperienceMismatch    ExperienceFitStatus = "mismatch"
)

type IndustryMatchType string

const (
	IndustryDirect   IndustryMatchType = "direct"
	IndustryCommon   IndustryMatchType = "common_keyword"
	IndustryBaseline IndustryMatchType = "baseline"
)

type LocationFactor struct {
	MatchType LocationMatchType `json:"match_type"`
	Matched   string            `json:"matched,omitempty"`
	Points    int               `json:"points"`
}

type SalaryFitFactor struct {
	Status SalaryFitStatus `json:"status"`
	Points int             `json:"points"`
}

type RoleFactor struct {
	MatchType RoleMatchType `json:"match_type"`
	Matched   string        `json:"matched,omitempty"`
	Points    int           `json:"points"`
}

type ExperienceFactor struct {
	Status ExperienceFitStatus `json:"status"`
	Points int                 `json:"points"`
}

type IndustryFactor struct {
	MatchType IndustryMatchType `json:"match_type"`
	Matched   string            `json:"matched,omitempty"`
	Points    int               `json:"points"`
}

type RelevanceBreakdown struct {
	Location   LocationFactor   `json:"location"`
	Salary     SalaryFitFactor  `json:"salary"`
	Role       RoleFactor       `json:"role"`
	Experience ExperienceFactor `json:"experience"`
	Industry   IndustryFactor   `json:"industry"`
}

type VisaScore struct {
	Total     int           `json:"total"`
	Rating    Rating        `json:"rating"`
	Breakdown VisaBreakdown `json:"breakdown"`
}

type ResumeScore struct {
	Total     int             `json:"total"`
	Rating    Rating          `json:"rating"`
	Breakdown ResumeBreakdown `json:"breakdown"`
}

type RelevanceScore struct {
	Total     int                `json:"total"`
	Rating    Rating             `json:"rating"`
	Breakdown RelevanceBreakdown `json:"breakdown"`
}

type Recommendation struct {
	Action     string `json:"action"`
	Priority   string `json:"priority"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason"`
}

type WeightsUsed struct {
	Visa      float64 `json:"visa"`
	Resume    float64 `json:"resume"`
	Relevance float64 `json:"relevance"`
}

type Breakdown struct {
	Visa      VisaScore      `json:"visa"`
	Resume    ResumeScore    `json:"resume"`
	Relevance RelevanceScore `json:"relevance"`
	Weights   WeightsUsed    `json:"weights"`
}

// MultiScoreResult is the engine's full answer for one (job, profile,
// signal) triple: the weighted overall score, the three component
// totals, the recommendation, and enough nested detail to explain every
// number without recomputation.
type MultiScoreResult struct {
	OverallScore      int            `json:"overall_score"`
	VisaScore         int            `json:"visa_score"`
	ResumeMatchScore  int            `json:"resume_match_score"`
	JobRelevanceScore int            `json:"job_relevance_score"`
	Recommendation    Recommendation `json:"recommendation"`
	Breakdown         Breakdown      `json:"breakdown"`
}
