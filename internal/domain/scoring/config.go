package scoring

// Config holds every tunable weight the engine reads. Values live in
// [0,1]. The three aggregate weights should sum to 1.0; the engine does
// not renormalize, so an off-sum config surfaces as an out-of-range
// overall score in the caller's tests rather than a runtime error.
type Config struct {
	VisaWeight      float64
	ResumeWeight    float64
	RelevanceWeight float64

	// Tier weights are calibration knobs around a maxPoints/100 baseline:
	// tier points = round(maxPoints * weight * 2 * pct/100), so a weight
	// exactly equal to maxPoints/100 yields full tier credit at a 100%
	// match. Doubling a weight doubles the tier's contribution (pre-cap),
	// it does not re-split the 100-point budget.
	DomainSkillsWeight float64
	CorePMSkillsWeight float64
	ToolsSkillsWeight  float64
	TechSkillsWeight   float64
}

func DefaultConfig() Config {
	return Config{
		VisaWeight:      0.40,
		ResumeWeight:    0.35,
		RelevanceWeight: 0.25,

		DomainSkillsWeight: 0.50,
		CorePMSkillsWeight: 0.30,
		ToolsSkillsWeight:  0.15,
		TechSkillsWeight:   0.05,
	}
}
