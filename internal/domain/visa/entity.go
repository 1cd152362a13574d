package visa

// CommunitySignals aggregates crowd-sourced sponsorship reports for an
// employer. Counts are non-negative.
type CommunitySignals struct {
	PositiveCount int
	NegativeCount int
}

// Signal is the sponsorship intelligence gathered for one posting. It is
// the only input the visa scorer reads.
type Signal struct {
	RegistryMatch         bool
	RecentActivityCount   int
	Community             *CommunitySignals
	JDKeywordsFound       bool
	ExplicitNoSponsorship bool
}
