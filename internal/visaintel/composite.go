package visaintel

import (
	"context"
	"fmt"

	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/visa"
	"sponsor-scout/internal/repository"
)

// CompositeProvider assembles a Signal from the sponsor registry, the
// community report store and the posting's own description. Registry and
// community lookups need a company name; postings without one yield a
// description-only signal rather than an error.
type CompositeProvider struct {
	registry  repository.SponsorRegistryRepository
	community repository.CommunitySignalRepository
}

func NewCompositeProvider(registry repository.SponsorRegistryRepository, community repository.CommunitySignalRepository) *CompositeProvider {
	return &CompositeProvider{registry: registry, community: community}
}

func (p *CompositeProvider) Signal(ctx context.Context, posting job.Posting) (visa.Signal, error) {
	sig := visa.Signal{}

	if posting.RawDescription != nil {
		found, explicitNo := ScanDescription(*posting.RawDescription)
		sig.JDKeywordsFound = len(found) > 0
		sig.ExplicitNoSponsorship = explicitNo
	}

	company := ""
	if posting.Normalized.Company != nil {
		company = *posting.Normalized.Company
	}
	if company == "" {
		return sig, nil
	}

	country := ""
	if posting.Normalized.CountryCode != nil {
		country = *posting.Normalized.CountryCode
	}

	entry, found, err := p.registry.Lookup(ctx, company, country)
	if err != nil {
		return visa.Signal{}, fmt.Errorf("registry lookup for %q: %w", company, err)
	}
	if found {
		sig.RegistryMatch = true
		sig.RecentActivityCount = entry.RecentGrantCount
	}

	counts, reported, err := p.community.Counts(ctx, company, country)
	if err != nil {
		return visa.Signal{}, fmt.Errorf("community counts for %q: %w", company, err)
	}
	if reported {
		sig.Community = &visa.CommunitySignals{
			PositiveCount: counts.PositiveCount,
			NegativeCount: counts.NegativeCount,
		}
	}

	return sig, nil
}
