package visaintel

import (
	"context"
	"strings"
	"time"

	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/visa"
	"sponsor-scout/internal/infrastructure/cache"
)

// CachedProvider memoizes signals per employer and country. The keyword
// scan is posting-specific, so only the employer-level parts (registry
// match, activity, community counts) are cached; description signals are
// recomputed on every call.
type CachedProvider struct {
	inner *CompositeProvider
	redis *cache.Redis
	ttl   time.Duration
}

type cachedEmployerSignal struct {
	RegistryMatch       bool                   `json:"registry_match"`
	RecentActivityCount int                    `json:"recent_activity_count"`
	Community           *visa.CommunitySignals `json:"community,omitempty"`
}

func NewCachedProvider(inner *CompositeProvider, redis *cache.Redis, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedProvider{inner: inner, redis: redis, ttl: ttl}
}

func (p *CachedProvider) Signal(ctx context.Context, posting job.Posting) (visa.Signal, error) {
	key := employerKey(posting.Normalized)
	if key == "" {
		return p.inner.Signal(ctx, posting)
	}

	var cached cachedEmployerSignal
	hit, err := p.redis.GetJSON(ctx, key, &cached)
	if err == nil && hit {
		sig := visa.Signal{
			RegistryMatch:       cached.RegistryMatch,
			RecentActivityCount: cached.RecentActivityCount,
			Community:           cached.Community,
		}
		if posting.RawDescription != nil {
			found, explicitNo := ScanDescription(*posting.RawDescription)
			sig.JDKeywordsFound = len(found) > 0
			sig.ExplicitNoSponsorship = explicitNo
		}
		return sig, nil
	}

	sig, err := p.inner.Signal(ctx, posting)
	if err != nil {
		return visa.Signal{}, err
	}

	_ = p.redis.SetJSON(ctx, key, cachedEmployerSignal{
		RegistryMatch:       sig.RegistryMatch,
		RecentActivityCount: sig.RecentActivityCount,
		Community:           sig.Community,
	}, p.ttl)

	return sig, nil
}

// Invalidate drops the memoized employer signal so the next lookup sees
// fresh registry and community data.
func (p *CachedProvider) Invalidate(ctx context.Context, companyName, countryCode string) error {
	nj := job.NormalizedJob{}
	if c := strings.TrimSpace(companyName); c != "" {
		nj.Company = &c
	}
	if cc := strings.TrimSpace(countryCode); cc != "" {
		nj.CountryCode = &cc
	}
	key := employerKey(nj)
	if key == "" {
		return nil
	}
	return p.redis.Delete(ctx, key)
}

func employerKey(nj job.NormalizedJob) string {
	if nj.Company == nil || strings.TrimSpace(*nj.Company) == "" {
		return ""
	}
	company := strings.ToLower(strings.TrimSpace(*nj.Company))
	country := ""
	if nj.CountryCode != nil {
		country = strings.ToLower(strings.TrimSpace(*nj.CountryCode))
	}
	return "visaintel:" + country + ":" + company
}
