package usecase

import (
	"context"
	"log"
	"strings"

	"sponsor-scout/internal/repository"
)

// IntelInvalidator drops a memoized employer signal. The cached visa
// intelligence provider satisfies it.
type IntelInvalidator interface {
	Invalidate(ctx context.Context, companyName, countryCode string) error
}

type CommunitySignalInput struct {
	CompanyName string
	CountryCode string
	Positive    bool
}

type CommunitySignalUsecase interface {
	Report(ctx context.Context, in CommunitySignalInput) error
}

type CommunitySignalService struct {
	signals     repository.CommunitySignalRepository
	invalidator IntelInvalidator
	logger      *log.Logger
}

func NewCommunitySignalUsecase(signals repository.CommunitySignalRepository, invalidator IntelInvalidator, logger *log.Logger) *CommunitySignalService {
	return &CommunitySignalService{signals: signals, invalidator: invalidator, logger: logger}
}

// Report records one crowd-sourced sponsorship report and drops the
// cached employer signal so the next score sees it.
func (s *CommunitySignalService) Report(ctx context.Context, in CommunitySignalInput) error {
	company := strings.TrimSpace(in.CompanyName)
	country := strings.ToUpper(strings.TrimSpace(in.CountryCode))
	if company == "" || len(country) != 2 {
		return ErrInvalidInput
	}

	if err := s.signals.Report(ctx, company, country, in.Positive); err != nil {
		return ErrInternal
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, company, country); err != nil && s.logger != nil {
			s.logger.Printf("[CommunitySignal] intel cache invalidation failed | company=%s country=%s err=%v", company, country, err)
		}
	}
	return nil
}
