package usecase

import (
	"context"
	"errors"
	"testing"

	"sponsor-scout/internal/repository"
)

type fakeCommunityRepo struct {
	reports []struct {
		company  string
		country  string
		positive bool
	}
	err error
}

func (r *fakeCommunityRepo) Counts(ctx context.Context, companyName, countryCode string) (repository.CommunityCounts, bool, error) {
	return repository.CommunityCounts{}, false, nil
}

func (r *fakeCommunityRepo) Report(ctx context.Context, companyName, countryCode string, positive bool) error {
	if r.err != nil {
		return r.err
	}
	r.reports = append(r.reports, struct {
		company  string
		country  string
		positive bool
	}{companyName, countryCode, positive})
	return nil
}

type recordingInvalidator struct {
	companies []string
	countries []string
}

func (i *recordingInvalidator) Invalidate(ctx context.Context, companyName, countryCode string) error {
	i.companies = append(i.companies, companyName)
	i.countries = append(i.countries, countryCode)
	return nil
}

func TestCommunitySignalService_ReportAndInvalidate(t *testing.T) {
	repo := &fakeCommunityRepo{}
	inv := &recordingInvalidator{}
	svc := NewCommunitySignalUsecase(repo, inv, nil)

	err := svc.Report(context.Background(), CommunitySignalInput{
		CompanyName: "  Monzo ",
		CountryCode: "gb",
		Positive:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.reports) != 1 {
		t.Fatalf("reports = %d", len(repo.reports))
	}
	if repo.reports[0].company != "Monzo" || repo.reports[0].country != "GB" || !repo.reports[0].positive {
		t.Fatalf("report = %+v", repo.reports[0])
	}
	if len(inv.companies) != 1 || inv.companies[0] != "Monzo" || inv.countries[0] != "GB" {
		t.Fatalf("invalidations = %v %v", inv.companies, inv.countries)
	}
}

func TestCommunitySignalService_RejectsInvalidInput(t *testing.T) {
	svc := NewCommunitySignalUsecase(&fakeCommunityRepo{}, nil, nil)

	cases := []CommunitySignalInput{
		{CompanyName: "", CountryCode: "GB"},
		{CompanyName: "Monzo", CountryCode: ""},
		{CompanyName: "Monzo", CountryCode: "GBR"},
	}
	for _, in := range cases {
		if err := svc.Report(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestCommunitySignalService_RepoFailure(t *testing.T) {
	repo := &fakeCommunityRepo{err: errors.New("db down")}
	inv := &recordingInvalidator{}
	svc := NewCommunitySignalUsecase(repo, inv, nil)

	err := svc.Report(context.Background(), CommunitySignalInput{CompanyName: "Monzo", CountryCode: "GB"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(inv.companies) != 0 {
		t.Fatal("cache must not be invalidated when the write fails")
	}
}
