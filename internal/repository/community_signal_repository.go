package repository

import (
	"context"
	"strings"

	"sponsor-scout/internal/database"

	"github.com/google/uuid"
)

// CommunityCounts aggregates crowd-sourced sponsorship reports for one
// employer in one country.
type CommunityCounts struct {
	PositiveCount int
	NegativeCount int
}

type CommunitySignalRepository interface {
	Counts(ctx context.Context, companyName, countryCode string) (CommunityCounts, bool, error)
	Report(ctx context.Context, companyName, countryCode string, positive bool) error
}

type PostgresCommunitySignalRepository struct {
	db database.DB
}

func NewPostgresCommunitySignalRepository(db database.DB) *PostgresCommunitySignalRepository {
	return &PostgresCommunitySignalRepository{db: db}
}

func (r *PostgresCommunitySignalRepository) Counts(ctx context.Context, companyName, countryCode string) (CommunityCounts, bool, error) {
	companyName = strings.TrimSpace(companyName)
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if companyName == "" || countryCode == "" {
		return CommunityCounts{}, false, nil
	}

	row := r.db.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE positive),
			COUNT(*) FILTER (WHERE NOT positive)
		FROM community_signals
		WHERE lower(company_name) = lower($1) AND country_code = $2`,
		companyName, countryCode,
	)

	var c CommunityCounts
	if err := row.Scan(&c.PositiveCount, &c.NegativeCount); err != nil {
		return CommunityCounts{}, false, err
	}
	if c.PositiveCount == 0 && c.NegativeCount == 0 {
		return CommunityCounts{}, false, nil
	}
	return c, true, nil
}

func (r *PostgresCommunitySignalRepository) Report(ctx context.Context, companyName, countryCode string, positive bool) error {
	companyName = strings.TrimSpace(companyName)
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))

	_, err := r.db.Exec(ctx,
		`INSERT INTO community_signals (id, company_name, country_code, positive)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), companyName, countryCode, positive,
	)
	return err
}
