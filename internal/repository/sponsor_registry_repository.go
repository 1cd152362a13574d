package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"sponsor-scout/internal/database"

	"github.com/jackc/pgx/v5"
)

// RegistryEntry is one employer row from the government sponsor list.
type RegistryEntry struct {
	CompanyName      string
	CountryCode      string
	RecentGrantCount int
}

type SponsorRegistryRepository interface {
	// Lookup matches an employer name loosely (case-insensitive,
	// either name containing the other) within one country's registry.
	Lookup(ctx context.Context, companyName, countryCode string) (RegistryEntry, bool, error)
}

type PostgresSponsorRegistryRepository struct {
	db database.DB
}

func NewPostgresSponsorRegistryRepository(db database.DB) *PostgresSponsorRegistryRepository {
	return &PostgresSponsorRegistryRepository{db: db}
}

func (r *PostgresSponsorRegistryRepository) Lookup(ctx context.Context, companyName, countryCode string) (RegistryEntry, bool, error) {
	companyName = strings.TrimSpace(companyName)
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if companyName == "" || countryCode == "" {
		return RegistryEntry{}, false, nil
	}

	row := r.db.QueryRow(ctx,
		`SELECT company_name, country_code, recent_grant_count
		FROM sponsor_registry
		WHERE country_code = $2
		  AND (lower(company_name) LIKE '%' || lower($1) || '%'
		       OR lower($1) LIKE '%' || lower(company_name) || '%')
		ORDER BY recent_grant_count DESC
		LIMIT 1`,
		companyName, countryCode,
	)

	var e RegistryEntry
	if err := row.Scan(&e.CompanyName, &e.CountryCode, &e.RecentGrantCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return RegistryEntry{}, false, nil
		}
		return RegistryEntry{}, false, err
	}
	return e, true, nil
}
