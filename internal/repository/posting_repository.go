package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"sponsor-scout/internal/database"
	"sponsor-scout/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrPostingNotFound = errors.New("posting not found")

type PostingUpsert struct {
	SourceID       uuid.UUID
	ExternalJobID  string
	URL            string
	RawDescription string
	Normalized     job.NormalizedJob
	PostedAt       *time.Time
}

type PostingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	List(ctx context.Context, limit, offset int) ([]job.Posting, error)
	Upsert(ctx context.Context, in PostingUpsert) (uuid.UUID, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

const postingColumns = `id, source_id, external_job_id, url, title, company, location, country_code,
	COALESCE(skills, '{}'), COALESCE(domains, '{}'), is_remote,
	salary_min, salary_max, COALESCE(salary_currency, ''),
	experience_min, experience_max, raw_description, posted_at, ingested_at, created_at`

func (r *PostgresPostingRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postingColumns+` FROM postings WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrPostingNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresPostingRepository) List(ctx context.Context, limit, offset int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+` FROM postings ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostingRepository) Upsert(ctx context.Context, in PostingUpsert) (uuid.UUID, error) {
	nj := in.Normalized

	var salaryMin, salaryMax *float64
	currency := ""
	if nj.Salary != nil {
		salaryMin = nj.Salary.Min
		salaryMax = nj.Salary.Max
		currency = nj.Salary.Currency
	}

	now := time.Now().UTC()
	var id uuid.UUID
	row := r.db.QueryRow(ctx,
		`INSERT INTO postings (
			id, source_id, external_job_id, url, title, company, location, country_code,
			skills, domains, is_remote, salary_min, salary_max, salary_currency,
			experience_min, experience_max, raw_description, posted_at, ingested_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		ON CONFLICT (source_id, url) DO UPDATE SET
			external_job_id = COALESCE(EXCLUDED.external_job_id, postings.external_job_id),
			title = COALESCE(EXCLUDED.title, postings.title),
			company = COALESCE(EXCLUDED.company, postings.company),
			location = COALESCE(EXCLUDED.location, postings.location),
			country_code = COALESCE(EXCLUDED.country_code, postings.country_code),
			skills = EXCLUDED.skills,
			domains = EXCLUDED.domains,
			is_remote = EXCLUDED.is_remote,
			salary_min = COALESCE(EXCLUDED.salary_min, postings.salary_min),
			salary_max = COALESCE(EXCLUDED.salary_max, postings.salary_max),
			salary_currency = COALESCE(EXCLUDED.salary_currency, postings.salary_currency),
			experience_min = COALESCE(EXCLUDED.experience_min, postings.experience_min),
			experience_max = COALESCE(EXCLUDED.experience_max, postings.experience_max),
			raw_description = COALESCE(EXCLUDED.raw_description, postings.raw_description),
			posted_at = COALESCE(EXCLUDED.posted_at, postings.posted_at),
			ingested_at = EXCLUDED.ingested_at
		RETURNING id`,
		uuid.New(),
		nullableUUID(in.SourceID),
		nullableText(in.ExternalJobID),
		nullableText(in.URL),
		nj.Title,
		nj.Company,
		nj.Location,
		nj.CountryCode,
		nj.Skills,
		nj.Domains,
		nj.IsRemote,
		salaryMin,
		salaryMax,
		nullableText(currency),
		nj.ExperienceMin,
		nj.ExperienceMax,
		nullableText(in.RawDescription),
		in.PostedAt,
		now,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var (
		p         job.Posting
		skills    []string
		domains   []string
		salaryMin *float64
		salaryMax *float64
		currency  string
	)

	err := row.Scan(
		&p.ID, &p.SourceID, &p.ExternalJobID, &p.URL,
		&p.Normalized.Title, &p.Normalized.Company, &p.Normalized.Location, &p.Normalized.CountryCode,
		&skills, &domains, &p.Normalized.IsRemote,
		&salaryMin, &salaryMax, &currency,
		&p.Normalized.ExperienceMin, &p.Normalized.ExperienceMax,
		&p.RawDescription, &p.PostedAt, &p.IngestedAt, &p.CreatedAt,
	)
	if err != nil {
		return job.Posting{}, err
	}

	p.Normalized.Skills = skills
	p.Normalized.Domains = domains
	if salaryMin != nil || salaryMax != nil {
		p.Normalized.Salary = &job.SalaryRange{Min: salaryMin, Max: salaryMax, Currency: currency}
	}
	return p, nil
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

func nullableUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
