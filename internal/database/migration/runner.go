package migration

import (
	"context"
	"fmt"

	"sponsor-scout/internal/database"
)

const advisoryLockKey = 824553091

var statements = []string{
	`CREATE TABLE IF NOT EXISTS job_sources (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		base_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS postings (
		id UUID PRIMARY KEY,
		source_id UUID REFERENCES job_sources(id),
		external_job_id TEXT,
		url TEXT,
		title TEXT,
		company TEXT,
		location TEXT,
		country_code TEXT,
		skills TEXT[],
		domains TEXT[],
		is_remote BOOLEAN NOT NULL DEFAULT false,
		salary_min DOUBLE PRECISION,
		salary_max DOUBLE PRECISION,
		salary_currency TEXT,
		experience_min INT,
		experience_max INT,
		raw_description TEXT,
		posted_at TIMESTAMPTZ,
		ingested_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (source_id, url)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		user_id UUID REFERENCES users(id) UNIQUE,
		skills_domain TEXT[],
		skills_core_pm TEXT[],
		skills_tools TEXT[],
		skills_tech TEXT[],
		preferred_roles TEXT[],
		acceptable_roles TEXT[],
		preferred_locations TEXT[],
		target_countries TEXT[],
		salary_expectation_min DOUBLE PRECISION,
		salary_expectation_max DOUBLE PRECISION,
		years_of_experience INT NOT NULL DEFAULT 0,
		industries TEXT[],
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sponsor_registry (
		id UUID PRIMARY KEY,
		company_name TEXT NOT NULL,
		country_code TEXT NOT NULL,
		recent_grant_count INT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (company_name, country_code)
	)`,
	`CREATE TABLE IF NOT EXISTS community_signals (
		id UUID PRIMARY KEY,
		company_name TEXT NOT NULL,
		country_code TEXT NOT NULL,
		positive BOOLEAN NOT NULL,
		reported_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_community_signals_company
		ON community_signals (lower(company_name), country_code)`,
	`CREATE TABLE IF NOT EXISTS scores (
		id UUID PRIMARY KEY,
		posting_id UUID NOT NULL REFERENCES postings(id),
		user_id UUID NOT NULL REFERENCES users(id),
		overall_score INT NOT NULL,
		visa_score INT NOT NULL,
		resume_match_score INT NOT NULL,
		job_relevance_score INT NOT NULL,
		recommendation TEXT NOT NULL,
		breakdown JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (posting_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS ingest_runs (
		id UUID PRIMARY KEY,
		source_id UUID REFERENCES job_sources(id),
		started_at TIMESTAMPTZ,
		finished_at TIMESTAMPTZ,
		status TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS ingest_logs (
		id UUID PRIMARY KEY,
		ingest_run_id UUID NOT NULL REFERENCES ingest_runs(id),
		level TEXT,
		message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Run applies the schema idempotently. Everything happens inside one
// transaction: the transaction pins a single pooled connection, so the
// advisory lock and the statements share a session and the lock is
// released at commit. A transaction-scoped lock serializes concurrent
// instances booting against the same database.
func Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, advisoryLockKey); err != nil {
		return err
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", i, err)
		}
	}
	return tx.Commit(ctx)
}
