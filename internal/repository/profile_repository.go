package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sponsor-scout/internal/database"
	"sponsor-scout/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailTaken      = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (profile.User, error)
	GetByEmail(ctx context.Context, email string) (profile.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (profile.User, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, email, passwordHash string) (profile.User, error) {
	u := profile.User{ID: uuid.New(), Email: email, PasswordHash: passwordHash}

	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		u.ID, u.Email, u.PasswordHash,
	)
	if err != nil {
		return profile.User{}, err
	}

	// Conflict means another row owns this email.
	got, err := r.GetByEmail(ctx, email)
	if err != nil {
		return profile.User{}, err
	}
	if got.ID != u.ID {
		return profile.User{}, ErrEmailTaken
	}
	return got, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (profile.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row database.Row) (profile.User, error) {
	var u profile.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.User{}, ErrUserNotFound
		}
		return profile.User{}, err
	}
	return u, nil
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id,
			COALESCE(skills_domain, '{}'), COALESCE(skills_core_pm, '{}'),
			COALESCE(skills_tools, '{}'), COALESCE(skills_tech, '{}'),
			COALESCE(preferred_roles, '{}'), COALESCE(acceptable_roles, '{}'),
			COALESCE(preferred_locations, '{}'), COALESCE(target_countries, '{}'),
			salary_expectation_min, salary_expectation_max,
			years_of_experience, COALESCE(industries, '{}'),
			created_at, updated_at
		FROM profiles WHERE user_id = $1`, userID)

	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.UserID,
		&p.SkillsDomain, &p.SkillsCorePM, &p.SkillsTools, &p.SkillsTech,
		&p.RoleFlexibility.Preferred, &p.RoleFlexibility.Acceptable,
		&p.PreferredLocations, &p.TargetCountries,
		&p.SalaryExpectation.Min, &p.SalaryExpectation.Max,
		&p.YearsOfExperience, &p.Industries,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (
			id, user_id, skills_domain, skills_core_pm, skills_tools, skills_tech,
			preferred_roles, acceptable_roles, preferred_locations, target_countries,
			salary_expectation_min, salary_expectation_max, years_of_experience, industries,
			updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (user_id) DO UPDATE SET
			skills_domain = EXCLUDED.skills_domain,
			skills_core_pm = EXCLUDED.skills_core_pm,
			skills_tools = EXCLUDED.skills_tools,
			skills_tech = EXCLUDED.skills_tech,
			preferred_roles = EXCLUDED.preferred_roles,
			acceptable_roles = EXCLUDED.acceptable_roles,
			preferred_locations = EXCLUDED.preferred_locations,
			target_countries = EXCLUDED.target_countries,
			salary_expectation_min = EXCLUDED.salary_expectation_min,
			salary_expectation_max = EXCLUDED.salary_expectation_max,
			years_of_experience = EXCLUDED.years_of_experience,
			industries = EXCLUDED.industries,
			updated_at = EXCLUDED.updated_at`,
		p.ID, p.UserID,
		p.SkillsDomain, p.SkillsCorePM, p.SkillsTools, p.SkillsTech,
		p.RoleFlexibility.Preferred, p.RoleFlexibility.Acceptable,
		p.PreferredLocations, p.TargetCountries,
		p.SalaryExpectation.Min, p.SalaryExpectation.Max,
		p.YearsOfExperience, p.Industries,
		now,
	)
	if err != nil {
		return profile.Profile{}, err
	}

	if p.UserID == nil {
		return p, nil
	}
	return r.GetByUserID(ctx, *p.UserID)
}
