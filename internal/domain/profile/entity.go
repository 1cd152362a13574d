package profile

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleFlexibility splits acceptable job titles into two bands: preferred
// titles score higher than merely acceptable ones.
type RoleFlexibility struct {
	Preferred  []string
	Acceptable []string
}

type SalaryExpectation struct {
	Min *float64
	Max *float64
}

// Profile is the candidate's search profile. Skill tiers are disjoint
// priority buckets, highest priority first: domain, core PM, tools, tech.
type Profile struct {
	ID     uuid.UUID
	UserID *uuid.UUID

	SkillsDomain []string
	SkillsCorePM []string
	SkillsTools  []string
	SkillsTech   []string

	RoleFlexibility    RoleFlexibility
	PreferredLocations []string
	TargetCountries    []string

	SalaryExpectation SalaryExpectation
	YearsOfExperience int
	Industries        []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
