package dto

import (
	"time"

	"github.com/google/uuid"

	"sponsor-scout/internal/domain/profile"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u profile.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type RoleFlexibilityPayload struct {
	Preferred  []string `json:"preferred"`
	Acceptable []string `json:"acceptable"`
}

type SalaryExpectationPayload struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type ProfileResponse struct {
	ID                 uuid.UUID                `json:"id"`
	SkillsDomain       []string                 `json:"skills_domain"`
	SkillsCorePM       []string                 `json:"skills_core_pm"`
	SkillsTools        []string                 `json:"skills_tools"`
	SkillsTech         []string                 `json:"skills_tech"`
	RoleFlexibility    RoleFlexibilityPayload   `json:"role_flexibility"`
	PreferredLocations []string                 `json:"preferred_locations"`
	TargetCountries    []string                 `json:"target_countries"`
	SalaryExpectation  SalaryExpectationPayload `json:"salary_expectation"`
	YearsOfExperience  int                      `json:"years_of_experience"`
	Industries         []string                 `json:"industries"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID,
		SkillsDomain: emptyIfNil(p.SkillsDomain),
		SkillsCorePM: emptyIfNil(p.SkillsCorePM),
		SkillsTools:  emptyIfNil(p.SkillsTools),
		SkillsTech:   emptyIfNil(p.SkillsTech),
		RoleFlexibility: RoleFlexibilityPayload{
			Preferred:  emptyIfNil(p.RoleFlexibility.Preferred),
			Acceptable: emptyIfNil(p.RoleFlexibility.Acceptable),
		},
		PreferredLocations: emptyIfNil(p.PreferredLocations),
		TargetCountries:    emptyIfNil(p.TargetCountries),
		SalaryExpectation:  SalaryExpectationPayload{Min: p.SalaryExpectation.Min, Max: p.SalaryExpectation.Max},
		YearsOfExperience:  p.YearsOfExperience,
		Industries:         emptyIfNil(p.Industries),
		UpdatedAt:          p.UpdatedAt,
	}
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
