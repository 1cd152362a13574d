package job

import (
	"time"

	"github.com/google/uuid"
)

// SalaryRange is the advertised compensation band. Min or Max may be
// absent when the posting only states one bound.
type SalaryRange struct {
	Min      *float64
	Max      *float64
	Currency string
}

// NormalizedJob is the structured view of a posting the scoring engine
// consumes. Fields are nil when extraction could not determine them.
type NormalizedJob struct {
	Title         *string
	Company       *string
	Location      *string
	CountryCode   *string
	Skills        []string
	Domains       []string
	IsRemote      bool
	Salary        *SalaryRange
	ExperienceMin *int
	ExperienceMax *int
}

// Posting is the persisted record: the raw capture plus its normalized form.
type Posting struct {
	ID             uuid.UUID
	SourceID       *uuid.UUID
	ExternalJobID  *string
	URL            *string
	RawDescription *string
	Normalized     NormalizedJob
	PostedAt       *time.Time
	IngestedAt     *time.Time
	CreatedAt      time.Time
}

type Source struct {
	ID        uuid.UUID
	Name      *string
	BaseURL   *string
	CreatedAt time.Time
}

type IngestRun struct {
	ID         uuid.UUID
	SourceID   *uuid.UUID
	StartedAt  *time.Time
	FinishedAt *time.Time
	Status     *string
}

type IngestLog struct {
	ID          uuid.UUID
	IngestRunID uuid.UUID
	Level       *string
	Message     *string
	CreatedAt   time.Time
}
