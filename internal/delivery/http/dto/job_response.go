package dto

import (
	"time"

	"github.com/google/uuid"

	"sponsor-scout/internal/domain/job"
)

type SalaryResponse struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
}

type PostingResponse struct {
	ID            uuid.UUID       `json:"id"`
	URL           *string         `json:"url"`
	Title         *string         `json:"title"`
	Company       *string         `json:"company"`
	Location      *string         `json:"location"`
	CountryCode   *string         `json:"country_code"`
	Skills        []string        `json:"skills"`
	Domains       []string        `json:"domains"`
	IsRemote      bool            `json:"is_remote"`
	Salary        *SalaryResponse `json:"salary"`
	ExperienceMin *int            `json:"experience_min"`
	ExperienceMax *int            `json:"experience_max"`
	PostedAt      *time.Time      `json:"posted_at"`
	IngestedAt    *time.Time      `json:"ingested_at"`
}

func NewPostingResponse(p job.Posting) PostingResponse {
	resp := PostingResponse{
		ID:            p.ID,
		URL:           p.URL,
		Title:         p.Normalized.Title,
		Company:       p.Normalized.Company,
		Location:      p.Normalized.Location,
		CountryCode:   p.Normalized.CountryCode,
		Skills:        p.Normalized.Skills,
		Domains:       p.Normalized.Domains,
		IsRemote:      p.Normalized.IsRemote,
		ExperienceMin: p.Normalized.ExperienceMin,
		ExperienceMax: p.Normalized.ExperienceMax,
		PostedAt:      p.PostedAt,
		IngestedAt:    p.IngestedAt,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.Domains == nil {
		resp.Domains = []string{}
	}
	if s := p.Normalized.Salary; s != nil {
		resp.Salary = &SalaryResponse{Min: s.Min, Max: s.Max, Currency: s.Currency}
	}
	return resp
}

func NewPostingListResponse(ps []job.Posting) []PostingResponse {
	out := make([]PostingResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewPostingResponse(p))
	}
	return out
}
