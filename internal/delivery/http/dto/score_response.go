package dto

import (
	"time"

	"github.com/google/uuid"

	"sponsor-scout/internal/domain/scoring"
	"sponsor-scout/internal/repository"
)

type ScoreResponse struct {
	ID        uuid.UUID                `json:"id"`
	PostingID uuid.UUID                `json:"posting_id"`
	UserID    uuid.UUID                `json:"user_id"`
	Result    scoring.MultiScoreResult `json:"result"`
	CreatedAt time.Time                `json:"created_at"`
}

func NewScoreResponse(rec repository.ScoreRecord) ScoreResponse {
	return ScoreResponse{
		ID:        rec.ID,
		PostingID: rec.PostingID,
		UserID:    rec.UserID,
		Result:    rec.Result,
		CreatedAt: rec.CreatedAt,
	}
}

type BatchScoreResponse struct {
	Scored []ScoreResponse `json:"scored"`
	Failed int             `json:"failed"`
}

func NewBatchScoreResponse(scored []repository.ScoreRecord, failed int) BatchScoreResponse {
	out := BatchScoreResponse{Scored: make([]ScoreResponse, 0, len(scored)), Failed: failed}
	for _, rec := range scored {
		out.Scored = append(out.Scored, NewScoreResponse(rec))
	}
	return out
}
