package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"sponsor-scout/internal/database"
	"sponsor-scout/internal/domain/scoring"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrScoreNotFound = errors.New("score not found")

// ScoreRecord is a persisted scoring result. The full breakdown is kept
// as JSON so the "why this number" answer survives weight retuning.
type ScoreRecord struct {
	ID        uuid.UUID
	PostingID uuid.UUID
	UserID    uuid.UUID
	Result    scoring.MultiScoreResult
	CreatedAt time.Time
}

type ScoreRepository interface {
	Save(ctx context.Context, postingID, userID uuid.UUID, result scoring.MultiScoreResult) (ScoreRecord, error)
	Get(ctx context.Context, postingID, userID uuid.UUID) (ScoreRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ScoreRecord, error)
}

type PostgresScoreRepository struct {
	db database.DB
}

func NewPostgresScoreRepository(db database.DB) *PostgresScoreRepository {
	return &PostgresScoreRepository{db: db}
}

func (r *PostgresScoreRepository) Save(ctx context.Context, postingID, userID uuid.UUID, result scoring.MultiScoreResult) (ScoreRecord, error) {
	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		return ScoreRecord{}, err
	}

	rec := ScoreRecord{ID: uuid.New(), PostingID: postingID, UserID: userID, Result: result}
	row := r.db.QueryRow(ctx,
		`INSERT INTO scores (
			id, posting_id, user_id, overall_score, visa_score,
			resume_match_score, job_relevance_score, recommendation, breakdown
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (posting_id, user_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			visa_score = EXCLUDED.visa_score,
			resume_match_score = EXCLUDED.resume_match_score,
			job_relevance_score = EXCLUDED.job_relevance_score,
			recommendation = EXCLUDED.recommendation,
			breakdown = EXCLUDED.breakdown,
			created_at = now()
		RETURNING id, created_at`,
		rec.ID, postingID, userID,
		result.OverallScore, result.VisaScore,
		result.ResumeMatchScore, result.JobRelevanceScore,
		result.Recommendation.Action, breakdown,
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return ScoreRecord{}, err
	}
	return rec, nil
}

func (r *PostgresScoreRepository) Get(ctx context.Context, postingID, userID uuid.UUID) (ScoreRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, posting_id, user_id, overall_score, visa_score,
			resume_match_score, job_relevance_score, recommendation, breakdown, created_at
		FROM scores WHERE posting_id = $1 AND user_id = $2`,
		postingID, userID,
	)
	rec, err := scanScore(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return ScoreRecord{}, ErrScoreNotFound
		}
		return ScoreRecord{}, err
	}
	return rec, nil
}

func (r *PostgresScoreRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ScoreRecord, error) {
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
		`SELECT id, posting_id, user_id, overall_score, visa_score,
			resume_match_score, job_relevance_score, recommendation, breakdown, created_at
		FROM scores WHERE user_id = $1
		ORDER BY overall_score DESC, created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ScoreRecord, 0)
	for rows.Next() {
		rec, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanScore(row database.Row) (ScoreRecord, error) {
	var (
		rec       ScoreRecord
		breakdown []byte
	)
	err := row.Scan(
		&rec.ID, &rec.PostingID, &rec.UserID,
		&rec.Result.OverallScore, &rec.Result.VisaScore,
		&rec.Result.ResumeMatchScore, &rec.Result.JobRelevanceScore,
		&rec.Result.Recommendation.Action, &breakdown, &rec.CreatedAt,
	)
	if err != nil {
		return ScoreRecord{}, err
	}

	if err := json.Unmarshal(breakdown, &rec.Result.Breakdown); err != nil {
		return ScoreRecord{}, err
	}
	// The decision table is deterministic over (overall, visa); only the
	// action is stored, the rest is recomputed.
	rec.Result.Recommendation = scoring.RecommendationFor(rec.Result.OverallScore, rec.Result.VisaScore)
	return rec, nil
}
