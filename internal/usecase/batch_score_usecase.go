package usecase

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"sponsor-scout/internal/config"
	"sponsor-scout/internal/ingest"
	"sponsor-scout/internal/repository"
)

type BatchScoreUsecase interface {
	ScoreBatch(ctx context.Context, userID uuid.UUID, postingIDs []uuid.UUID) (BatchResult, error)
}

type BatchResult struct {
	Scored []repository.ScoreRecord
	Failed int
}

// BatchScoreService fans one profile out over many postings. Each
// posting scores independently, so the work distributes over the pool
// with no coordination beyond collecting results.
type BatchScoreService struct {
	scorer  ScoreUsecase
	workers int
	logger  *log.Logger
}

func NewBatchScoreUsecase(scorer ScoreUsecase, cfg config.IngestConfig, logger *log.Logger) *BatchScoreService {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	return &BatchScoreService{scorer: scorer, workers: workers, logger: logger}
}

func (s *BatchScoreService) ScoreBatch(ctx context.Context, userID uuid.UUID, postingIDs []uuid.UUID) (BatchResult, error) {
	if userID == uuid.Nil || len(postingIDs) == 0 {
		return BatchResult{}, ErrInvalidInput
	}

	var mu sync.Mutex
	out := BatchResult{Scored: make([]repository.ScoreRecord, 0, len(postingIDs))}

	pool := ingest.NewWorkerPool(s.workers, len(postingIDs))
	results := pool.Run(ctx)

	for _, id := range postingIDs {
		pid := id
		if pid == uuid.Nil {
			continue
		}
		pool.Submit(func(ctx context.Context) error {
			rec, err := s.scorer.Score(ctx, pid, userID)
			if err != nil {
				return err
			}
			mu.Lock()
			out.Scored = append(out.Scored, rec)
			mu.Unlock()
			return nil
		})
	}

	pool.Close()
	for res := range results {
		if res.Err != nil {
			out.Failed++
			if s.logger != nil {
				s.logger.Printf("[BatchScore] item failed | user=%s err=%v", userID, res.Err)
			}
		}
	}

	// Best opportunities first; ties broken by posting id for a stable
	// order across runs.
	sort.Slice(out.Scored, func(i, j int) bool {
		a, b := out.Scored[i], out.Scored[j]
		if a.Result.OverallScore != b.Result.OverallScore {
			return a.Result.OverallScore > b.Result.OverallScore
		}
		return a.PostingID.String() < b.PostingID.String()
	})

	return out, ctx.Err()
}
