package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"sponsor-scout/internal/config"
	"sponsor-scout/internal/repository"
)

type stubScorer struct {
	scores map[uuid.UUID]int
	errs   map[uuid.UUID]error
}

func (s *stubScorer) Score(ctx context.Context, postingID, userID uuid.UUID) (repository.ScoreRecord, error) {
	if err, ok := s.errs[postingID]; ok {
		return repository.ScoreRecord{}, err
	}
	rec := repository.ScoreRecord{ID: uuid.New(), PostingID: postingID, UserID: userID}
	rec.Result.OverallScore = s.scores[postingID]
	return rec, nil
}

func (s *stubScorer) Get(ctx context.Context, postingID, userID uuid.UUID) (repository.ScoreRecord, error) {
	return repository.ScoreRecord{}, repository.ErrScoreNotFound
}

func (s *stubScorer) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.ScoreRecord, error) {
	return nil, nil
}

func TestBatchScore_SortedByOverallDescending(t *testing.T) {
	low, mid, high := uuid.New(), uuid.New(), uuid.New()
	scorer := &stubScorer{scores: map[uuid.UUID]int{low: 20, mid: 55, high: 91}}

	svc := NewBatchScoreUsecase(scorer, config.IngestConfig{Workers: 3}, nil)
	out, err := svc.ScoreBatch(context.Background(), uuid.New(), []uuid.UUID{low, high, mid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Scored) != 3 || out.Failed != 0 {
		t.Fatalf("scored=%d failed=%d", len(out.Scored), out.Failed)
	}

	got := []int{out.Scored[0].Result.OverallScore, out.Scored[1].Result.OverallScore, out.Scored[2].Result.OverallScore}
	if got[0] != 91 || got[1] != 55 || got[2] != 20 {
		t.Fatalf("order = %v", got)
	}
}

func TestBatchScore_PartialFailure(t *testing.T) {
	ok1, bad, ok2 := uuid.New(), uuid.New(), uuid.New()
	scorer := &stubScorer{
		scores: map[uuid.UUID]int{ok1: 70, ok2: 40},
		errs:   map[uuid.UUID]error{bad: ErrPostingNotFound},
	}

	svc := NewBatchScoreUsecase(scorer, config.IngestConfig{Workers: 2}, nil)
	out, err := svc.ScoreBatch(context.Background(), uuid.New(), []uuid.UUID{ok1, bad, ok2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Scored) != 2 {
		t.Fatalf("scored = %d", len(out.Scored))
	}
	if out.Failed != 1 {
		t.Fatalf("failed = %d", out.Failed)
	}
}

func TestBatchScore_EmptyInput(t *testing.T) {
	svc := NewBatchScoreUsecase(&stubScorer{}, config.IngestConfig{}, nil)

	_, err := svc.ScoreBatch(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err = svc.ScoreBatch(context.Background(), uuid.Nil, []uuid.UUID{uuid.New()})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBatchScore_StableTieBreak(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	scorer := &stubScorer{scores: map[uuid.UUID]int{a: 50, b: 50}}

	svc := NewBatchScoreUsecase(scorer, config.IngestConfig{Workers: 2}, nil)

	first, err := svc.ScoreBatch(context.Background(), uuid.New(), []uuid.UUID{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ScoreBatch(context.Background(), uuid.New(), []uuid.UUID{b, a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Scored[0].PostingID != second.Scored[0].PostingID {
		t.Fatal("tie order not stable across runs")
	}
}
