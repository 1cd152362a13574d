package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/ingest"
	"sponsor-scout/internal/repository"
)

const defaultSourceName = "manual"

type IngestUsecase interface {
	IngestURL(ctx context.Context, rawURL string) (job.Posting, error)
	IngestBatch(ctx context.Context, sourceName string, urls []string) (ingest.Stats, error)
	GetPosting(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListPostings(ctx context.Context, limit, offset int) ([]job.Posting, error)
}

type IngestService struct {
	runner   *ingest.Runner
	postings repository.PostingRepository
}

func NewIngestUsecase(runner *ingest.Runner, postings repository.PostingRepository) *IngestService {
	return &IngestService{runner: runner, postings: postings}
}

// IngestURL fetches, normalizes and stores a single posting on demand,
// returning the stored record so callers can score it immediately.
func (s *IngestService) IngestURL(ctx context.Context, rawURL string) (job.Posting, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || (!strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://")) {
		return job.Posting{}, ErrInvalidInput
	}

	id, err := s.runner.IngestURL(ctx, defaultSourceName, rawURL)
	if err != nil {
		return job.Posting{}, ErrInternal
	}
	p, err := s.postings.GetByID(ctx, id)
	if err != nil {
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (s *IngestService) IngestBatch(ctx context.Context, sourceName string, urls []string) (ingest.Stats, error) {
	if strings.TrimSpace(sourceName) == "" {
		sourceName = defaultSourceName
	}
	if len(urls) == 0 {
		return ingest.Stats{}, ErrInvalidInput
	}
	stats, err := s.runner.Ingest(ctx, sourceName, "", urls)
	if err != nil {
		return stats, ErrInternal
	}
	return stats, nil
}

func (s *IngestService) GetPosting(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	p, err := s.postings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return job.Posting{}, ErrPostingNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (s *IngestService) ListPostings(ctx context.Context, limit, offset int) ([]job.Posting, error) {
	ps, err := s.postings.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return ps, nil
}
