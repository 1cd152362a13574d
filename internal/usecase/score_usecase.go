package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"sponsor-scout/internal/config"
	"sponsor-scout/internal/domain/scoring"
	"sponsor-scout/internal/domain/visa"
	"sponsor-scout/internal/repository"
	"sponsor-scout/internal/visaintel"
)

// ScoreNotifier pushes completed scores to connected clients. The ws
// hub satisfies it; usecases never import the ws package directly.
type ScoreNotifier interface {
	ScoreCompleted(userID uuid.UUID, postingID uuid.UUID, result scoring.MultiScoreResult)
}

// ScoreCache is the slice of the redis wrapper the scoring flow needs.
// A nil cache disables memoization.
type ScoreCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type ScoreUsecase interface {
	Score(ctx context.Context, postingID, userID uuid.UUID) (repository.ScoreRecord, error)
	Get(ctx context.Context, postingID, userID uuid.UUID) (repository.ScoreRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.ScoreRecord, error)
}

type ScoreService struct {
	postings repository.PostingRepository
	profiles repository.ProfileRepository
	scores   repository.ScoreRepository
	intel    visaintel.Provider
	cache    ScoreCache
	cfg      scoring.Config
	logger   *log.Logger
	notifier ScoreNotifier
}

func NewScoreUsecase(
	postings repository.PostingRepository,
	profiles repository.ProfileRepository,
	scores repository.ScoreRepository,
	intel visaintel.Provider,
	scoreCache ScoreCache,
	overrides config.ScoringConfig,
	logger *log.Logger,
	notifier ScoreNotifier,
) *ScoreService {
	return &ScoreService{
		postings: postings,
		profiles: profiles,
		scores:   scores,
		intel:    intel,
		cache:    scoreCache,
		cfg:      engineConfig(overrides),
		logger:   logger,
		notifier: notifier,
	}
}

// engineConfig layers environment overrides over the engine defaults.
// Only the three aggregate weights are tunable from outside; the tier
// weights stay calibrated.
func engineConfig(o config.ScoringConfig) scoring.Config {
	cfg := scoring.DefaultConfig()
	if o.VisaWeight > 0 {
		cfg.VisaWeight = o.VisaWeight
	}
	if o.ResumeWeight > 0 {
		cfg.ResumeWeight = o.ResumeWeight
	}
	if o.RelevanceWeight > 0 {
		cfg.RelevanceWeight = o.RelevanceWeight
	}
	return cfg
}

// Score computes and persists the multi-factor score of one posting
// against one user's profile. Scoring itself is pure; everything around
// it (loads, intel lookup, save, cache, notify) lives here.
func (s *ScoreService) Score(ctx context.Context, postingID, userID uuid.UUID) (repository.ScoreRecord, error) {
	if postingID == uuid.Nil || userID == uuid.Nil {
		return repository.ScoreRecord{}, ErrInvalidInput
	}

	cacheKey := scoreCacheKey(postingID, userID)
	if s.cache != nil {
		var cached repository.ScoreRecord
		if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	posting, err := s.postings.GetByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return repository.ScoreRecord{}, ErrPostingNotFound
		}
		return repository.ScoreRecord{}, ErrInternal
	}

	prof, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.ScoreRecord{}, ErrProfileNotFound
		}
		return repository.ScoreRecord{}, ErrInternal
	}

	sig, err := s.intel.Signal(ctx, posting)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Score] intel lookup failed, scoring without employer signal | posting=%s err=%v", postingID, err)
		}
		sig = visa.Signal{}
	}

	result := scoring.Aggregate(posting.Normalized, prof, sig, s.cfg)

	rec, err := s.scores.Save(ctx, postingID, userID, result)
	if err != nil {
		return repository.ScoreRecord{}, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey, rec, 10*time.Minute)
	}

	if s.notifier != nil {
		s.notifier.ScoreCompleted(userID, postingID, result)
	}
	if s.logger != nil {
		s.logger.Printf("[Score] scored | posting=%s user=%s overall=%d action=%s", postingID, userID, result.OverallScore, result.Recommendation.Action)
	}
	return rec, nil
}

func (s *ScoreService) Get(ctx context.Context, postingID, userID uuid.UUID) (repository.ScoreRecord, error) {
	rec, err := s.scores.Get(ctx, postingID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrScoreNotFound) {
			return repository.ScoreRecord{}, ErrScoreNotFound
		}
		return repository.ScoreRecord{}, ErrInternal
	}
	return rec, nil
}

func (s *ScoreService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.ScoreRecord, error) {
	recs, err := s.scores.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return recs, nil
}

func scoreCacheKey(postingID, userID uuid.UUID) string {
	return fmt.Sprintf("score:%s:%s", postingID, userID)
}

// scoreCacheUserPattern matches every cached score of one user, for
// invalidation when the profile changes.
func scoreCacheUserPattern(userID uuid.UUID) string {
	return fmt.Sprintf("score:*:%s", userID)
}
