package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sponsor-scout/internal/domain/profile"
	"sponsor-scout/internal/repository"
)

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Save(ctx context.Context, userID uuid.UUID, p profile.Profile) (profile.Profile, error)
}

type ProfileService struct {
	profiles repository.ProfileRepository
	cache    ScoreCache
}

func NewProfileUsecase(profiles repository.ProfileRepository, scoreCache ScoreCache) *ProfileService {
	return &ProfileService{profiles: profiles, cache: scoreCache}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func (s *ProfileService) Save(ctx context.Context, userID uuid.UUID, p profile.Profile) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrInvalidInput
	}
	if p.YearsOfExperience < 0 {
		return profile.Profile{}, ErrInvalidInput
	}
	p.UserID = &userID

	saved, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return profile.Profile{}, ErrInternal
	}

	// Cached scores were computed against the old profile.
	if s.cache != nil {
		_ = s.cache.DeleteByPattern(ctx, scoreCacheUserPattern(userID))
	}
	return saved, nil
}
