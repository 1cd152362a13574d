package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"sponsor-scout/internal/config"
	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/profile"
	"sponsor-scout/internal/domain/visa"
)

func TestProfileService_SaveRejectsInvalidInput(t *testing.T) {
	svc := NewProfileUsecase(&fakeProfileRepo{profiles: map[uuid.UUID]profile.Profile{}}, nil)

	if _, err := svc.Save(context.Background(), uuid.Nil, profile.Profile{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil user, got %v", err)
	}
	if _, err := svc.Save(context.Background(), uuid.New(), profile.Profile{YearsOfExperience: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative experience, got %v", err)
	}
}

func TestProfileService_GetUnknownUser(t *testing.T) {
	svc := NewProfileUsecase(&fakeProfileRepo{profiles: map[uuid.UUID]profile.Profile{}}, nil)

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

// A profile update must not leave cached scores from the previous
// profile behind; the next score request recomputes.
func TestProfileService_SaveDropsCachedScores(t *testing.T) {
	posting := sponsoredPosting()
	userID := uuid.New()

	postings := &fakePostingRepo{postings: map[uuid.UUID]job.Posting{posting.ID: posting}}
	profiles := &fakeProfileRepo{profiles: map[uuid.UUID]profile.Profile{userID: pmProfile()}}
	intel := &fakeIntel{sig: visa.Signal{RegistryMatch: true, JDKeywordsFound: true}}
	scoreCache := newFakeScoreCache()

	scoreSvc := NewScoreUsecase(postings, profiles, newFakeScoreRepo(), intel, scoreCache, config.ScoringConfig{}, nil, nil)
	profileSvc := NewProfileUsecase(profiles, scoreCache)

	stale, err := scoreSvc.Score(context.Background(), posting.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intel.callCount() != 1 {
		t.Fatalf("intel calls = %d, want 1", intel.callCount())
	}

	updated := pmProfile()
	updated.SkillsTools = nil
	updated.SkillsTech = nil
	if _, err := profileSvc.Save(context.Background(), userID, updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scoreCache.patterns) != 1 || scoreCache.patterns[0] != scoreCacheUserPattern(userID) {
		t.Fatalf("invalidation patterns = %v", scoreCache.patterns)
	}

	rec, err := scoreSvc.Score(context.Background(), posting.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intel.callCount() != 2 {
		t.Fatalf("intel calls after profile update = %d, want 2", intel.callCount())
	}
	if rec.Result.ResumeMatchScore >= stale.Result.ResumeMatchScore {
		t.Fatalf("resume score = %d, want below the pre-update %d", rec.Result.ResumeMatchScore, stale.Result.ResumeMatchScore)
	}
}
