package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestScoreUsecase_AdjustScore_NegativeDelta(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{}
	uc := NewScoreUsecase(repo, cache)

	if err := uc.AdjustScore(context.Background(), "A@B.co ", -5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.incEmail != "a@b.co" || repo.incDelta != -5 {
		t.Fatalf("unexpected increment: email=%q delta=%d", repo.incEmail, repo.incDelta)
	}
	if len(cache.delPatterns) != 1 || cache.delPatterns[0] != TutorSearchCachePattern {
		t.Fatalf("expected tutor search cache invalidation, got %v", cache.delPatterns)
	}
}

func TestScoreUsecase_AdjustScore_EmptyEmailNoOp(t *testing.T) {
	repo := &mockRepo{}
	uc := NewScoreUsecase(repo, nil)

	if err := uc.AdjustScore(context.Background(), "  ", 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.incCalls != 0 {
		t.Fatalf("store should not be touched for empty email")
	}
}

func TestScoreUsecase_AdjustScore_StoreError(t *testing.T) {
	uc := NewScoreUsecase(&mockRepo{incErr: errors.New("boom")}, nil)

	if err := uc.AdjustScore(context.Background(), "a@b.co", 1); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
