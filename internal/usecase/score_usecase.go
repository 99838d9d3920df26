package usecase

import (
	"context"
	"strings"

	"tutor-match/internal/domain/user"
	"tutor-match/internal/ws"
)

type ScoreUsecase interface {
	AdjustScore(ctx context.Context, email string, delta int) error
}

type Score struct {
	users user.Repository
	cache SearchCache
}

func NewScoreUsecase(users user.Repository, cache SearchCache) *Score {
	return &Score{users: users, cache: cache}
}

// AdjustScore applies a signed delta as one atomic store increment.
// An unknown email is a silent no-op; callers still get a success
// response.
func (s *Score) AdjustScore(ctx context.Context, email string, delta int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	if err := s.users.IncrementScore(ctx, email, delta); err != nil {
		return ErrInternal
	}

	// Ranking changed; cached tutor searches are stale now.
	if s.cache != nil {
		_ = s.cache.DeleteByPattern(ctx, TutorSearchCachePattern)
	}

	ws.NotifyScoreUpdated(email, delta)

	return nil
}
