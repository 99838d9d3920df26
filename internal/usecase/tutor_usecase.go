package usecase

import (
	"context"
	"time"

	"tutor-match/internal/domain/user"
)

type TutorUsecase interface {
	FindTutors(ctx context.Context, skill string) ([]user.User, error)
}

type Tutor struct {
	users    user.Repository
	cache    SearchCache
	cacheTTL time.Duration
}

func NewTutorUsecase(users user.Repository, cache SearchCache, cacheTTL time.Duration) *Tutor {
	if cacheTTL <= 0 {
		cacheTTL = 60 * time.Second
	}
	return &Tutor{users: users, cache: cache, cacheTTL: cacheTTL}
}

// FindTutors matches the skill by exact string equality, highest score
// first. An empty skill matches nothing and returns an empty list.
// Cache failures fall through to the store.
func (t *Tutor) FindTutors(ctx context.Context, skill string) ([]user.User, error) {
	key := TutorSearchCacheKey(skill)

	if t.cache != nil {
		var cached []user.User
		if hit, err := t.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	tutors, err := t.users.FindTutorsBySkill(ctx, skill)
	if err != nil {
		return nil, ErrInternal
	}

	// Hashes never leave this layer, not even into the cache.
	for i := range tutors {
		tutors[i].PasswordHash = ""
	}

	if t.cache != nil {
		_ = t.cache.SetJSON(ctx, key, tutors, t.cacheTTL)
	}

	return tutors, nil
}
