package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SearchCache fronts the tutor lookups. Implementations must degrade
// to a miss when the backing cache is unavailable.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	tutorSearchCachePrefix  = "tutors:search:"
	TutorSearchCachePattern = tutorSearchCachePrefix + "*"
)

// TutorSearchCacheKey hashes the raw skill: the lookup is exact string
// equality, so two skills that differ only in case must not share an
// entry.
func TutorSearchCacheKey(skill string) string {
	sum := sha256.Sum256([]byte(skill))
	return tutorSearchCachePrefix + hex.EncodeToString(sum[:])
}
