package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tutor-match/internal/domain/user"

	"github.com/google/uuid"
)

type mockRepo struct {
	tutors    []user.User
	tutorsErr error

	incEmail string
	incDelta int
	incCalls int
	incErr   error
}

func (m *mockRepo) CreateUser(context.Context, user.User) error { return nil }

func (m *mockRepo) GetUserByID(context.Context, uuid.UUID) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (m *mockRepo) GetUserByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (m *mockRepo) FindTutorsBySkill(context.Context, string) ([]user.User, error) {
	return m.tutors, m.tutorsErr
}

func (m *mockRepo) IncrementScore(_ context.Context, email string, delta int) error {
	m.incCalls++
	m.incEmail = email
	m.incDelta = delta
	return m.incErr
}

type mockCache struct {
	getHit  bool
	getData []user.User

	setKeys     []string
	deleted     []string
	delPatterns []string
}

func (m *mockCache) GetJSON(_ context.Context, _ string, out any) (bool, error) {
	if !m.getHit {
		return false, nil
	}
	p, ok := out.(*[]user.User)
	if !ok {
		return false, errors.New("unexpected out type")
	}
	*p = m.getData
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.setKeys = append(m.setKeys, key)
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.delPatterns = append(m.delPatterns, pattern)
	return nil
}

func TestTutorUsecase_FindTutors_StoreOrderPreserved(t *testing.T) {
	tutors := []user.User{
		{Email: "a@x.co", Role: user.RoleTutor, Score: 30, PasswordHash: "h"},
		{Email: "b@x.co", Role: user.RoleTutor, Score: 20, PasswordHash: "h"},
		{Email: "c@x.co", Role: user.RoleTutor, Score: 10, PasswordHash: "h"},
	}
	cache := &mockCache{}
	uc := NewTutorUsecase(&mockRepo{tutors: tutors}, cache, time.Minute)

	got, err := uc.FindTutors(context.Background(), "python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tutors, got %d", len(got))
	}
	if got[0].Score != 30 || got[1].Score != 20 || got[2].Score != 10 {
		t.Fatalf("order changed: %v", got)
	}
	for _, u := range got {
		if u.PasswordHash != "" {
			t.Fatalf("password hash leaked for %s", u.Email)
		}
	}
	if len(cache.setKeys) != 1 {
		t.Fatalf("expected result to be cached")
	}
}

func TestTutorUsecase_FindTutors_CacheHitSkipsStore(t *testing.T) {
	cached := []user.User{{Email: "a@x.co", Role: user.RoleTutor, Score: 5}}
	cache := &mockCache{getHit: true, getData: cached}
	uc := NewTutorUsecase(&mockRepo{tutorsErr: errors.New("store should not be hit")}, cache, time.Minute)

	got, err := uc.FindTutors(context.Background(), "go")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Email != "a@x.co" {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestTutorUsecase_FindTutors_StoreError(t *testing.T) {
	uc := NewTutorUsecase(&mockRepo{tutorsErr: errors.New("boom")}, nil, time.Minute)

	if _, err := uc.FindTutors(context.Background(), "go"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestTutorUsecase_FindTutors_NoCache(t *testing.T) {
	uc := NewTutorUsecase(&mockRepo{tutors: []user.User{}}, nil, 0)

	got, err := uc.FindTutors(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestTutorSearchCacheKey_CaseSensitive(t *testing.T) {
	if TutorSearchCacheKey("Python") == TutorSearchCacheKey("python") {
		t.Fatalf("keys must differ for skills that differ in case")
	}
	if TutorSearchCacheKey("go") != TutorSearchCacheKey("go") {
		t.Fatalf("key must be stable")
	}
}
