package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)

	// FindTutorsBySkill returns tutors whose skills contain the given
	// skill, highest score first.
	FindTutorsBySkill(ctx context.Context, skill string) ([]User, error)

	// IncrementScore applies a signed delta to the score of the user
	// with the given email. An absent email is a no-op, not an error.
	IncrementScore(ctx context.Context, email string, delta int) error
}
