package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleLearner Role = "learner"
	RoleTutor   Role = "tutor"
)

func (r Role) Valid() bool {
	return r == RoleLearner || r == RoleTutor
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Skills       []string
	Score        int
	Role         Role
	Points       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
