package dto

import (
	"tutor-match/internal/domain/user"

	"github.com/google/uuid"
)

// UserResponse is the wire shape of a user. The password hash never
// appears here.
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Skills []string  `json:"skills"`
	Score  int       `json:"score"`
	Role   string    `json:"role"`
	Points int       `json:"points"`
}

func NewUserResponse(u user.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Skills: skills,
		Score:  u.Score,
		Role:   string(u.Role),
		Points: u.Points,
	}
}

func NewUserResponses(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
