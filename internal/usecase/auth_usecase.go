package usecase

import (
	"context"
	"errors"

	"tutor-match/internal/domain/user"
	"tutor-match/internal/pkg/jwt"
	ucauth "tutor-match/internal/usecase/auth"
)

var ErrInternal = errors.New("internal error")

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
	cache   SearchCache
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, cache SearchCache) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), jwt: jwtSvc, cache: cache}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, err
	}

	// A new tutor can change existing search results.
	if usr.Role == user.RoleTutor && u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, TutorSearchCachePattern)
	}

	return usr, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.jwt.Generate(usr.ID, usr.Email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return usr, token, nil
}
