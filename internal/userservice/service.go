// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/internal/registration"
	"github.com/go-petr/money-guard/pkg/errorspkg"
	"github.com/go-petr/money-guard/pkg/passpkg"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New return user service struct to manage user bussines logic.
func New(ur Repo) *Service {
	return &Service{
		repo: ur,
	}
}

// NewUserWihtoutPassword returns user with removed sensitive data.
func NewUserWihtoutPassword(u domain.User) domain.UserWihtoutPassword {
	return domain.UserWihtoutPassword{
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Register stores a new user with a hashed password.
//
// Duplicate usernames and emails are returned as *registration.RegistrationError wrapping
// the domain error, so the form can show the message.
func (s *Service) Register(ctx context.Context, arg domain.RegisterParams) (domain.UserWihtoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var result domain.UserWihtoutPassword

	hashedPassword, err := passpkg.Hash(arg.Password)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	gotUser, err := s.repo.Create(ctx, domain.CreateUserParams{
		Username:       arg.Username,
		HashedPassword: hashedPassword,
		Email:          arg.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameAlreadyExists) || errors.Is(err, domain.ErrEmailALreadyExists) {
			return result, &registration.RegistrationError{Messages: []string{err.Error()}, Err: err}
		}

		return result, errorspkg.ErrInternal
	}

	result = NewUserWihtoutPassword(gotUser)

	return result, nil
}

// CheckPassword checks if the password is valid for the user with the given email.
func (s *Service) CheckPassword(ctx context.Context, email, pass string) (domain.UserWihtoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var response domain.UserWihtoutPassword

	gotUser, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return response, err
	}

	err = passpkg.Check(pass, gotUser.HashedPassword)
	if err != nil {
		l.Warn().Err(err).Send()
		return response, domain.ErrWrongPassword
	}

	response = NewUserWihtoutPassword(gotUser)

	return response, nil
}
