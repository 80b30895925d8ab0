package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/bloglist/domain"
)

const minCredentialLength = 3

// TokenIssuer signs the token handed out on login.
type TokenIssuer interface {
	Issue(u domain.User) (string, error)
}

type Service struct {
	userRepo   domain.UserRepository
	issuer     TokenIssuer
	bcryptCost int
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, issuer TokenIssuer) *Service {
	return &Service{
		userRepo:   u,
		issuer:     issuer,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// WithBcryptCost overrides the hashing cost. Tests use bcrypt.MinCost.
func (s *Service) WithBcryptCost(cost int) *Service {
	s.bcryptCost = cost
	return s
}

func (s *Service) Register(ctx context.Context, name, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minCredentialLength {
		return domain.User{}, fmt.Errorf("%w: expected `username` to be at least %d characters long", domain.ErrBadParamInput, minCredentialLength)
	}
	if len(password) < minCredentialLength {
		return domain.User{}, fmt.Errorf("%w: expected `password` to be at least %d characters long", domain.ErrBadParamInput, minCredentialLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, fmt.Errorf("%w: expected `username` to be unique", domain.ErrBadParamInput)
		}
		return domain.User{}, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (domain.Session, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, domain.ErrUnauthorized
	} else if err != nil {
		return domain.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		logrus.Debugf("login rejected for %s: %v", username, err)
		return domain.Session{}, domain.ErrUnauthorized
	}

	token, err := s.issuer.Issue(u)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token:    token,
		Username: u.Username,
		Name:     u.Name,
	}, nil
}

func (s *Service) Fetch(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}
