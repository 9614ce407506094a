package services

import (
	"fmt"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
	"github.com/oseasjs/nest-crud-jwt/internal/repos"
)

var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *TokenService
}

func NewAuthService(users *repos.UserRepo, tokens *TokenService) *AuthService {
	return &AuthService{Users: users, Tokens: tokens}
}

func (s *AuthService) SignUp(username, password string) error {
	return s.Users.Register(username, password)
}

// SignIn exchanges valid credentials for a signed access token. Unknown
// user and wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) SignIn(username, password string) (string, error) {
	name, ok := s.Users.Verify(username, password)
	if !ok {
		return "", ErrInvalidCredentials
	}
	return s.Tokens.Issue(name)
}

// CurrentUser resolves a bearer token to the owning user record.
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	username, err := s.Tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("unknown token subject: %w", domain.ErrUnauthorized)
	}
	return u, nil
}
