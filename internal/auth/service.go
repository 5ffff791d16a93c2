package auth

import (
	"context"
	"errors"

	"github.com/antarin/antarin/internal/shared"
)

// Service wraps the credential verification rules.
type Service struct {
	repo   Repository
	hasher *Hasher
}

// NewService constructs a new Service.
func NewService(repo Repository, hasher *Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Authenticate validates username/password credentials. An unknown username
// and a wrong password return the same error so usernames cannot be
// enumerated through the login endpoint.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, shared.ErrInvalidInput
	}
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status != shared.StatusActive {
		return nil, shared.ErrAccountInactive
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}
