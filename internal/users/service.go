package users

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/antarin/antarin/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, roleFilter string) ([]User, error)
	Update(ctx context.Context, id int64, changes Changes) error
}

// PasswordHasher re-hashes password updates before they reach the store.
type PasswordHasher interface {
	Hash(secret string) (string, error)
}

// UpdateRequest carries the mutable profile fields of an update call.
// Empty fields are treated as not supplied.
type UpdateRequest struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

// Service handles directory business logic.
type Service struct {
	repo     RepositoryPort
	hasher   PasswordHasher
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher, validate: validator.New()}
}

// GetProfile returns the principal's own record.
func (s *Service) GetProfile(ctx context.Context, principalID int64) (*User, error) {
	return s.repo.GetByID(ctx, principalID)
}

// List returns users ordered by creation time descending, optionally
// filtered by role. A filter outside the fixed role enumeration matches
// nothing, so the store is not queried. Authorization (admin only) is
// enforced by middleware.
func (s *Service) List(ctx context.Context, roleFilter string) ([]User, error) {
	if roleFilter != "" && !shared.ValidRole(roleFilter) {
		return []User{}, nil
	}
	return s.repo.List(ctx, roleFilter)
}

// Get returns a single user by id.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the supplied fields to the target record in one atomic
// store write. A principal may update a record only if they are an admin
// or the record is their own.
func (s *Service) Update(ctx context.Context, targetID int64, req UpdateRequest, principal shared.Principal) error {
	if !principal.IsAdmin() && principal.UserID != targetID {
		return shared.ErrForbidden
	}

	changes := Changes{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if req.Email != "" {
		if err := s.validate.Var(req.Email, "email"); err != nil {
			return shared.ErrInvalidInput
		}
	}
	if req.Password != "" {
		hashed, err := s.hasher.Hash(req.Password)
		if err != nil {
			return err
		}
		changes.PasswordHash = hashed
	}
	if changes.Empty() {
		return shared.ErrNoChanges
	}
	return s.repo.Update(ctx, targetID, changes)
}
