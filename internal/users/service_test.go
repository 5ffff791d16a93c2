package users_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarin/antarin/internal/shared"
	"github.com/antarin/antarin/internal/users"
)

type stubRepo struct {
	byID       map[int64]*users.User
	list       []users.User
	listCalled bool
	listFilter string
	updates    []users.Changes
	updateErr  error
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func (s *stubRepo) List(ctx context.Context, roleFilter string) ([]users.User, error) {
	s.listCalled = true
	s.listFilter = roleFilter
	return s.list, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, changes users.Changes) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates = append(s.updates, changes)
	return nil
}

type stubHasher struct{}

func (stubHasher) Hash(secret string) (string, error) {
	return "hashed:" + secret, nil
}

func adminPrincipal() shared.Principal {
	return shared.Principal{UserID: 1, Username: "admin", Role: shared.RoleAdmin}
}

func courierPrincipal(id int64) shared.Principal {
	return shared.Principal{UserID: id, Username: "courier1", Role: shared.RoleCourier}
}

func TestGetProfileReturnsOwnRecord(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*users.User{
		3: {ID: 3, Username: "courier1", Role: shared.RoleCourier, CreatedAt: time.Now()},
	}}
	service := users.NewService(repo, stubHasher{})

	user, err := service.GetProfile(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "courier1", user.Username)

	_, err = service.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListPassesRoleFilter(t *testing.T) {
	repo := &stubRepo{}
	service := users.NewService(repo, stubHasher{})

	_, err := service.List(context.Background(), shared.RoleCourier)
	require.NoError(t, err)
	assert.Equal(t, shared.RoleCourier, repo.listFilter)
}

func TestListUnknownRoleYieldsEmpty(t *testing.T) {
	repo := &stubRepo{list: []users.User{{ID: 1, Username: "admin", Role: shared.RoleAdmin}}}
	service := users.NewService(repo, stubHasher{})

	listing, err := service.List(context.Background(), "manager")
	require.NoError(t, err)
	assert.Empty(t, listing)
	assert.False(t, repo.listCalled, "unknown role must not reach the store")
}

func TestUpdateOwnershipRule(t *testing.T) {
	repo := &stubRepo{}
	service := users.NewService(repo, stubHasher{})
	fields := users.UpdateRequest{FullName: "Nama Baru"}

	// Courier updating someone else's record is rejected before any store access.
	err := service.Update(context.Background(), 9, fields, courierPrincipal(3))
	assert.ErrorIs(t, err, shared.ErrForbidden)
	assert.Empty(t, repo.updates)

	// Courier updating their own record is allowed.
	require.NoError(t, service.Update(context.Background(), 3, fields, courierPrincipal(3)))

	// Admin may update anyone.
	require.NoError(t, service.Update(context.Background(), 9, fields, adminPrincipal()))
	assert.Len(t, repo.updates, 2)
}

func TestUpdateEmptyFieldsNoChanges(t *testing.T) {
	repo := &stubRepo{}
	service := users.NewService(repo, stubHasher{})

	err := service.Update(context.Background(), 3, users.UpdateRequest{}, courierPrincipal(3))
	assert.ErrorIs(t, err, shared.ErrNoChanges)
	assert.Empty(t, repo.updates, "no store write may happen")
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := &stubRepo{}
	service := users.NewService(repo, stubHasher{})

	err := service.Update(context.Background(), 3, users.UpdateRequest{Password: "baru123"}, courierPrincipal(3))
	require.NoError(t, err)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, "hashed:baru123", repo.updates[0].PasswordHash)
}

func TestUpdateRejectsInvalidEmail(t *testing.T) {
	repo := &stubRepo{}
	service := users.NewService(repo, stubHasher{})

	err := service.Update(context.Background(), 3, users.UpdateRequest{Email: "not-an-email"}, courierPrincipal(3))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	assert.Empty(t, repo.updates)
}
