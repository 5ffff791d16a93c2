package app_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarin/antarin/internal/app"
	"github.com/antarin/antarin/internal/auth"
	"github.com/antarin/antarin/internal/shared"
	"github.com/antarin/antarin/internal/statistics"
	"github.com/antarin/antarin/internal/users"
	_ "github.com/antarin/antarin/testing"
)

type authRepo struct {
	users map[string]*auth.User
}

func (r *authRepo) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

type usersRepo struct {
	byID map[int64]*users.User
	list []users.User
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func (r *usersRepo) List(ctx context.Context, roleFilter string) ([]users.User, error) {
	if roleFilter == "" {
		return r.list, nil
	}
	var filtered []users.User
	for _, user := range r.list {
		if user.Role == roleFilter {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

func (r *usersRepo) Update(ctx context.Context, id int64, changes users.Changes) error {
	if _, ok := r.byID[id]; !ok {
		return shared.ErrNotFound
	}
	return nil
}

type statsRepo struct{}

func (statsRepo) TotalShipments(ctx context.Context) (int64, error) { return 25, nil }
func (statsRepo) ActiveCouriers(ctx context.Context) (int64, error) { return 2, nil }
func (statsRepo) ShipmentsToday(ctx context.Context) (int64, error) { return 5, nil }
func (statsRepo) CompletedToday(ctx context.Context) (int64, error) { return 3, nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &app.Config{AppEnv: "test", AppRequestTimeout: 5 * time.Second}

	hasher := auth.NewHasher(4)
	now := time.Now()

	adminHash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	courierHash, err := hasher.Hash("courier123")
	require.NoError(t, err)

	adminRecord := users.User{ID: 1, Username: "admin", Role: shared.RoleAdmin, FullName: "Administrator", Status: shared.StatusActive, CreatedAt: now}
	courierRecord := users.User{ID: 2, Username: "courier1", Role: shared.RoleCourier, FullName: "Kurir Satu", Status: shared.StatusActive, CreatedAt: now.Add(-time.Hour)}

	codec := auth.NewTokenCodec("router-test-secret", time.Hour)
	mw := auth.Middleware{Codec: codec, Logger: logger}

	authService := auth.NewService(&authRepo{users: map[string]*auth.User{
		"admin":    {ID: 1, Username: "admin", PasswordHash: adminHash, Role: shared.RoleAdmin, Status: shared.StatusActive},
		"courier1": {ID: 2, Username: "courier1", PasswordHash: courierHash, Role: shared.RoleCourier, Status: shared.StatusActive},
	}}, hasher)

	directory := &usersRepo{
		byID: map[int64]*users.User{1: &adminRecord, 2: &courierRecord},
		list: []users.User{adminRecord, courierRecord},
	}

	return app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		AuthHandler:       auth.NewHandler(logger, authService, codec),
		AuthMiddleware:    mw,
		UsersHandler:      users.NewHandler(logger, users.NewService(directory, hasher), mw),
		StatisticsHandler: statistics.NewHandler(logger, statistics.NewService(statsRepo{})),
	})
}

func login(t *testing.T, router http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func get(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func extractToken(t *testing.T, res *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Token)
	return payload.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	res := get(router, "/api/health", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"status":"OK"`)
	assert.Contains(t, res.Body.String(), `"timestamp"`)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	router := newTestRouter(t)

	res := get(router, "/api/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, res.Body.String(), `"success":false`)
}

func TestMethodMismatchEnvelope(t *testing.T) {
	router := newTestRouter(t)

	// A wrong method on a known path is enveloped like an unknown route.
	req := httptest.NewRequest(http.MethodPost, "/api/profile", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, res.Body.String(), `"success":false`)

	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, res.Body.String(), `"success":false`)
}

func TestLoginListStatisticsScenario(t *testing.T) {
	router := newTestRouter(t)

	// Admin login with the correct password succeeds and yields an admin token.
	adminRes := login(t, router, "admin", "admin123")
	require.Equal(t, http.StatusOK, adminRes.Code)
	assert.Contains(t, adminRes.Body.String(), `"role":"admin"`)
	adminToken := extractToken(t, adminRes)

	// Wrong password and nonexistent username are indistinguishable.
	wrongRes := login(t, router, "admin", "wrong-password")
	ghostRes := login(t, router, "ghost", "whatever")
	assert.Equal(t, http.StatusUnauthorized, wrongRes.Code)
	assert.Equal(t, http.StatusUnauthorized, ghostRes.Code)
	assert.Equal(t, wrongRes.Body.String(), ghostRes.Body.String())

	// Courier tokens are rejected from the admin-only directory listing.
	courierToken := extractToken(t, login(t, router, "courier1", "courier123"))
	assert.Equal(t, http.StatusForbidden, get(router, "/api/users", courierToken).Code)

	// Admin listing returns the directory ordered newest first.
	listRes := get(router, "/api/users", adminToken)
	require.Equal(t, http.StatusOK, listRes.Code)
	var listing struct {
		Data []struct {
			Username string `json:"username"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(listRes.Body.Bytes(), &listing))
	require.Equal(t, 2, listing.Total)
	assert.Equal(t, "admin", listing.Data[0].Username)

	// Any authenticated principal may read statistics.
	statsRes := get(router, "/api/statistics", courierToken)
	require.Equal(t, http.StatusOK, statsRes.Code)
	var stats struct {
		Data statistics.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(statsRes.Body.Bytes(), &stats))
	for _, count := range []int64{stats.Data.TotalShipments, stats.Data.ActiveCouriers, stats.Data.ShipmentsToday, stats.Data.CompletedToday} {
		assert.GreaterOrEqual(t, count, int64(0))
	}

	// Unauthenticated statistics access is rejected.
	assert.Equal(t, http.StatusForbidden, get(router, "/api/statistics", "").Code)
}

func TestRoleFilterOnListing(t *testing.T) {
	router := newTestRouter(t)
	adminToken := extractToken(t, login(t, router, "admin", "admin123"))

	res := get(router, "/api/users?role=courier", adminToken)
	require.Equal(t, http.StatusOK, res.Code)
	var listing struct {
		Data []struct {
			Role string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &listing))
	require.Len(t, listing.Data, 1)
	assert.Equal(t, shared.RoleCourier, listing.Data[0].Role)
}
