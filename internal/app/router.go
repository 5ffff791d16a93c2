package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/antarin/antarin/internal/auth"
	"github.com/antarin/antarin/internal/observability"
	"github.com/antarin/antarin/internal/platform/httpx"
	"github.com/antarin/antarin/internal/statistics"
	"github.com/antarin/antarin/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	AuthHandler       *auth.Handler
	AuthMiddleware    auth.Middleware
	UsersHandler      *users.Handler
	StatisticsHandler *statistics.Handler
	Metrics           *observability.Metrics
}

type healthResponse struct {
	httpx.Envelope
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRouter constructs the chi.Router with the API defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	// Subrouters do not inherit NotFound/MethodNotAllowed, so the envelope
	// handler is set again on the /api group below. Wrong-method requests on
	// a known path fall through to the same 404 envelope.
	notFound := func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, http.StatusNotFound, "Endpoint tidak ditemukan")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Antarin Delivery API",
			"endpoints": map[string]any{
				"auth":   map[string]string{"login": "POST /api/login"},
				"user":   map[string]string{"profile": "GET /api/profile", "users": "GET /api/users", "userById": "GET /api/users/{id}", "updateUser": "PUT /api/users/{id}"},
				"stats":  map[string]string{"statistics": "GET /api/statistics"},
				"health": "GET /api/health",
			},
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			httpx.JSON(w, http.StatusOK, healthResponse{
				Envelope:  httpx.Envelope{Success: true, Message: "Server is running"},
				Status:    "OK",
				Timestamp: time.Now().UTC(),
			})
		})

		params.AuthHandler.MountRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(params.AuthMiddleware.RequireAuth)
			params.UsersHandler.MountRoutes(r)
			params.StatisticsHandler.MountRoutes(r)
		})
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
