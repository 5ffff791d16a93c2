package users

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/antarin/antarin/internal/auth"
	"github.com/antarin/antarin/internal/platform/httpx"
	"github.com/antarin/antarin/internal/shared"
)

// Handler manages the directory endpoints. Routes are mounted inside a
// group that already requires an authenticated principal.
type Handler struct {
	logger  *slog.Logger
	service *Service
	authz   auth.Middleware
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authz auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, authz: authz}
}

// MountRoutes registers directory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/profile", h.getProfile)
	r.Route("/users", func(r chi.Router) {
		r.Put("/{id}", h.updateUser)
		r.Group(func(r chi.Router) {
			r.Use(h.authz.RequireAdmin)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
		})
	})
}

type userPayload struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPayload(user *User) userPayload {
	return userPayload{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

type profileResponse struct {
	httpx.Envelope
	User userPayload `json:"user"`
}

type listResponse struct {
	httpx.Envelope
	Data  []userPayload `json:"data"`
	Total int           `json:"total"`
}

type userResponse struct {
	httpx.Envelope
	Data userPayload `json:"data"`
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrTokenMissing)
		return
	}
	user, err := h.service.GetProfile(r.Context(), principal.UserID)
	if err != nil {
		h.respondError(w, r, "get profile", err)
		return
	}
	httpx.JSON(w, http.StatusOK, profileResponse{
		Envelope: httpx.Envelope{Success: true},
		User:     toPayload(user),
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		h.respondError(w, r, "list users", err)
		return
	}
	payload := make([]userPayload, 0, len(users))
	for i := range users {
		payload = append(payload, toPayload(&users[i]))
	}
	httpx.JSON(w, http.StatusOK, listResponse{
		Envelope: httpx.Envelope{Success: true},
		Data:     payload,
		Total:    len(payload),
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "get user", err)
		return
	}
	httpx.JSON(w, http.StatusOK, userResponse{
		Envelope: httpx.Envelope{Success: true},
		Data:     toPayload(user),
	})
}

type updateRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrTokenMissing)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrInvalidInput)
		return
	}
	err = h.service.Update(r.Context(), id, UpdateRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}, principal)
	if err != nil {
		h.respondError(w, r, "update user", err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Envelope{Success: true, Message: "Data user berhasil diupdate"})
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if httpx.StatusFor(err) == http.StatusInternalServerError {
		h.logger.Error(op, slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
