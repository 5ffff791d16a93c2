package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/antarin/antarin/internal/platform/httpx"
)

// Handler wires the HTTP endpoint for the login flow.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	codec    *TokenCodec
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, codec *TokenCodec) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		codec:    codec,
		validate: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type loginResponse struct {
	httpx.Envelope
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Username dan password harus diisi")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Username dan password harus diisi")
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if httpx.StatusFor(err) == http.StatusInternalServerError {
			h.logger.Error("authenticate", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	token, err := h.codec.Issue(user)
	if err != nil {
		h.logger.Error("issue token", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, loginResponse{
		Envelope: httpx.Envelope{Success: true, Message: "Login berhasil"},
		Token:    token,
		User: userPayload{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			FullName: user.FullName,
			Email:    user.Email,
			Phone:    user.Phone,
		},
	})
}
