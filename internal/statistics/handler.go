package statistics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/antarin/antarin/internal/platform/httpx"
)

// Handler serves the dashboard statistics endpoint. Any authenticated
// principal may read it; no admin restriction applies.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers statistics routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/statistics", h.getStatistics)
}

type statisticsResponse struct {
	httpx.Envelope
	Data Summary `json:"data"`
}

func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		h.logger.Error("aggregate statistics", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "Gagal mengambil statistik")
		return
	}
	httpx.JSON(w, http.StatusOK, statisticsResponse{
		Envelope: httpx.Envelope{Success: true},
		Data:     *summary,
	})
}
