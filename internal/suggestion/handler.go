package suggestion

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gymtracker-app/backend/internal/httputil"
)

// Handler handles HTTP requests for workout suggestions
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a new suggestion Handler instance
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// GetSuggestedWorkout generates an AI workout plan. Any upstream or
// parse failure answers with a plain-text 500, the body the frontend
// already expects.
// POST /getSuggestedWorkout
func (h *Handler) GetSuggestedWorkout(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	plan, err := h.service.Suggest(r.Context(), req)
	if err != nil {
		h.logger.Error("workout suggestion failed", "error", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Something went wrong."))
		return
	}
	if plan == nil {
		plan = []PlanExercise{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]PlanExercise{"exercises": plan})
}

// RegisterRoutes mounts the suggestion endpoint on the router
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/getSuggestedWorkout", h.GetSuggestedWorkout)
}
