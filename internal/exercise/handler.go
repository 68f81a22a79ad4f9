package exercise

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gymtracker-app/backend/internal/httputil"
)

// Handler handles the exercise catalog endpoint
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a new exercise Handler instance
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// exerciseName mirrors the row shape of the distinct-names query
type exerciseName struct {
	Name string `json:"name"`
}

// GetExercises returns all distinct exercise names, sorted
// GET /getExercises
func (h *Handler) GetExercises(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.DistinctNames(r.Context())
	if err != nil {
		h.logger.Error("exercise catalog query failed", "error", err)
		httputil.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	rows := make([]exerciseName, 0, len(names))
	for _, name := range names {
		rows = append(rows, exerciseName{Name: name})
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]exerciseName{"exercises": rows})
}

// RegisterRoutes registers the exercise routes with the Chi router
func RegisterRoutes(r chi.Router, handler *Handler) {
	r.Get("/getExercises", handler.GetExercises)
}
