package weight

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gymtracker-app/backend/internal/auth"
	"github.com/gymtracker-app/backend/internal/httputil"
	"github.com/gymtracker-app/backend/internal/repository"
)

// Handler handles HTTP requests for weight entries
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a new weight Handler instance
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// AddWeightEntry records a body-weight measurement
// POST /addWeightEntry
func (h *Handler) AddWeightEntry(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if _, err := h.service.Add(r.Context(), req); err != nil {
		if errors.Is(err, auth.ErrInvalidAuthKey) {
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
			return
		}
		h.internalError(w, r, "weight entry insert failed", err)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Weight entry added successfully")
}

// GetWeightEntries returns the caller's weight history, oldest first
// GET /getWeightEntries?authKey=...
func (h *Handler) GetWeightEntries(w http.ResponseWriter, r *http.Request) {
	authKey := r.URL.Query().Get("authKey")

	entries, err := h.service.List(r.Context(), authKey)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidAuthKey) {
			httputil.WriteMessage(w, http.StatusForbidden, "Invalid Auth key")
			return
		}
		h.internalError(w, r, "weight entry list failed", err)
		return
	}
	if entries == nil {
		entries = []repository.WeightEntry{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]repository.WeightEntry{"weightEntries": entries})
}

// internalError logs the underlying cause and answers with a generic 500
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg, "error", err, "path", r.URL.Path)
	httputil.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
}

// RegisterRoutes mounts the weight endpoints on the router
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/addWeightEntry", h.AddWeightEntry)
	r.Get("/getWeightEntries", h.GetWeightEntries)
}
