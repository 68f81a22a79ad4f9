package template

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gymtracker-app/backend/internal/httputil"
	"github.com/gymtracker-app/backend/internal/repository"
)

// Handler handles HTTP requests for workout templates
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a new template Handler instance
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// InsertTemplate creates a template with its ordered sets
// POST /insertTemplate
func (h *Handler) InsertTemplate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	templateID, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.internalError(w, "template creation failed", err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Template created successfully",
		"templateId": templateID,
	})
}

// GetPrivateTemplates lists a user's private templates
// GET /getPrivateTemplates?userID=...
func (h *Handler) GetPrivateTemplates(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userID"), 10, 64)
	if err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	templates, err := h.service.ListPrivate(r.Context(), userID)
	if err != nil {
		h.internalError(w, "private template listing failed", err)
		return
	}
	if templates == nil {
		templates = []repository.Template{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]repository.Template{"templates": templates})
}

// GetTemplates lists all public templates
// GET /getTemplates
func (h *Handler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListPublic(r.Context())
	if err != nil {
		h.internalError(w, "public template listing failed", err)
		return
	}
	if templates == nil {
		templates = []repository.Template{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]repository.Template{"templates": templates})
}

// GetTemplateSets lists one template's sets in prescription order
// GET /getTemplateSets?templateID=...
func (h *Handler) GetTemplateSets(w http.ResponseWriter, r *http.Request) {
	templateID, err := strconv.ParseInt(r.URL.Query().Get("templateID"), 10, 64)
	if err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	sets, err := h.service.ListSets(r.Context(), templateID)
	if err != nil {
		h.internalError(w, "template set listing failed", err)
		return
	}
	if sets == nil {
		sets = []repository.TemplateSet{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]repository.TemplateSet{"sets": sets})
}

func (h *Handler) internalError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)
	httputil.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
}

// RegisterRoutes registers the template routes with the Chi router
func RegisterRoutes(r chi.Router, handler *Handler) {
	r.Post("/insertTemplate", handler.InsertTemplate)
	r.Get("/getPrivateTemplates", handler.GetPrivateTemplates)
	r.Get("/getTemplates", handler.GetTemplates)
	r.Get("/getTemplateSets", handler.GetTemplateSets)
}
