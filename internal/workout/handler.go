package workout

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gymtracker-app/backend/internal/auth"
	"github.com/gymtracker-app/backend/internal/httputil"
	"github.com/gymtracker-app/backend/internal/repository"
)

// Handler handles HTTP requests for workouts and workout sets
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a new workout Handler instance
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

type insertResponse struct {
	Message   string `json:"message"`
	WorkoutID int64  `json:"workoutId"`
}

type insertSetResponse struct {
	Message string `json:"message"`
	SetID   int64  `json:"setId"`
}

// InsertWorkout logs a new workout session
// POST /insertWorkout
func (h *Handler) InsertWorkout(w http.ResponseWriter, r *http.Request) {
	var req InsertRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, err := h.service.Insert(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidAuthKey):
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
		case errors.Is(err, auth.ErrNotOwner):
			httputil.WriteMessage(w, http.StatusForbidden, "Auth key does not match user")
		case errors.Is(err, repository.ErrDuplicateWorkoutID):
			httputil.WriteMessage(w, http.StatusConflict, "Workout ID already exists")
		default:
			h.internalError(w, r, "workout insert failed", err)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, insertResponse{
		Message:   "Workout logged successfully",
		WorkoutID: id,
	})
}

// InsertWorkoutSet logs one set against an existing workout
// POST /insertWorkoutSet
func (h *Handler) InsertWorkoutSet(w http.ResponseWriter, r *http.Request) {
	var req InsertSetRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, err := h.service.InsertSet(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrWorkoutNotFound):
			httputil.WriteMessage(w, http.StatusNotFound, "Workout not found")
		case errors.Is(err, auth.ErrInvalidAuthKey):
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
		case errors.Is(err, auth.ErrNotOwner):
			httputil.WriteMessage(w, http.StatusForbidden, "Auth key does not match user")
		default:
			h.internalError(w, r, "workout set insert failed", err)
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, insertSetResponse{
		Message: "Workout set logged successfully",
		SetID:   id,
	})
}

// GetUserWorkouts returns every workout a user has logged, newest first
// GET /getUserWorkouts?userID=...
func (h *Handler) GetUserWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userID"), 10, 64)
	if err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	workouts, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "workout list failed", err)
		return
	}
	if workouts == nil {
		workouts = []repository.Workout{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]repository.Workout{"exercises": workouts})
}

// GetAllUserSets returns every set the caller has logged across all
// workouts, optionally filtered by exercise name
// GET /getAllUserSets?authKey=...&exerciseType=...
func (h *Handler) GetAllUserSets(w http.ResponseWriter, r *http.Request) {
	authKey := r.URL.Query().Get("authKey")
	exerciseType := r.URL.Query().Get("exerciseType")

	sets, err := h.service.ListUserSets(r.Context(), authKey, exerciseType)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidAuthKey) {
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
			return
		}
		h.internalError(w, r, "user set list failed", err)
		return
	}
	if sets == nil {
		sets = []repository.UserSet{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]repository.UserSet{"sets": sets})
}

// GetWorkoutSets returns the sets of one workout owned by the caller
// GET /getWorkoutSets?workoutID=...&authKey=...
func (h *Handler) GetWorkoutSets(w http.ResponseWriter, r *http.Request) {
	workoutID, err := strconv.ParseInt(r.URL.Query().Get("workoutID"), 10, 64)
	if err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	authKey := r.URL.Query().Get("authKey")

	sets, err := h.service.ListSets(r.Context(), workoutID, authKey)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrWorkoutNotFound):
			httputil.WriteMessage(w, http.StatusNotFound, "Workout not found")
		case errors.Is(err, auth.ErrInvalidAuthKey):
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
		case errors.Is(err, auth.ErrNotOwner):
			httputil.WriteMessage(w, http.StatusForbidden, "Auth key does not match user")
		default:
			h.internalError(w, r, "workout set list failed", err)
		}
		return
	}
	if sets == nil {
		sets = []repository.WorkoutSet{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string][]repository.WorkoutSet{"sets": sets})
}

// UpdateWorkoutSet overwrites weight and reps of one set
// POST /updateWorkoutSet
func (h *Handler) UpdateWorkoutSet(w http.ResponseWriter, r *http.Request) {
	var req UpdateSetRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.service.UpdateSet(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, repository.ErrWorkoutSetNotFound):
			httputil.WriteMessage(w, http.StatusNotFound, "Workout set not found")
		case errors.Is(err, auth.ErrInvalidAuthKey):
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
		case errors.Is(err, auth.ErrNotOwner):
			httputil.WriteMessage(w, http.StatusForbidden, "Auth key does not match user")
		default:
			h.internalError(w, r, "workout set update failed", err)
		}
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Workout set updated successfully")
}

// DeleteWorkout removes a workout and all of its sets. A workout that
// exists but belongs to another user reports not-found.
// POST /deleteWorkout
func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.service.Delete(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidAuthKey):
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
		case errors.Is(err, repository.ErrWorkoutNotFound):
			httputil.WriteMessage(w, http.StatusNotFound, "Workout not found or does not belong to the user")
		default:
			h.internalError(w, r, "workout delete failed", err)
		}
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Workout deleted successfully")
}

// internalError logs the underlying cause and answers with a generic 500
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg, "error", err, "path", r.URL.Path)
	httputil.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
}

// RegisterRoutes mounts the workout endpoints on the router
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/insertWorkout", h.InsertWorkout)
	r.Post("/insertWorkoutSet", h.InsertWorkoutSet)
	r.Get("/getUserWorkouts", h.GetUserWorkouts)
	r.Get("/getAllUserSets", h.GetAllUserSets)
	r.Get("/getWorkoutSets", h.GetWorkoutSets)
	r.Post("/updateWorkoutSet", h.UpdateWorkoutSet)
	r.Post("/deleteWorkout", h.DeleteWorkout)
}
