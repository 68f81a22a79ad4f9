package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gymtracker-app/backend/internal/httputil"
)

// AuthHandler handles HTTP requests for registration, login, password
// changes and auth-key resolution.
type AuthHandler struct {
	authService *AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService *AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// userEnvelope wraps the user record returned by login and getUser.
// The password hash is excluded by the model's JSON tags.
type userEnvelope struct {
	Message string      `json:"message,omitempty"`
	User    interface{} `json:"user"`
}

// Register handles user registration
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	validationErrors, err := h.authService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			httputil.WriteMessage(w, http.StatusConflict, "Email address already in use")
			return
		}
		h.internalError(w, r, "registration failed", err)
		return
	}

	if len(validationErrors) > 0 {
		httputil.WriteMessage(w, http.StatusBadRequest, validationErrors[0].Message)
		return
	}

	httputil.WriteMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles user authentication
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.internalError(w, r, "login failed", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, userEnvelope{
		Message: "Login successful",
		User:    user,
	})
}

// UpdatePassword handles password changes
// POST /updatePassword
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	validationErrors, err := h.authService.ChangePassword(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAuthKey):
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
		case errors.Is(err, ErrWrongPassword):
			httputil.WriteMessage(w, http.StatusUnauthorized, "Old password is incorrect")
		default:
			h.internalError(w, r, "password update failed", err)
		}
		return
	}

	if len(validationErrors) > 0 {
		httputil.WriteMessage(w, http.StatusBadRequest, validationErrors[0].Message)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Password updated successfully")
}

// GetUserID resolves an auth key to the holder's user id
// GET /getUserID?authKey=...
func (h *AuthHandler) GetUserID(w http.ResponseWriter, r *http.Request) {
	authKey := r.URL.Query().Get("authKey")

	userID, err := h.authService.ResolveKey(r.Context(), authKey)
	if err != nil {
		if errors.Is(err, ErrInvalidAuthKey) {
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
			return
		}
		h.internalError(w, r, "auth key resolution failed", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]int64{"userId": userID})
}

// GetUser returns the account record for an auth key, minus the password hash
// GET /getUser?authKey=...
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	authKey := r.URL.Query().Get("authKey")

	user, err := h.authService.GetUserByKey(r.Context(), authKey)
	if err != nil {
		if errors.Is(err, ErrInvalidAuthKey) {
			httputil.WriteMessage(w, http.StatusUnauthorized, "Invalid Auth key")
			return
		}
		h.internalError(w, r, "user lookup failed", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, userEnvelope{User: user})
}

// internalError logs the underlying cause and answers with a generic 500
func (h *AuthHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg, "error", err, "path", r.URL.Path)
	httputil.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
}
