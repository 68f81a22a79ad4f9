package auth

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"github.com/gymtracker-app/backend/internal/repository"
)

// Auth service errors
var (
	ErrEmailExists        = errors.New("email address already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidAuthKey     = errors.New("invalid auth key")
	ErrNotOwner           = errors.New("authenticated user does not own the resource")
	ErrWrongPassword      = errors.New("old password is incorrect")
)

// emailRegex matches the local@domain.tld shape accepted at registration
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents the password update request payload
type ChangePasswordRequest struct {
	AuthKey     string `json:"authKey" validate:"required"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ValidationError represents a validation error with field details
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AuthService owns credential storage, auth-key issuance and the
// ownership check every resource-scoped operation runs through.
type AuthService struct {
	userRepo          repository.UserRepository
	keyService        *KeyService
	passwordValidator *PasswordValidator
	logger            *slog.Logger
	now               func() time.Time
}

// NewAuthService creates a new AuthService instance
func NewAuthService(
	userRepo repository.UserRepository,
	keyService *KeyService,
	passwordValidator *PasswordValidator,
	logger *slog.Logger,
) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		userRepo:          userRepo,
		keyService:        keyService,
		passwordValidator: passwordValidator,
		logger:            logger,
		now:               time.Now,
	}
}

// Register validates the input, hashes the password and creates the user
// with a fresh auth key expiring in KeyTTL.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) ([]ValidationError, error) {
	var validationErrors []ValidationError

	if !emailRegex.MatchString(req.Email) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "email",
			Message: "Invalid email format",
		})
	}

	for _, pe := range s.passwordValidator.ValidatePassword(req.Password) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   pe.Field,
			Message: pe.Message,
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors, nil
	}

	passwordHash, err := s.passwordValidator.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	authKey, err := s.keyService.Generate()
	if err != nil {
		return nil, err
	}

	user := &repository.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PasswordHash:  passwordHash,
		AuthKey:       authKey,
		AuthKeyExpiry: s.keyService.ExpiryFrom(s.now()),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return nil, nil
}

// Login authenticates the user and returns the account record with a
// valid auth key. A single ErrInvalidCredentials covers both an unknown
// email and a wrong password, so a caller cannot tell which was wrong.
// When the stored key has expired it is regenerated before returning;
// otherwise the existing key is handed back untouched.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*repository.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.passwordValidator.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if now.After(user.AuthKeyExpiry) {
		authKey, err := s.keyService.Generate()
		if err != nil {
			return nil, err
		}
		expiry := s.keyService.ExpiryFrom(now)
		if err := s.userRepo.UpdateAuthKey(ctx, user.ID, authKey, expiry); err != nil {
			return nil, err
		}
		user.AuthKey = authKey
		user.AuthKeyExpiry = expiry
	}

	return user, nil
}

// ResolveKey maps an auth key to the holding user's id. Expiry is not
// re-checked here: a key stays resolvable until the login path or the
// background sweep rotates it.
func (s *AuthService) ResolveKey(ctx context.Context, authKey string) (int64, error) {
	if authKey == "" {
		return 0, ErrInvalidAuthKey
	}

	user, err := s.userRepo.GetByAuthKey(ctx, authKey)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrInvalidAuthKey
		}
		return 0, err
	}

	return user.ID, nil
}

// Authorize resolves the auth key and checks that its holder owns the
// resource. The two failure modes stay distinguishable: ErrInvalidAuthKey
// when the key does not resolve, ErrNotOwner when it resolves to a
// different user.
func (s *AuthService) Authorize(ctx context.Context, authKey string, ownerID int64) (int64, error) {
	userID, err := s.ResolveKey(ctx, authKey)
	if err != nil {
		return 0, err
	}
	if userID != ownerID {
		return 0, ErrNotOwner
	}
	return userID, nil
}

// GetUserByKey returns the full account record for an auth key
func (s *AuthService) GetUserByKey(ctx context.Context, authKey string) (*repository.User, error) {
	if authKey == "" {
		return nil, ErrInvalidAuthKey
	}

	user, err := s.userRepo.GetByAuthKey(ctx, authKey)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidAuthKey
		}
		return nil, err
	}

	return user, nil
}

// ChangePassword resolves the auth key, verifies the old password and
// stores the hash of the new one after running it through the policy.
func (s *AuthService) ChangePassword(ctx context.Context, req ChangePasswordRequest) ([]ValidationError, error) {
	var validationErrors []ValidationError
	for _, pe := range s.passwordValidator.ValidatePassword(req.NewPassword) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "newPassword",
			Message: pe.Message,
		})
	}
	if len(validationErrors) > 0 {
		return validationErrors, nil
	}

	user, err := s.GetUserByKey(ctx, req.AuthKey)
	if err != nil {
		return nil, err
	}

	if err := s.passwordValidator.VerifyPassword(req.OldPassword, user.PasswordHash); err != nil {
		return nil, ErrWrongPassword
	}

	passwordHash, err := s.passwordValidator.HashPassword(req.NewPassword)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
		return nil, err
	}

	s.logger.Info("password updated", "user_id", user.ID)
	return nil, nil
}

// RotateExpiredKeys assigns a new key and expiry to every user whose key
// expired before now. Callable on demand; the background sweeper runs it
// on a fixed interval. A concurrent login-triggered rotation for the same
// user is harmless: the keys are opaque and last writer wins.
func (s *AuthService) RotateExpiredKeys(ctx context.Context, now time.Time) (int, error) {
	users, err := s.userRepo.ListExpiredAuthKeys(ctx, now)
	if err != nil {
		return 0, err
	}

	rotated := 0
	for _, user := range users {
		authKey, err := s.keyService.Generate()
		if err != nil {
			return rotated, err
		}
		if err := s.userRepo.UpdateAuthKey(ctx, user.ID, authKey, s.keyService.ExpiryFrom(now)); err != nil {
			s.logger.Warn("failed to rotate auth key", "user_id", user.ID, "error", err)
			continue
		}
		rotated++
	}

	if rotated > 0 {
		s.logger.Info("rotated expired auth keys", "count", rotated)
	}
	return rotated, nil
}
