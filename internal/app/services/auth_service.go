package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/aditya/universe/internal/app/models"
	"github.com/aditya/universe/internal/app/models/dto"
	"github.com/aditya/universe/internal/app/repositories"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// AuthService defines the interface for signup and login
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo repositories.UserStore
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup registers a new student account. The email is stored lowercased and
// the student identifier uppercased, both trimmed; duplicates on either
// unique field fail with a conflict regardless of the other fields.
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	studentID := strings.ToUpper(strings.TrimSpace(req.StudentID))

	exists, err := s.userRepo.ExistsByEmailOrStudentID(ctx, email, studentID)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Signup existence check failed")
		return nil, apperrors.NewPersistenceError("Server error during signup")
	}
	if exists {
		return nil, apperrors.NewConflictError("User with this email or student ID already exists")
	}

	user := &models.User{
		ID:         xid.New().String(),
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Password:   req.Password,
		StudentID:  studentID,
		JoinedDate: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique constraints may fire under a signup race; same outcome
		// as the pre-check.
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("User with this email or student ID already exists")
		}
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, apperrors.NewPersistenceError("Server error during signup")
	}

	return projectUser(user), nil
}

// Login authenticates by exact clear-text password comparison. The supplied
// email is lowercased and trimmed before lookup, the same normalization
// applied at signup. A missing account and a wrong password are
// indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
		}
		s.logger.Error().Err(err).Msg("Login lookup failed")
		return nil, apperrors.NewPersistenceError("Server error during login")
	}

	if user.Password != req.Password {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
	}

	return projectUser(user), nil
}

// projectUser returns the public projection of an account; the password
// never leaves the service.
func projectUser(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		StudentID: user.StudentID,
	}
}
