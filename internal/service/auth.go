package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	apperrors "github.com/Niraj123466/saas-notes-backend/internal/errors"
	"github.com/Niraj123466/saas-notes-backend/internal/repository"

	"github.com/Niraj123466/saas-notes-backend/internal/auth"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles credential verification and token issuance
type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	tokens    TokenIssuer
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepositoryInterface, tokens TokenIssuer, validator *validator.Validate) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents the login credentials. Email is an opaque lookup
// key: only presence is validated, so any non-matching value falls through to
// the same credential failure as a wrong password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the sanitized user view returned by login.
// The password hash must never appear here.
type UserResponse struct {
	ID       uuid.UUID       `json:"id"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	TenantID uuid.UUID       `json:"tenant_id"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Login verifies the credentials and issues a signed token.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response does not reveal which check failed.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "email and password are required")
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User: UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Role:     user.Role,
			TenantID: user.TenantID,
		},
	}, nil
}

// formatTime renders timestamps the way all service responses do
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
