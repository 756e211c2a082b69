package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// QuotaExceededError represents an error when a plan limit is reached
type QuotaExceededError struct {
	Message string
}

func (e *QuotaExceededError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound   = &NotFoundError{Entity: "user"}
	ErrNoteNotFound   = &NotFoundError{Entity: "note"}
)

// Authentication Errors
var (
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so the response does not reveal which check failed.
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingAuthHeader  = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidAuthHeader  = &AuthenticationError{Message: "invalid authorization header format"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Authorization Errors
var (
	ErrInsufficientRole   = &AuthorizationError{Message: "insufficient role for this operation"}
	ErrCrossTenantUpgrade = &AuthorizationError{Message: "cannot upgrade a different tenant"}
)

// Quota Errors
var (
	ErrNoteQuotaExceeded = &QuotaExceededError{Message: "free plan note limit reached, upgrade to PRO to add more notes"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsQuotaExceeded checks if an error is a QuotaExceededError
func IsQuotaExceeded(err error) bool {
	var quotaErr *QuotaExceededError
	return errors.As(err, &quotaErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
