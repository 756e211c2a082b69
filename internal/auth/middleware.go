package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	apperrors "github.com/Niraj123466/saas-notes-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth
const (
	ContextKeyUserID   = "user_id"
	ContextKeyTenantID = "tenant_id"
	ContextKeyRole     = "role"
	ContextKeyClaims   = "auth_claims"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates bearer tokens and sets the caller identity on the context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingAuthHeader.Error()})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidAuthHeader.Error()})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		// Set caller identity
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyTenantID, claims.TenantID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		// Mirror the identity onto the request context for loggers and
		// anything running below the gin layer
		ctx := context.WithValue(c.Request.Context(), ContextKeyUserID, claims.UserID.String())
		ctx = context.WithValue(ctx, ContextKeyTenantID, claims.TenantID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole enforces an exact role on the identity attached by RequireAuth.
// Responds 401 when no identity is attached (gate ordering violated) and 403
// when the role does not match.
func (m *Middleware) RequireRole(required models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetRole(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if role != required {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInsufficientRole.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID is a helper function to extract the caller's user id from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetTenantID is a helper function to extract the caller's tenant id from context
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeyTenantID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetRole is a helper function to extract the caller's role from context
func GetRole(c *gin.Context) (models.UserRole, bool) {
	value, exists := c.Get(ContextKeyRole)
	if !exists {
		return "", false
	}

	role, ok := value.(models.UserRole)
	return role, ok
}

// GetClaims is a helper function to extract the full claims from context
func GetClaims(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*Claims)
	return claims, ok
}
