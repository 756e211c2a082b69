package handlers

import (
	"net/http"

	"github.com/Niraj123466/saas-notes-backend/internal/auth"
	apperrors "github.com/Niraj123466/saas-notes-backend/internal/errors"
	"github.com/Niraj123466/saas-notes-backend/internal/logger"
	"github.com/Niraj123466/saas-notes-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// UpgradeTenant handles POST /tenants/:slug/upgrade
// @Summary Upgrade a tenant to PRO
// @Description Flip the caller's own tenant to the PRO plan. ADMIN only; idempotent when already PRO.
// @Tags tenants
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} service.UpgradeTenantResponse "Upgraded (or already PRO) tenant"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 403 {object} map[string]interface{} "Not an admin or not the caller's tenant"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tenants/{slug}/upgrade [post]
func (h *TenantHandler) UpgradeTenant(c *gin.Context) {
	tenantID, exists := auth.GetTenantID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	slug := c.Param("slug")
	resp, err := h.service.Upgrade(slug, tenantID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.WithContext(c.Request.Context()).WithError(err).Error("tenant upgrade failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
