package handlers

import (
	"net/http"

	"github.com/Niraj123466/saas-notes-backend/internal/auth"
	apperrors "github.com/Niraj123466/saas-notes-backend/internal/errors"
	"github.com/Niraj123466/saas-notes-backend/internal/logger"
	"github.com/Niraj123466/saas-notes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler handles HTTP requests for notes
type NoteHandler struct {
	service service.NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(service service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{service: service}
}

// CreateNote handles POST /notes
// @Summary Create a note
// @Description Create a note owned by the caller's tenant, subject to the FREE plan limit
// @Tags notes
// @Accept json
// @Produce json
// @Param note body service.CreateNoteRequest true "Note data"
// @Success 201 {object} service.NoteResponse "Created note"
// @Failure 400 {object} map[string]interface{} "Missing title or content"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 402 {object} map[string]interface{} "Free plan note limit reached"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, tenantID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	note, err := h.service.Create(userID, tenantID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// ListNotes handles GET /notes
// @Summary List notes
// @Description List all notes of the caller's tenant, most recent first
// @Tags notes
// @Produce json
// @Success 200 {object} service.NoteListResponse "Notes of the caller's tenant"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	_, tenantID, ok := callerIdentity(c)
	if !ok {
		return
	}

	notes, err := h.service.List(tenantID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// GetNote handles GET /notes/:id
// @Summary Get a note
// @Description Get a single note by id within the caller's tenant
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 200 {object} service.NoteResponse "Note"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 404 {object} map[string]interface{} "Note not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	_, tenantID, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, ok := noteIDParam(c)
	if !ok {
		return
	}

	note, err := h.service.Get(id, tenantID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpdateNote handles PUT /notes/:id
// @Summary Update a note
// @Description Overwrite title and content of a note within the caller's tenant
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Param note body service.UpdateNoteRequest true "Note data"
// @Success 200 {object} service.NoteResponse "Updated note"
// @Failure 400 {object} map[string]interface{} "Missing title or content"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 404 {object} map[string]interface{} "Note not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	_, tenantID, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, ok := noteIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	note, err := h.service.Update(id, tenantID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote handles DELETE /notes/:id
// @Summary Delete a note
// @Description Delete a note within the caller's tenant
// @Tags notes
// @Produce json
// @Param id path string true "Note ID (UUID)"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 404 {object} map[string]interface{} "Note not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	_, tenantID, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, ok := noteIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id, tenantID); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NoteHandler) renderError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
	case apperrors.IsQuotaExceeded(err):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("note operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// callerIdentity extracts the token identity attached by the auth middleware
func callerIdentity(c *gin.Context) (userID, tenantID uuid.UUID, ok bool) {
	userID, hasUser := auth.GetUserID(c)
	tenantID, hasTenant := auth.GetTenantID(c)
	if !hasUser || !hasTenant {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
		return uuid.Nil, uuid.Nil, false
	}
	return userID, tenantID, true
}

func noteIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Malformed ids cannot match any row in scope
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return uuid.Nil, false
	}
	return id, true
}
