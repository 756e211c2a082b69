package service

import (
	"errors"
	"fmt"

	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	apperrors "github.com/Niraj123466/saas-notes-backend/internal/errors"
	"github.com/Niraj123466/saas-notes-backend/internal/logger"
	"github.com/Niraj123466/saas-notes-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteService handles business logic for notes, including the FREE-plan
// admission check on creation
type NoteService struct {
	noteRepo   repository.NoteRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
	freeLimit  int64
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo repository.NoteRepositoryInterface, tenantRepo repository.TenantRepositoryInterface, validator *validator.Validate, freeLimit int64) *NoteService {
	return &NoteService{
		noteRepo:   noteRepo,
		tenantRepo: tenantRepo,
		validator:  validator,
		freeLimit:  freeLimit,
	}
}

// CreateNoteRequest represents the request to create a note.
// Only presence is validated; there is no length cap on either field.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateNoteRequest represents the request to update a note.
// Both fields are overwritten unconditionally; there is no partial merge.
type UpdateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// NoteResponse represents the response for note operations
type NoteResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// NoteListResponse represents a list of notes, most recent first
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Total int            `json:"total"`
}

// Create creates a note bound to the caller's tenant and user identity.
// For FREE tenants the live note count is checked first; the count-then-create
// sequence is not atomic against concurrent creations (accepted race).
func (s *NoteService) Create(userID, tenantID uuid.UUID, req *CreateNoteRequest) (*NoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "title and content are required")
	}

	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Tokens can outlive tenant rows in pathological admin operations
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	if tenant.Plan == models.TenantPlanFree {
		count, err := s.noteRepo.CountByTenant(tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to count notes: %w", err)
		}
		if count >= s.freeLimit {
			logger.New().WithFields(map[string]interface{}{
				"tenant_id": tenantID,
				"count":     count,
			}).Info("Note creation rejected by free plan limit")
			return nil, apperrors.ErrNoteQuotaExceeded
		}
	}

	ownerID := userID
	note := &models.Note{
		Title:    req.Title,
		Content:  req.Content,
		TenantID: tenantID,
		OwnerID:  &ownerID,
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return s.toResponse(note), nil
}

// List retrieves all notes of the caller's tenant, most recent first
func (s *NoteService) List(tenantID uuid.UUID) (*NoteListResponse, error) {
	notes, err := s.noteRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, *s.toResponse(&notes[i]))
	}

	return &NoteListResponse{
		Notes: responses,
		Total: len(responses),
	}, nil
}

// Get retrieves a single note scoped to the caller's tenant.
// A note id belonging to another tenant resolves to not found.
func (s *NoteService) Get(id, tenantID uuid.UUID) (*NoteResponse, error) {
	note, err := s.noteRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return s.toResponse(note), nil
}

// Update overwrites title and content of a tenant-scoped note. Any member of
// the tenant may edit any of its notes; ownership is recorded, not enforced.
func (s *NoteService) Update(id, tenantID uuid.UUID, req *UpdateNoteRequest) (*NoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "title and content are required")
	}

	note, err := s.noteRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	note.Title = req.Title
	note.Content = req.Content

	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return s.toResponse(note), nil
}

// Delete removes a tenant-scoped note. The FREE-plan quota is evaluated live
// at creation time, so deleting frees capacity immediately.
func (s *NoteService) Delete(id, tenantID uuid.UUID) error {
	note, err := s.noteRepo.GetByIDAndTenant(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return fmt.Errorf("failed to get note: %w", err)
	}

	if err := s.noteRepo.Delete(note); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

func (s *NoteService) toResponse(note *models.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		TenantID:  note.TenantID,
		OwnerID:   note.OwnerID,
		CreatedAt: formatTime(note.CreatedAt),
		UpdatedAt: formatTime(note.UpdatedAt),
	}
}
