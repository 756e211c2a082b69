package repository

import (
	"github.com/Niraj123466/saas-notes-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteRepository handles database operations for notes.
// All lookups carry the tenant id predicate; this is the tenant-isolation
// mechanism, so no method ever queries by note id alone.
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a new note
func (r *NoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByIDAndTenant retrieves a note matched by id AND tenant id
func (r *NoteRepository) GetByIDAndTenant(id, tenantID uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByTenant retrieves all notes of a tenant, most recent first
func (r *NoteRepository) ListByTenant(tenantID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// CountByTenant counts the live notes of a tenant
func (r *NoteRepository) CountByTenant(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Update updates a note
func (r *NoteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// Delete deletes a note
func (r *NoteRepository) Delete(note *models.Note) error {
	return r.db.Delete(note).Error
}
