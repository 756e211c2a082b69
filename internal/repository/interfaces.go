package repository

import (
	"github.com/Niraj123466/saas-notes-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	Update(tenant *models.Tenant) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Delete(id uuid.UUID) error
}

// NoteRepositoryInterface defines the interface for note repository operations.
// Every read and mutation is scoped by tenant id; a note id from another
// tenant must behave as if the note does not exist.
type NoteRepositoryInterface interface {
	Create(note *models.Note) error
	GetByIDAndTenant(id, tenantID uuid.UUID) (*models.Note, error)
	ListByTenant(tenantID uuid.UUID) ([]models.Note, error)
	CountByTenant(tenantID uuid.UUID) (int64, error)
	Update(note *models.Note) error
	Delete(note *models.Note) error
}
