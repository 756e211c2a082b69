package service

import (
	"github.com/Niraj123466/saas-notes-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TokenIssuer signs stateless session tokens for authenticated users.
// Implemented by auth.Service.
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

// AuthServiceInterface defines the interface for authentication operations
type AuthServiceInterface interface {
	Login(req *LoginRequest) (*LoginResponse, error)
}

// NoteServiceInterface defines the interface for note operations
type NoteServiceInterface interface {
	Create(userID, tenantID uuid.UUID, req *CreateNoteRequest) (*NoteResponse, error)
	List(tenantID uuid.UUID) (*NoteListResponse, error)
	Get(id, tenantID uuid.UUID) (*NoteResponse, error)
	Update(id, tenantID uuid.UUID, req *UpdateNoteRequest) (*NoteResponse, error)
	Delete(id, tenantID uuid.UUID) error
}

// TenantServiceInterface defines the interface for tenant operations
type TenantServiceInterface interface {
	Upgrade(slug string, callerTenantID uuid.UUID) (*UpgradeTenantResponse, error)
}
