package testutils

import (
	"fmt"
	"time"

	"github.com/Niraj123466/saas-notes-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all model factories for convenience
type FactorySet struct {
	Tenant *TenantFactory
	User   *UserFactory
	Note   *NoteFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant: NewTenantFactory(),
		User:   NewUserFactory(),
		Note:   NewNoteFactory(),
	}
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Tenant",
		// Slug is unique; derive it from the id to avoid conflicts
		Slug: "tenant-" + id.String()[:8],
		Plan: models.TenantPlanFree,
	}
}

// WithSlug sets a custom slug for the tenant
func (f *TenantFactory) WithSlug(slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Slug = slug
	return tenant
}

// WithPlan sets a custom plan for the tenant
func (f *TenantFactory) WithPlan(plan models.TenantPlan) *models.Tenant {
	tenant := f.Create()
	tenant.Plan = plan
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:    fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Password: "$2a$10$u7bp6rSx8xRiHBdWijudE.y5goh2cYbQ6pV5epP3t5pPMo2x2wQvW", // bcrypt("password")
		Role:     models.UserRoleMember,
		TenantID: uuid.New(),
	}
}

// ForTenant binds the user to a tenant
func (f *UserFactory) ForTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.TenantID = tenantID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// NoteFactory provides methods to create test Note data
type NoteFactory struct{}

// NewNoteFactory creates a new NoteFactory
func NewNoteFactory() *NoteFactory {
	return &NoteFactory{}
}

// Create creates a test Note with default values
func (f *NoteFactory) Create() *models.Note {
	return &models.Note{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:    "Test Note",
		Content:  "Test note content",
		TenantID: uuid.New(),
	}
}

// ForTenant binds the note to a tenant
func (f *NoteFactory) ForTenant(tenantID uuid.UUID) *models.Note {
	note := f.Create()
	note.TenantID = tenantID
	return note
}

// ForTenantAndOwner binds the note to a tenant and an owning user
func (f *NoteFactory) ForTenantAndOwner(tenantID, ownerID uuid.UUID) *models.Note {
	note := f.ForTenant(tenantID)
	note.OwnerID = &ownerID
	return note
}
