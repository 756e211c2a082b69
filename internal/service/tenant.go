package service

import (
	"errors"
	"fmt"

	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	apperrors "github.com/Niraj123466/saas-notes-backend/internal/errors"
	"github.com/Niraj123466/saas-notes-backend/internal/logger"
	"github.com/Niraj123466/saas-notes-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantService handles business logic for tenants
type TenantService struct {
	tenantRepo repository.TenantRepositoryInterface
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepositoryInterface) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Plan      models.TenantPlan `json:"plan"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// UpgradeTenantResponse represents the response for a plan upgrade
type UpgradeTenantResponse struct {
	Message string         `json:"message"`
	Tenant  TenantResponse `json:"tenant"`
}

// Upgrade flips a tenant's plan to PRO. The tenant is resolved by slug, but an
// admin may only upgrade their own tenant: the resolved id must match the
// caller's tenant id from the token. Upgrading an already-PRO tenant succeeds
// idempotently.
func (s *TenantService) Upgrade(slug string, callerTenantID uuid.UUID) (*UpgradeTenantResponse, error) {
	tenant, err := s.tenantRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.ID != callerTenantID {
		return nil, apperrors.ErrCrossTenantUpgrade
	}

	if tenant.Plan == models.TenantPlanPro {
		return &UpgradeTenantResponse{
			Message: "Tenant is already on the PRO plan",
			Tenant:  *s.toResponse(tenant),
		}, nil
	}

	tenant.Plan = models.TenantPlanPro
	if err := s.tenantRepo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to upgrade tenant: %w", err)
	}

	logger.New().WithField("tenant_id", tenant.ID).Infof("Tenant %s upgraded to PRO", tenant.Slug)

	return &UpgradeTenantResponse{
		Message: "Tenant upgraded to PRO",
		Tenant:  *s.toResponse(tenant),
	}, nil
}

func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Slug:      tenant.Slug,
		Plan:      tenant.Plan,
		CreatedAt: formatTime(tenant.CreatedAt),
		UpdatedAt: formatTime(tenant.UpdatedAt),
	}
}
