package models

// TenantPlan defines the subscription plan of a tenant
type TenantPlan string

const (
	TenantPlanFree TenantPlan = "FREE"
	TenantPlanPro  TenantPlan = "PRO"
)

// IsValid checks if the TenantPlan is valid
func (p TenantPlan) IsValid() bool {
	switch p {
	case TenantPlanFree, TenantPlanPro:
		return true
	}
	return false
}

// UserRole defines the role of a user within its tenant
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMember:
		return true
	}
	return false
}
