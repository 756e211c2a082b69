package models

import (
	"github.com/google/uuid"
)

// User represents an authenticated member of a tenant.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	BaseModel
	Email    string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password string    `json:"-" gorm:"not null;size:100"`
	Role     UserRole  `json:"role" gorm:"type:varchar(10);not null;default:'MEMBER'"`
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
