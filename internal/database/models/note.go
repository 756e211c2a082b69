package models

import (
	"github.com/google/uuid"
)

// Note represents a note owned by a tenant.
// OwnerID is nullable: deleting a user keeps their notes with owner set to null.
type Note struct {
	BaseModel
	Title    string     `json:"title" gorm:"not null" validate:"required"`
	Content  string     `json:"content" gorm:"type:text;not null" validate:"required"`
	TenantID uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;index"`
	OwnerID  *uuid.UUID `json:"owner_id,omitempty" gorm:"type:uuid;index"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Owner  *User   `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "notes"
}
