package models

// Tenant represents the root entity for multi-tenancy
type Tenant struct {
	BaseModel
	Name string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug string     `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Plan TenantPlan `json:"plan" gorm:"type:varchar(10);not null;default:'FREE'"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:RESTRICT"`
	Notes []Note `json:"notes,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
