package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Modules that permissions can be granted on.
var Modules = []string{
	"Dashboard",
	"Customers",
	"Employees",
	"Appointments",
	"Testing",
	"Finance",
	"Reports",
	"Settings",
}

// Actions grantable per module.
var Actions = []string{"read", "create", "update", "delete"}

// SuperAdminRole is the protected system role with every permission.
const SuperAdminRole = "Super Admin"

// Role maps a role name to a module-to-actions permission table.
type Role struct {
	ID          uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
	Name        string           `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	System      bool             `gorm:"default:false" json:"system"`
	Permissions JSONBPermissions `gorm:"type:jsonb;not null;default:'{}'" json:"permissions"`
}

func (Role) TableName() string {
	return "roles"
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Allows reports whether the role grants action on module.
func (r *Role) Allows(module, action string) bool {
	if r.System && r.Name == SuperAdminRole {
		return true
	}
	for _, a := range r.Permissions[module] {
		if a == action {
			return true
		}
	}
	return false
}

// FullPermissions returns a permission table granting every action on
// every module.
func FullPermissions() JSONBPermissions {
	perms := JSONBPermissions{}
	for _, m := range Modules {
		perms[m] = append([]string(nil), Actions...)
	}
	return perms
}
