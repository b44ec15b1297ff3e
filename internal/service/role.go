package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/types"
)

var (
	ErrSystemRole   = errors.New("system role cannot be modified")
	ErrRoleExists   = errors.New("role already exists")
	ErrRoleAssigned = errors.New("role is assigned to employees")
)

// RoleService manages roles and their permission tables.
type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// EnsureDefaults seeds the protected Super Admin role and a first set of
// working roles when the table is empty.
func (s *RoleService) EnsureDefaults(ctx context.Context) error {
	var superAdmin models.Role
	err := s.db.WithContext(ctx).Where("name = ?", models.SuperAdminRole).First(&superAdmin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		superAdmin = models.Role{
			Name:        models.SuperAdminRole,
			Description: "All permissions (system)",
			System:      true,
			Permissions: models.FullPermissions(),
		}
		if err := s.db.WithContext(ctx).Create(&superAdmin).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	defaults := map[string]models.JSONBPermissions{
		"Admin":   models.FullPermissions(),
		"Manager": readCreateUpdatePermissions(),
		"Tester":  readOnlyPermissions(),
	}
	for name, perms := range defaults {
		var existing models.Role
		err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		role := models.Role{Name: name, Description: name, Permissions: perms}
		if err := s.db.WithContext(ctx).Create(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateRole creates a new role. The Super Admin name is reserved.
func (s *RoleService) CreateRole(ctx context.Context, req *types.CreateRoleRequest) (*models.Role, error) {
	if req.Name == models.SuperAdminRole {
		return nil, ErrSystemRole
	}
	var existing models.Role
	if err := s.db.WithContext(ctx).Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrRoleExists
	}
	role := &models.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: models.JSONBPermissions(req.Permissions),
	}
	if role.Permissions == nil {
		role.Permissions = models.JSONBPermissions{}
	}
	if err := s.db.WithContext(ctx).Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// GetRole retrieves a role by ID.
func (s *RoleService) GetRole(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	var role models.Role
	if err := s.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// GetRoleByName retrieves a role by its unique name.
func (s *RoleService) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole updates a role's description or permissions. System roles are
// immutable.
func (s *RoleService) UpdateRole(ctx context.Context, id uuid.UUID, req *types.UpdateRoleRequest) (*models.Role, error) {
	var role models.Role
	if err := s.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if role.System {
		return nil, ErrSystemRole
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.Permissions != nil {
		role.Permissions = models.JSONBPermissions(req.Permissions)
	}
	if err := s.db.WithContext(ctx).Save(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole deletes a role unless it is a system role or still assigned.
func (s *RoleService) DeleteRole(ctx context.Context, id uuid.UUID) error {
	var role models.Role
	if err := s.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		return err
	}
	if role.System {
		return ErrSystemRole
	}
	var assigned int64
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).Where("role_id = ?", id).Count(&assigned).Error; err != nil {
		return err
	}
	if assigned > 0 {
		return ErrRoleAssigned
	}
	return s.db.WithContext(ctx).Delete(&role).Error
}

// ListRoles lists all roles.
func (s *RoleService) ListRoles(ctx context.Context) ([]*models.Role, error) {
	var roles []models.Role
	if err := s.db.WithContext(ctx).Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Role, len(roles))
	for i := range roles {
		result[i] = &roles[i]
	}
	return result, nil
}

func readCreateUpdatePermissions() models.JSONBPermissions {
	perms := models.JSONBPermissions{}
	for _, m := range models.Modules {
		perms[m] = []string{"read", "create", "update"}
	}
	return perms
}

func readOnlyPermissions() models.JSONBPermissions {
	perms := models.JSONBPermissions{}
	for _, m := range models.Modules {
		perms[m] = []string{"read"}
	}
	return perms
}
