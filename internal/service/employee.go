package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/types"
)

var ErrEmployeeExists = errors.New("employee already exists")

// EmployeeService manages staff accounts.
type EmployeeService struct {
	db    *gorm.DB
	roles *RoleService
}

func NewEmployeeService(db *gorm.DB, roles *RoleService) *EmployeeService {
	return &EmployeeService{db: db, roles: roles}
}

// CreateEmployee creates a staff account with a hashed password and the
// named role.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req *types.CreateEmployeeRequest) (*models.Employee, error) {
	var existing models.Employee
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmployeeExists
	}

	role, err := s.roles.GetRoleByName(ctx, req.Role)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Title:        req.Title,
		Active:       true,
		RoleID:       role.ID,
	}
	if err := s.db.WithContext(ctx).Create(employee).Error; err != nil {
		return nil, err
	}
	employee.Role = role
	return employee, nil
}

// GetEmployee retrieves a staff account with its role.
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).Preload("Role").First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// UpdateEmployee updates the provided fields; a role change resolves the
// role by name.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, req *types.UpdateEmployeeRequest) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Title != "" {
		employee.Title = req.Title
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}
	if req.Role != "" {
		role, err := s.roles.GetRoleByName(ctx, req.Role)
		if err != nil {
			return nil, err
		}
		employee.RoleID = role.ID
	}
	if err := s.db.WithContext(ctx).Save(&employee).Error; err != nil {
		return nil, err
	}
	return s.GetEmployee(ctx, id)
}

// DeleteEmployee soft-deletes a staff account.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&employee).Error
}

// ListEmployees lists staff accounts with their roles.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Preload("Role").Order("name").Find(&employees).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Employee, len(employees))
	for i := range employees {
		result[i] = &employees[i]
	}
	return result, nil
}
