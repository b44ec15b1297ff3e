package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/types"
)

// CustomerService handles customer records.
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// CreateCustomer registers a new customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *types.CreateCustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Gender:  req.Gender,
		Address: req.Address,
		Notes:   req.Notes,
	}
	if req.BirthDate != "" {
		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err == nil {
			customer.BirthDate = &bd
		}
	}
	if err := s.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer updates the provided fields of a customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *types.UpdateCustomerRequest) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Gender != "" {
		customer.Gender = req.Gender
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.Notes != "" {
		customer.Notes = req.Notes
	}
	if err := s.db.WithContext(ctx).Save(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer soft-deletes a customer. Their analyses keep the dangling
// reference; an analysis never owns its customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&customer).Error
}

// ListCustomers lists customers, optionally filtered by a free-text search
// over name, email and phone.
func (s *CustomerService) ListCustomers(ctx context.Context, search string) ([]*models.Customer, error) {
	var customers []models.Customer
	query := s.db.WithContext(ctx)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", like, like, like)
	}
	if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Customer, len(customers))
	for i := range customers {
		result[i] = &customers[i]
	}
	return result, nil
}
