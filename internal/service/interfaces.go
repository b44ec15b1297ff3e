package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.Employee, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(employee *models.Employee) (string, error)
}

// ICustomerService defines the interface for customer operations
type ICustomerService interface {
	CreateCustomer(ctx context.Context, req *types.CreateCustomerRequest) (*models.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, req *types.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	ListCustomers(ctx context.Context, search string) ([]*models.Customer, error)
}

// IAnalysisService defines the interface for analysis operations
type IAnalysisService interface {
	CreateAnalysis(ctx context.Context, req *types.CreateAnalysisRequest) (*models.Analysis, error)
	GetAnalysis(ctx context.Context, testID string) (*models.Analysis, error)
	RegenerateReport(ctx context.Context, testID string) (*models.Analysis, error)
	UpdateClinicianNotes(ctx context.Context, testID, notes string) (*models.Analysis, error)
	DeleteAnalysis(ctx context.Context, testID string) error
	ListAnalyses(ctx context.Context, customerID *uuid.UUID) ([]*models.Analysis, error)
}

var (
	_ IAuthService     = (*AuthService)(nil)
	_ ICustomerService = (*CustomerService)(nil)
	_ IAnalysisService = (*AnalysisService)(nil)
)
