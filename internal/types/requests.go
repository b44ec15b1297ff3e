package types

import "github.com/trichocare/backend/internal/scoring"

// LoginRequest is the staff login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the employee's role name.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// CreateCustomerRequest is the body for registering a customer.
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

// UpdateCustomerRequest is the body for updating a customer; empty fields
// are left untouched.
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CreateEmployeeRequest is the body for creating a staff account.
type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Title    string `json:"title"`
	Role     string `json:"role" binding:"required"`
}

// UpdateEmployeeRequest is the body for updating a staff account.
type UpdateEmployeeRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Title  string `json:"title"`
	Role   string `json:"role"`
	Active *bool  `json:"active"`
}

// CreateRoleRequest is the body for creating a role.
type CreateRoleRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Permissions map[string][]string `json:"permissions"`
}

// UpdateRoleRequest is the body for updating a role.
type UpdateRoleRequest struct {
	Description *string             `json:"description"`
	Permissions map[string][]string `json:"permissions"`
}

// CreateAnalysisRequest is the intake body: a customer reference, the
// questionnaire answer bag and an optional base64 scalp image. Camera
// metrics, when present, ride inside the answers.
type CreateAnalysisRequest struct {
	CustomerID       string          `json:"customer_id"`
	Answers          scoring.Answers `json:"answers"`
	ScalpImageBase64 string          `json:"scalp_image_base64"`
}

// UpdateAnalysisNotesRequest updates clinician notes on a completed
// analysis.
type UpdateAnalysisNotesRequest struct {
	ClinicianNotes string `json:"clinician_notes"`
}

// DashboardStats is the dashboard data feed.
type DashboardStats struct {
	Customers        int64          `json:"customers"`
	Analyses         int64          `json:"analyses"`
	PendingAnalyses  int64          `json:"pending_analyses"`
	CompleteAnalyses int64          `json:"complete_analyses"`
	AverageLossRisk  float64        `json:"average_loss_risk"`
	TopCauses        map[string]int `json:"top_causes"`
	AnalysesThisWeek int64          `json:"analyses_this_week"`
}
