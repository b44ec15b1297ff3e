package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims represents the claims in a JWT token
type TokenClaims struct {
	jwt.RegisteredClaims
	EmployeeID uuid.UUID `json:"employee_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
}
