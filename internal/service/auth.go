package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/types"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account disabled")
)

// AuthService authenticates staff accounts and issues JWT tokens.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Login verifies the employee's credentials and returns a signed token
// together with the employee record.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&employee).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !employee.Active {
		return "", nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&employee)
	if err != nil {
		return "", nil, err
	}
	return token, &employee, nil
}

// GenerateToken issues a 24h token carrying the employee's id and role.
func (s *AuthService) GenerateToken(employee *models.Employee) (string, error) {
	roleName := ""
	if employee.Role != nil {
		roleName = employee.Role.Name
	}
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employee.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		EmployeeID: employee.ID,
		Email:      employee.Email,
		Role:       roleName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token string. The employee must
// still exist and be active; disabling an account invalidates its
// outstanding tokens immediately.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.EmployeeID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	var employee models.Employee
	if err := s.db.First(&employee, "id = ?", claims.EmployeeID).Error; err != nil {
		return nil, ErrInvalidToken
	}
	if !employee.Active {
		return nil, ErrAccountDisabled
	}
	return claims, nil
}
