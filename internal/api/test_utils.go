package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/scoring"
	"github.com/trichocare/backend/internal/service"
)

// TestEnv holds the in-memory database and services handler tests run
// against.
type TestEnv struct {
	DB          *gorm.DB
	AuthService *service.AuthService
	RoleService *service.RoleService
	Engine      *scoring.Engine
}

// SetupTestEnv creates an in-memory SQLite database with the schema
// migrated, the default roles seeded and a scoring engine on the embedded
// guide.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.Employee{}, &models.Customer{}, &models.Analysis{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	roleService := service.NewRoleService(db)
	if err := roleService.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("failed to seed roles: %v", err)
	}

	guide, err := scoring.LoadGuide("")
	if err != nil {
		t.Fatalf("failed to load scoring guide: %v", err)
	}

	return &TestEnv{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
		RoleService: roleService,
		Engine:      scoring.NewEngine(guide),
	}
}

// CreateTestEmployee creates a staff account with the named role and
// returns it together with a valid token.
func CreateTestEmployee(t *testing.T, env *TestEnv, roleName string) (*models.Employee, string) {
	t.Helper()

	role, err := env.RoleService.GetRoleByName(context.Background(), roleName)
	if err != nil {
		t.Fatalf("failed to look up role %q: %v", roleName, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	employee := &models.Employee{
		Name:         "Test Employee",
		Email:        fmt.Sprintf("staff+%s@example.com", uuid.NewString()),
		PasswordHash: string(hashed),
		Active:       true,
		RoleID:       role.ID,
	}
	if err := env.DB.Create(employee).Error; err != nil {
		t.Fatalf("failed to create test employee: %v", err)
	}
	employee.Role = role

	token, err := env.AuthService.GenerateToken(employee)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return employee, token
}

// SetupTestRouter builds the full route tree against the test environment.
// No Redis, so analysis creation is unthrottled.
func SetupTestRouter(t *testing.T, env *TestEnv) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router, Deps{
		DB:     env.DB,
		Engine: env.Engine,
		Auth:   env.AuthService,
		Roles:  env.RoleService,
	})
	return router
}

// PerformRequest makes an HTTP request against the router, marshalling body
// as JSON when present.
func PerformRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}
