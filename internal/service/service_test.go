package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/scoring"
	"github.com/trichocare/backend/internal/service"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Role{}, &models.Employee{}, &models.Customer{}, &models.Analysis{}))
	return db
}

func setupRoles(t *testing.T, db *gorm.DB) *service.RoleService {
	t.Helper()
	roles := service.NewRoleService(db)
	require.NoError(t, roles.EnsureDefaults(context.Background()))
	return roles
}

func newEngine(t *testing.T) *scoring.Engine {
	t.Helper()
	guide, err := scoring.LoadGuide("")
	require.NoError(t, err)
	return scoring.NewEngine(guide)
}
