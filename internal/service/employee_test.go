package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trichocare/backend/internal/service"
	"github.com/trichocare/backend/internal/types"
)

func TestCreateEmployee(t *testing.T) {
	db := setupDB(t)
	roles := setupRoles(t, db)
	employees := service.NewEmployeeService(db, roles)
	ctx := context.Background()

	created, err := employees.CreateEmployee(ctx, &types.CreateEmployeeRequest{
		Name:     "Maya Lindqvist",
		Email:    "maya@clinic.example",
		Password: "testpassword123",
		Title:    "Senior Trichologist",
		Role:     "Admin",
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	require.NotNil(t, created.Role)
	assert.Equal(t, "Admin", created.Role.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("testpassword123")))

	t.Run("duplicate email", func(t *testing.T) {
		_, err := employees.CreateEmployee(ctx, &types.CreateEmployeeRequest{
			Name:     "Someone Else",
			Email:    "maya@clinic.example",
			Password: "testpassword123",
			Role:     "Admin",
		})
		assert.ErrorIs(t, err, service.ErrEmployeeExists)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := employees.CreateEmployee(ctx, &types.CreateEmployeeRequest{
			Name:     "No Role",
			Email:    "norole@clinic.example",
			Password: "testpassword123",
			Role:     "Ghost",
		})
		assert.Error(t, err)
	})
}

func TestUpdateEmployeeRoleChange(t *testing.T) {
	db := setupDB(t)
	roles := setupRoles(t, db)
	employees := service.NewEmployeeService(db, roles)
	ctx := context.Background()

	created, err := employees.CreateEmployee(ctx, &types.CreateEmployeeRequest{
		Name:     "Leah Okafor",
		Email:    "leah@clinic.example",
		Password: "testpassword123",
		Role:     "Tester",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := employees.UpdateEmployee(ctx, created.ID, &types.UpdateEmployeeRequest{
		Role:   "Manager",
		Title:  "Clinic Manager",
		Active: &inactive,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Role)
	assert.Equal(t, "Manager", updated.Role.Name)
	assert.Equal(t, "Clinic Manager", updated.Title)
	assert.False(t, updated.Active)
}

func TestListEmployees(t *testing.T) {
	db := setupDB(t)
	roles := setupRoles(t, db)
	employees := service.NewEmployeeService(db, roles)
	ctx := context.Background()

	for _, e := range []types.CreateEmployeeRequest{
		{Name: "Maya Lindqvist", Email: "maya@clinic.example", Password: "testpassword123", Role: "Admin"},
		{Name: "Leah Okafor", Email: "leah@clinic.example", Password: "testpassword123", Role: "Tester"},
	} {
		req := e
		_, err := employees.CreateEmployee(ctx, &req)
		require.NoError(t, err)
	}

	all, err := employees.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by name, roles preloaded.
	assert.Equal(t, "Leah Okafor", all[0].Name)
	require.NotNil(t, all[0].Role)
	assert.Equal(t, "Tester", all[0].Role.Name)
}
