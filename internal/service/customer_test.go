package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/scoring"
	"github.com/trichocare/backend/internal/service"
	"github.com/trichocare/backend/internal/types"
)

func TestCustomerLifecycle(t *testing.T) {
	db := setupDB(t)
	customers := service.NewCustomerService(db)
	ctx := context.Background()

	created, err := customers.CreateCustomer(ctx, &types.CreateCustomerRequest{
		Name:      "Dana Reyes",
		Email:     "dana@example.com",
		BirthDate: "1988-03-14",
	})
	require.NoError(t, err)
	require.NotNil(t, created.BirthDate)
	assert.Equal(t, 1988, created.BirthDate.Year())

	updated, err := customers.UpdateCustomer(ctx, created.ID, &types.UpdateCustomerRequest{
		Phone: "555-0199",
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Dana Reyes", updated.Name)

	require.NoError(t, customers.DeleteCustomer(ctx, created.ID))
	_, err = customers.GetCustomer(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListCustomersSearch(t *testing.T) {
	db := setupDB(t)
	customers := service.NewCustomerService(db)
	ctx := context.Background()

	for _, c := range []types.CreateCustomerRequest{
		{Name: "Dana Reyes", Email: "dana@example.com"},
		{Name: "Jordan Avery", Phone: "555-0177"},
		{Name: "Sam Whitfield", Email: "sam.dana@example.com"},
	} {
		req := c
		_, err := customers.CreateCustomer(ctx, &req)
		require.NoError(t, err)
	}

	t.Run("by name or email", func(t *testing.T) {
		found, err := customers.ListCustomers(ctx, "dana")
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("by phone", func(t *testing.T) {
		found, err := customers.ListCustomers(ctx, "555-0177")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Jordan Avery", found[0].Name)
	})

	t.Run("no filter", func(t *testing.T) {
		found, err := customers.ListCustomers(ctx, "")
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})
}

func TestDeleteCustomerKeepsAnalyses(t *testing.T) {
	db := setupDB(t)
	customers := service.NewCustomerService(db)
	analyses := service.NewAnalysisService(db, newEngine(t), nil)
	ctx := context.Background()

	customer, err := customers.CreateCustomer(ctx, &types.CreateCustomerRequest{Name: "Dana Reyes"})
	require.NoError(t, err)

	analysis, err := analyses.CreateAnalysis(ctx, &types.CreateAnalysisRequest{
		CustomerID: customer.ID.String(),
		Answers:    scoring.Answers{},
	})
	require.NoError(t, err)

	require.NoError(t, customers.DeleteCustomer(ctx, customer.ID))

	kept, err := analyses.GetAnalysis(ctx, analysis.TestID)
	require.NoError(t, err)
	require.NotNil(t, kept.CustomerID)
	assert.Equal(t, customer.ID, *kept.CustomerID)
}
