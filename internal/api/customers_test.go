package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trichocare/backend/internal/models"
	"github.com/trichocare/backend/internal/types"
)

func TestCustomerCRUD(t *testing.T) {
	env := SetupTestEnv(t)
	router := SetupTestRouter(t, env)
	_, token := CreateTestEmployee(t, env, "Admin")

	w := PerformRequest(router, http.MethodPost, "/api/v1/customers", token, types.CreateCustomerRequest{
		Name:  "Dana Reyes",
		Email: "dana@example.com",
		Phone: "555-0142",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var customer models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
	assert.Equal(t, "Dana Reyes", customer.Name)

	w = PerformRequest(router, http.MethodGet, "/api/v1/customers/"+customer.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodPut, "/api/v1/customers/"+customer.ID.String(), token, types.UpdateCustomerRequest{
		Phone: "555-0199",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Dana Reyes", updated.Name)

	w = PerformRequest(router, http.MethodDelete, "/api/v1/customers/"+customer.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/customers/"+customer.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCustomersSearch(t *testing.T) {
	env := SetupTestEnv(t)
	router := SetupTestRouter(t, env)
	_, token := CreateTestEmployee(t, env, "Admin")

	for _, name := range []string{"Dana Reyes", "Jordan Avery", "Sam Dana"} {
		w := PerformRequest(router, http.MethodPost, "/api/v1/customers", token, types.CreateCustomerRequest{Name: name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := PerformRequest(router, http.MethodGet, "/api/v1/customers?q=dana", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Customers []models.Customer `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Customers, 2)
}

func TestCustomerValidation(t *testing.T) {
	env := SetupTestEnv(t)
	router := SetupTestRouter(t, env)
	_, token := CreateTestEmployee(t, env, "Admin")

	t.Run("missing name", func(t *testing.T) {
		w := PerformRequest(router, http.MethodPost, "/api/v1/customers", token, types.CreateCustomerRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := PerformRequest(router, http.MethodGet, "/api/v1/customers/not-a-uuid", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w := PerformRequest(router, http.MethodGet, "/api/v1/customers", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
