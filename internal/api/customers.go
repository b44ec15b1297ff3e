package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trichocare/backend/internal/middleware"
	"github.com/trichocare/backend/internal/service"
	"github.com/trichocare/backend/internal/types"
)

// CustomerHandler handles the customer registry.
type CustomerHandler struct {
	customers   service.ICustomerService
	authService service.IAuthService
	roles       middleware.RoleLookup
}

func NewCustomerHandler(customers service.ICustomerService, authService service.IAuthService, roles middleware.RoleLookup) *CustomerHandler {
	return &CustomerHandler{
		customers:   customers,
		authService: authService,
		roles:       roles,
	}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	customers.Use(middleware.AuthMiddleware(h.authService))
	{
		customers.GET("", middleware.RequirePermission(h.roles, "Customers", "read"), h.ListCustomers)
		customers.GET("/:id", middleware.RequirePermission(h.roles, "Customers", "read"), h.GetCustomer)
		customers.POST("", middleware.RequirePermission(h.roles, "Customers", "create"), h.CreateCustomer)
		customers.PUT("/:id", middleware.RequirePermission(h.roles, "Customers", "update"), h.UpdateCustomer)
		customers.DELETE("/:id", middleware.RequirePermission(h.roles, "Customers", "delete"), h.DeleteCustomer)
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.ListCustomers(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	customer, err := h.customers.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req types.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.customers.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	var req types.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.customers.UpdateCustomer(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	if err := h.customers.DeleteCustomer(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
