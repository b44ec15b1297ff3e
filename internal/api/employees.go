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

// EmployeeHandler handles staff account management.
type EmployeeHandler struct {
	employees   *service.EmployeeService
	authService service.IAuthService
	roles       middleware.RoleLookup
}

func NewEmployeeHandler(employees *service.EmployeeService, authService service.IAuthService, roles middleware.RoleLookup) *EmployeeHandler {
	return &EmployeeHandler{
		employees:   employees,
		authService: authService,
		roles:       roles,
	}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	employees := router.Group("/employees")
	employees.Use(middleware.AuthMiddleware(h.authService))
	{
		employees.GET("", middleware.RequirePermission(h.roles, "Employees", "read"), h.ListEmployees)
		employees.GET("/:id", middleware.RequirePermission(h.roles, "Employees", "read"), h.GetEmployee)
		employees.POST("", middleware.RequirePermission(h.roles, "Employees", "create"), h.CreateEmployee)
		employees.PUT("/:id", middleware.RequirePermission(h.roles, "Employees", "update"), h.UpdateEmployee)
		employees.DELETE("/:id", middleware.RequirePermission(h.roles, "Employees", "delete"), h.DeleteEmployee)
	}
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.ListEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}
	employee, err := h.employees.GetEmployee(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch employee"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req types.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employee, err := h.employees.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "employee already exists"})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee"})
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}
	var req types.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employee, err := h.employees.UpdateEmployee(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update employee"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}
	if err := h.employees.DeleteEmployee(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "employee deleted"})
}
