package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/models"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/services"
)

type EmployeeHandler struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandler(employeeService services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), callerOrgID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    employee,
	})
}

func (h *EmployeeHandler) GetAll(c *gin.Context) {
	employees, err := h.employeeService.GetAll(c.Request.Context(), callerOrgID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(employees),
		"users":   employees,
	})
}

func (h *EmployeeHandler) GetByEmployeeID(c *gin.Context) {
	employee, err := h.employeeService.GetByEmployeeID(c.Request.Context(), callerOrgID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    employee,
	})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), callerOrgID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"user":    employee,
	})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeService.Delete(c.Request.Context(), callerOrgID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted",
	})
}

func (h *EmployeeHandler) GetProfile(c *gin.Context) {
	claims := callerClaims(c)

	profile, err := h.employeeService.GetOwnProfile(c.Request.Context(), claims.OrgID, claims.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    profile,
	})
}
