package handlers

import (
	"net/http"

	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	directory service.DirectoryServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(directory service.DirectoryServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{directory: directory}
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Description Employees in collection order, narrowed by the optional filters
// @Tags employees
// @Produce json
// @Param search query string false "Name search"
// @Param department query string false "Department"
// @Param manager query string false "Manager"
// @Param topic query string false "Topic ID"
// @Param team query string false "Team ID"
// @Success 200 {array} models.Employee
// @Failure 400 {object} ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var filter service.EmployeeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.directory.FilterEmployees(filter))
}

// GetEmployee handles GET /employees/:id
// @Summary Get an employee with its topics and teams
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} service.EmployeeDetail
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	detail, err := h.directory.EmployeeDetail(c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get employee", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateEmployee handles POST /employees
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.EmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee
// @Failure 400 {object} ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	employee, err := h.directory.CreateEmployee(&req)
	if err != nil {
		respondError(c, "Failed to create employee", err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles PUT /employees/:id
// @Summary Edit an employee
// @Description Replaces the scalar fields; topic and team sets are kept
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body service.EmployeeRequest true "Employee data"
// @Success 200 {object} models.Employee
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	employee, found, err := h.directory.EditEmployee(c.Param("id"), &req)
	if err != nil {
		respondError(c, "Failed to update employee", err)
		return
	}
	if !found {
		respondNotFound(c, apperrors.ErrEmployeeNotFound)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /employees/:id
// @Summary Delete an employee
// @Description Removes the employee and strips it from every topic and team
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if !h.directory.DeleteEmployee(c.Param("id")) {
		respondNotFound(c, apperrors.ErrEmployeeNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
