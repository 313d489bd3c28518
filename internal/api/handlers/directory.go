package handlers

import (
	"net/http"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles whole-directory and department requests
type DirectoryHandler struct {
	directory service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// DirectoryResponse is the full directory state as the UI loads it
type DirectoryResponse struct {
	Employees   []models.Employee `json:"employees"`
	Topics      []models.Topic    `json:"topics"`
	Teams       []models.Team     `json:"teams"`
	Departments []string          `json:"departments"`
	Managers    []string          `json:"managers"`
}

// DeleteDepartmentResponse reports how many employees a department delete removed
type DeleteDepartmentResponse struct {
	Department string `json:"department"`
	Removed    int    `json:"removed"`
}

// GetDirectory handles GET /directory
// @Summary Get the whole directory
// @Description Returns employees, topics, teams, distinct departments and managers from one consistent snapshot
// @Tags directory
// @Produce json
// @Success 200 {object} DirectoryResponse
// @Router /directory [get]
func (h *DirectoryHandler) GetDirectory(c *gin.Context) {
	snap := h.directory.Snapshot()
	c.JSON(http.StatusOK, DirectoryResponse{
		Employees:   snap.Employees,
		Topics:      snap.Topics,
		Teams:       snap.Teams,
		Departments: snap.Departments(),
		Managers:    snap.Managers(),
	})
}

// ListDepartments handles GET /departments
// @Summary List departments
// @Tags directory
// @Produce json
// @Success 200 {array} string
// @Router /departments [get]
func (h *DirectoryHandler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Departments())
}

// ListManagers handles GET /managers
// @Summary List managers
// @Description Distinct non-empty reportsTo values
// @Tags directory
// @Produce json
// @Success 200 {array} string
// @Router /managers [get]
func (h *DirectoryHandler) ListManagers(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Managers())
}

// DeleteDepartment handles DELETE /departments/:name
// @Summary Delete a department
// @Description Deletes every employee whose department matches exactly and strips them from topics and teams
// @Tags directory
// @Produce json
// @Param name path string true "Department name"
// @Success 200 {object} DeleteDepartmentResponse
// @Router /departments/{name} [delete]
func (h *DirectoryHandler) DeleteDepartment(c *gin.Context) {
	name := c.Param("name")
	c.JSON(http.StatusOK, DeleteDepartmentResponse{
		Department: name,
		Removed:    h.directory.DeleteDepartment(name),
	})
}

// GetOrganization handles GET /organization
// @Summary Employees grouped by department and manager
// @Tags directory
// @Produce json
// @Param search query string false "Name search"
// @Param department query string false "Department"
// @Param manager query string false "Manager"
// @Param topic query string false "Topic ID"
// @Param team query string false "Team ID"
// @Success 200 {array} service.DepartmentGroup
// @Failure 400 {object} ErrorResponse
// @Router /organization [get]
func (h *DirectoryHandler) GetOrganization(c *gin.Context) {
	var filter service.EmployeeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.directory.OrganizedEmployees(filter))
}
