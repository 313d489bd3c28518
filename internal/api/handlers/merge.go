package handlers

import (
	"net/http"

	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MergeHandler handles duplicate employee resolution
type MergeHandler struct {
	directory service.DirectoryServiceInterface
}

// NewMergeHandler creates a new merge handler
func NewMergeHandler(directory service.DirectoryServiceInterface) *MergeHandler {
	return &MergeHandler{directory: directory}
}

// MergeRequest names the employee that survives the merge
type MergeRequest struct {
	TargetID string `json:"targetId" binding:"required"`
}

// Merge handles POST /employees/:id/merge
// @Summary Merge an employee into another
// @Description Folds the path employee into the target, rewrites every reference and removes the source
// @Tags merge
// @Accept json
// @Produce json
// @Param id path string true "Source employee ID"
// @Param merge body MergeRequest true "Target employee"
// @Success 200 {object} models.Employee "The merged target"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id}/merge [post]
func (h *MergeHandler) Merge(c *gin.Context) {
	var req MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	merged, err := h.directory.MergeEmployees(c.Param("id"), req.TargetID)
	if err != nil {
		respondError(c, "Failed to merge employees", err)
		return
	}
	c.JSON(http.StatusOK, merged)
}

// MergeCandidates handles GET /employees/:id/merge-candidates
// @Summary Suggest merge targets for an employee
// @Description Without q every other employee is listed, same-name ones first. With q results are fuzzy ranked.
// @Tags merge
// @Produce json
// @Param id path string true "Employee ID"
// @Param q query string false "Name query"
// @Success 200 {array} service.MergeCandidate
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id}/merge-candidates [get]
func (h *MergeHandler) MergeCandidates(c *gin.Context) {
	candidates, err := h.directory.MergeCandidates(c.Param("id"), c.Query("q"))
	if err != nil {
		respondError(c, "Failed to list merge candidates", err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}
