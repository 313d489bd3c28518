package handlers

import (
	"net/http"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles employee-topic and employee-team edges
type LinkHandler struct {
	directory service.DirectoryServiceInterface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(directory service.DirectoryServiceInterface) *LinkHandler {
	return &LinkHandler{directory: directory}
}

// LinkRequest names the topic or team to link an employee to
type LinkRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	Type   string `json:"type" binding:"required" example:"topic"`
}

// AddLink handles POST /employees/:id/links
// @Summary Link an employee to a topic or team
// @Description Adds the edge on both sides. Linking an existing edge is a no-op.
// @Tags links
// @Accept json
// @Param id path string true "Employee ID"
// @Param link body LinkRequest true "Item to link"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id}/links [post]
func (h *LinkHandler) AddLink(c *gin.Context) {
	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	kind, err := models.ParseItemKind(req.Type)
	if err != nil {
		respondError(c, "Invalid item type", err)
		return
	}

	if err := h.directory.Link(c.Param("id"), req.ItemID, kind); err != nil {
		respondError(c, "Failed to link", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveLink handles DELETE /employees/:id/links/:type/:itemId
// @Summary Unlink an employee from a topic or team
// @Description Removes the edge on both sides. Missing edges are ignored.
// @Tags links
// @Param id path string true "Employee ID"
// @Param type path string true "topic or team"
// @Param itemId path string true "Topic or team ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Router /employees/{id}/links/{type}/{itemId} [delete]
func (h *LinkHandler) RemoveLink(c *gin.Context) {
	kind, err := models.ParseItemKind(c.Param("type"))
	if err != nil {
		respondError(c, "Invalid item type", err)
		return
	}

	if err := h.directory.Unlink(c.Param("id"), c.Param("itemId"), kind); err != nil {
		respondError(c, "Failed to unlink", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LinkCandidates handles GET /employees/:id/link-candidates?type=
// @Summary Topics or teams the employee is not linked to yet
// @Tags links
// @Produce json
// @Param id path string true "Employee ID"
// @Param type query string true "topic or team"
// @Success 200 {array} service.LinkCandidate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{id}/link-candidates [get]
func (h *LinkHandler) LinkCandidates(c *gin.Context) {
	kind, err := models.ParseItemKind(c.Query("type"))
	if err != nil {
		respondError(c, "Invalid item type", err)
		return
	}

	candidates, err := h.directory.LinkCandidates(c.Param("id"), kind)
	if err != nil {
		respondError(c, "Failed to list link candidates", err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}
