package handlers

import (
	"net/http"

	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	directory service.DirectoryServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(directory service.DirectoryServiceInterface) *TeamHandler {
	return &TeamHandler{directory: directory}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Teams())
}

// GetTeam handles GET /teams/:id
// @Summary Get a team with its members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamDetail
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	detail, err := h.directory.TeamDetail(c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get team", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} ErrorResponse
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	team, err := h.directory.CreateTeam(&req)
	if err != nil {
		respondError(c, "Failed to create team", err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Edit a team
// @Description Replaces name, description and channel link; members are kept
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body service.TeamRequest true "Team data"
// @Success 200 {object} models.Team
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req service.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	team, found, err := h.directory.EditTeam(c.Param("id"), &req)
	if err != nil {
		respondError(c, "Failed to update team", err)
		return
	}
	if !found {
		respondNotFound(c, apperrors.ErrTeamNotFound)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags teams
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if !h.directory.DeleteTeam(c.Param("id")) {
		respondNotFound(c, apperrors.ErrTeamNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
