package handlers

import (
	"net/http"

	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TopicHandler handles HTTP requests for topic operations
type TopicHandler struct {
	directory service.DirectoryServiceInterface
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(directory service.DirectoryServiceInterface) *TopicHandler {
	return &TopicHandler{directory: directory}
}

// ListTopics handles GET /topics
// @Summary List topics
// @Tags topics
// @Produce json
// @Success 200 {array} models.Topic
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Topics())
}

// GetTopic handles GET /topics/:id
// @Summary Get a topic with its experts
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {object} service.TopicDetail
// @Failure 404 {object} ErrorResponse
// @Router /topics/{id} [get]
func (h *TopicHandler) GetTopic(c *gin.Context) {
	detail, err := h.directory.TopicDetail(c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get topic", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateTopic handles POST /topics
// @Summary Create a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param topic body service.TopicRequest true "Topic data"
// @Success 201 {object} models.Topic
// @Failure 400 {object} ErrorResponse
// @Router /topics [post]
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req service.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	topic, err := h.directory.CreateTopic(&req)
	if err != nil {
		respondError(c, "Failed to create topic", err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// UpdateTopic handles PUT /topics/:id
// @Summary Edit a topic
// @Description Replaces name, description and link; experts are kept
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param topic body service.TopicRequest true "Topic data"
// @Success 200 {object} models.Topic
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /topics/{id} [put]
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	var req service.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	topic, found, err := h.directory.EditTopic(c.Param("id"), &req)
	if err != nil {
		respondError(c, "Failed to update topic", err)
		return
	}
	if !found {
		respondNotFound(c, apperrors.ErrTopicNotFound)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// DeleteTopic handles DELETE /topics/:id
// @Summary Delete a topic
// @Tags topics
// @Param id path string true "Topic ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	if !h.directory.DeleteTopic(c.Param("id")) {
		respondNotFound(c, apperrors.ErrTopicNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
