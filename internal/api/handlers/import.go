package handlers

import (
	"errors"
	"net/http"

	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportHandler handles spreadsheet and CODEOWNERS uploads
type ImportHandler struct {
	directory service.DirectoryServiceInterface
	maxBytes  int64
}

// NewImportHandler creates a new import handler. maxBytes caps the request body.
func NewImportHandler(directory service.DirectoryServiceInterface, maxBytes int64) *ImportHandler {
	return &ImportHandler{
		directory: directory,
		maxBytes:  maxBytes,
	}
}

// ListPipelines handles GET /imports
// @Summary List import pipelines
// @Tags imports
// @Produce json
// @Success 200 {array} string
// @Router /imports [get]
func (h *ImportHandler) ListPipelines(c *gin.Context) {
	c.JSON(http.StatusOK, service.Pipelines)
}

// Import handles POST /imports/:pipeline
// @Summary Run an import pipeline
// @Description Uploads a CSV/XLSX sheet (or a CODEOWNERS JSON document for the codeowners pipeline) and applies it as one change
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param pipeline path string true "skills, components, codeowners, employees, topics or teams"
// @Param file formData file true "Import file"
// @Success 200 {object} service.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /imports/{pipeline} [post]
func (h *ImportHandler) Import(c *gin.Context) {
	if h.maxBytes > 0 {
		if c.Request.ContentLength > h.maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Upload too large"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Upload too large", Details: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing upload", Details: err.Error()})
		return
	}
	if header.Size == 0 {
		respondError(c, "Invalid upload", apperrors.NewMalformedImportError(header.Filename, apperrors.ErrEmptyUpload))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, "Failed to read upload", err)
		return
	}
	defer file.Close()

	result, err := h.directory.Import(c.Param("pipeline"), file, header.Filename)
	if err != nil {
		respondError(c, "Import failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
