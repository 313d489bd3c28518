package handlers

import (
	"net/http"
	"time"

	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports storage reachability and collection sizes
type HealthHandler struct {
	directory service.DirectoryServiceInterface
	version   string
}

func NewHealthHandler(directory service.DirectoryServiceInterface, version string) *HealthHandler {
	return &HealthHandler{directory: directory, version: version}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Version     string            `json:"version"`
	Services    map[string]string `json:"services"`
	Collections map[string]int    `json:"collections,omitempty"`
}

// storageState pings the backend and returns the state label plus whether it is usable
func (h *HealthHandler) storageState(ok, failed string) (string, bool) {
	if err := h.directory.Ping(); err != nil {
		return failed + ": " + err.Error(), false
	}
	return ok, true
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status including storage reachability and collection sizes
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	state, up := h.storageState("healthy", "error")
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  map[string]string{"storage": state},
	}
	if !up {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	snap := h.directory.Snapshot()
	response.Collections = map[string]int{
		"employees": len(snap.Employees),
		"topics":    len(snap.Topics),
		"teams":     len(snap.Teams),
	}
	c.JSON(http.StatusOK, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the storage backend can serve reads and writes
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	state, ready := h.storageState("ready", "not ready")
	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  gin.H{"storage": state},
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}
