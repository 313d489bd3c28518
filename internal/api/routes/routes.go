package routes

import (
	"net/http"

	"orgbook-backend/internal/api/handlers"
	"orgbook-backend/internal/api/middleware"
	"orgbook-backend/internal/config"
	"orgbook-backend/internal/metrics"
	"orgbook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// Version is reported by the health endpoint
var Version = "dev"

// SetupRoutes configures all the routes for the application and wraps them
// in the CORS policy from cfg
func SetupRoutes(directory service.DirectoryServiceInterface, collector *metrics.Collector, cfg *config.Config) http.Handler {
	router := NewRouter(directory, collector, cfg)

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler(router)
}

// NewRouter builds the gin engine without the CORS wrapper
func NewRouter(directory service.DirectoryServiceInterface, collector *metrics.Collector, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	if collector != nil {
		router.Use(middleware.Metrics(collector))
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(directory, Version)
	directoryHandler := handlers.NewDirectoryHandler(directory)
	employeeHandler := handlers.NewEmployeeHandler(directory)
	topicHandler := handlers.NewTopicHandler(directory)
	teamHandler := handlers.NewTeamHandler(directory)
	linkHandler := handlers.NewLinkHandler(directory)
	mergeHandler := handlers.NewMergeHandler(directory)
	importHandler := handlers.NewImportHandler(directory, cfg.MaxUploadBytes())

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if collector != nil {
		router.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/directory", directoryHandler.GetDirectory)
		v1.GET("/organization", directoryHandler.GetOrganization)
		v1.GET("/managers", directoryHandler.ListManagers)

		departments := v1.Group("/departments")
		{
			departments.GET("", directoryHandler.ListDepartments)
			departments.DELETE("/:name", directoryHandler.DeleteDepartment)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)

			employees.GET("/:id/link-candidates", linkHandler.LinkCandidates)
			employees.POST("/:id/links", linkHandler.AddLink)
			employees.DELETE("/:id/links/:type/:itemId", linkHandler.RemoveLink)

			employees.GET("/:id/merge-candidates", mergeHandler.MergeCandidates)
			employees.POST("/:id/merge", mergeHandler.Merge)
		}

		topics := v1.Group("/topics")
		{
			topics.GET("", topicHandler.ListTopics)
			topics.POST("", topicHandler.CreateTopic)
			topics.GET("/:id", topicHandler.GetTopic)
			topics.PUT("/:id", topicHandler.UpdateTopic)
			topics.DELETE("/:id", topicHandler.DeleteTopic)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		imports := v1.Group("/imports")
		{
			imports.GET("", importHandler.ListPipelines)
			imports.POST("/:pipeline", importHandler.Import)
		}
	}

	return router
}
