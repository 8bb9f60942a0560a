// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/project-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/project-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	projectController     *controller.ProjectController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	auditLogController    *controller.AuditLogController
	writeRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	projectController *controller.ProjectController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	auditLogController *controller.AuditLogController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		projectController:     projectController,
		categoryController:    categoryController,
		transactionController: transactionController,
		auditLogController:    auditLogController,
		writeRateLimiter:      writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")

	var limit gin.HandlerFunc
	if r.writeRateLimiter != nil {
		limit = r.writeRateLimiter.Middleware()
	} else {
		limit = func(c *gin.Context) { c.Next() }
	}

	// Project routes
	if r.projectController != nil {
		projects := api.Group("/projects")
		{
			projects.GET("", r.projectController.List)
			projects.POST("", limit, r.projectController.Create)
			projects.PUT("/:id", limit, r.projectController.Update)
			projects.DELETE("/:id", limit, r.projectController.Delete)
		}
	}

	// Category routes: listing and creation are nested under a project,
	// item mutations address the category directly.
	if r.categoryController != nil {
		api.GET("/projects/:id/categories", r.categoryController.List)
		api.POST("/projects/:id/categories", limit, r.categoryController.Create)
		api.PUT("/categories/:id", limit, r.categoryController.Update)
		api.DELETE("/categories/:id", limit, r.categoryController.Delete)
	}

	// Transaction routes follow the same nesting as categories.
	if r.transactionController != nil {
		api.GET("/projects/:id/transactions", r.transactionController.List)
		api.POST("/projects/:id/transactions", limit, r.transactionController.Create)
		api.PUT("/transactions/:id", limit, r.transactionController.Update)
		api.DELETE("/transactions/:id", limit, r.transactionController.Delete)
	}

	// Audit log routes (read-only)
	if r.auditLogController != nil {
		api.GET("/projects/:id/logs", r.auditLogController.List)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
