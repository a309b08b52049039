// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fleet-manager/backend/internal/integration/entrypoint/controller"
	"github.com/fleet-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	vehicleController      *controller.VehicleController
	entryController        *controller.EntryController
	expenseController      *controller.ExpenseController
	cashDeskController     *controller.CashDeskController
	notificationController *controller.NotificationController
	reportController       *controller.ReportController
	messageController      *controller.MessageController
	adminController        *controller.AdminController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	vehicleController *controller.VehicleController,
	entryController *controller.EntryController,
	expenseController *controller.ExpenseController,
	cashDeskController *controller.CashDeskController,
	notificationController *controller.NotificationController,
	reportController *controller.ReportController,
	messageController *controller.MessageController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		vehicleController:      vehicleController,
		entryController:        entryController,
		expenseController:      expenseController,
		cashDeskController:     cashDeskController,
		notificationController: notificationController,
		reportController:       reportController,
		messageController:      messageController,
		adminController:        adminController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		if r.authController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				users.GET("", r.authController.List)
				users.POST("", r.authController.Register)
				users.POST("/:id/deactivate", r.authController.Deactivate)
			}
		}

		if r.vehicleController != nil && r.authMiddleware != nil {
			vehicles := v1.Group("/vehicles")
			vehicles.Use(r.authMiddleware.Authenticate())
			{
				vehicles.GET("", r.vehicleController.List)
				vehicles.POST("", r.authMiddleware.RequireAdmin(), r.vehicleController.Create)
				vehicles.PUT("/:id/mileage", r.vehicleController.UpdateMileage)
				vehicles.POST("/:id/archive", r.authMiddleware.RequireAdmin(), r.vehicleController.Archive)
				vehicles.PUT("/:id/resale-simulation", r.authMiddleware.RequireAdmin(), r.vehicleController.SimulateResale)
				vehicles.POST("/:id/maintenance-configs", r.authMiddleware.RequireAdmin(), r.vehicleController.AddConfig)
				vehicles.POST("/:id/maintenance-postpone", r.authMiddleware.RequireAdmin(), r.vehicleController.PostponeMaintenance)
			}
		}

		if r.entryController != nil && r.authMiddleware != nil {
			entries := v1.Group("/entries")
			entries.Use(r.authMiddleware.Authenticate())
			{
				entries.GET("", r.entryController.List)
				entries.POST("", r.entryController.Create)
				entries.PUT("/:id", r.entryController.Update)
				entries.POST("/:id/approve", r.authMiddleware.RequireAdmin(), r.entryController.Approve)
				entries.POST("/:id/reject", r.authMiddleware.RequireAdmin(), r.entryController.Reject)
				entries.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.entryController.Delete)
			}
		}

		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/global-expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.authMiddleware.RequireAdmin(), r.expenseController.Create)
				expenses.DELETE("/:id", r.authMiddleware.RequireAdmin(), r.expenseController.Delete)
			}
		}

		if r.cashDeskController != nil && r.authMiddleware != nil {
			desks := v1.Group("/cash-desks")
			desks.Use(r.authMiddleware.Authenticate())
			{
				desks.GET("", r.cashDeskController.List)
			}
		}

		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.List)
				notifications.POST("/:id/archive", r.notificationController.Archive)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			report := v1.Group("/report")
			report.Use(r.authMiddleware.Authenticate())
			{
				report.GET("", r.reportController.Get)
			}

			export := v1.Group("/export")
			export.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				export.GET("", r.reportController.Export)
			}
		}

		if r.messageController != nil && r.authMiddleware != nil {
			messages := v1.Group("/messages")
			messages.Use(r.authMiddleware.Authenticate())
			{
				messages.GET("", r.messageController.List)
				messages.POST("", r.messageController.Send)
			}
		}

		if r.adminController != nil && r.authMiddleware != nil {
			admin := v1.Group("/admin")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.POST("/close-period", r.adminController.ClosePeriod)
			}
		}
	}
}
