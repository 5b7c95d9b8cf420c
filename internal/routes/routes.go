package routes

import (
	"github.com/gin-gonic/gin"

	"etats/internal/handlers"
	"etats/internal/middleware"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Employees *handlers.EmployeeHandler
	Tasks     *handlers.TaskHandler
	Reports   *handlers.ReportHandler
	DB        handlers.Pinger
}

// SetupRoutes mounts the API under /api. The session middleware must
// already be installed on r.
func SetupRoutes(r *gin.Engine, h Handlers) *gin.Engine {
	api := r.Group("/api")

	// ---- public
	api.GET("/health", handlers.Health(h.DB))
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", h.Auth.Me)
		auth.POST("/logout", h.Auth.Logout)
	}

	// ---- authenticated
	authed := api.Group("", middleware.RequireAuth())

	authed.GET("/employees/me", h.Employees.Me)

	tasks := authed.Group("/tasks")
	{
		tasks.POST("", h.Tasks.Create)
		tasks.GET("", h.Tasks.List)
		tasks.GET("/my/:employeeId", h.Tasks.ListByEmployee)
		tasks.PUT("/:id", h.Tasks.Update)
		tasks.PUT("/:id/status", h.Tasks.UpdateStatus)
		tasks.DELETE("/:id", h.Tasks.Delete)
	}

	// ---- manager only
	manager := api.Group("", middleware.RequireManager())

	employees := manager.Group("/employees")
	{
		employees.GET("", h.Employees.List)
		employees.POST("", h.Employees.Create)
		employees.PUT("/:employeeId", h.Employees.Update)
		employees.DELETE("/:employeeId", h.Employees.Delete)
	}

	reports := manager.Group("/reports")
	{
		reports.GET("", h.Reports.List)
		reports.POST("", h.Reports.Create)
		reports.GET("/:id/pdf", h.Reports.PDF)
	}

	return r
}
