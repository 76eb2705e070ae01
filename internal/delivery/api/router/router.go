// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cardportal/internal/delivery/api/middleware"
	"cardportal/internal/delivery/api/router/handler"
	"cardportal/internal/domain/entity"
	"cardportal/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	StudentHandler *handler.StudentHandler
	AdminHandler   *handler.AdminHandler
	CardHandler    *handler.CardHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	studentHandler *handler.StudentHandler
	adminHandler   *handler.AdminHandler
	cardHandler    *handler.CardHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		studentHandler: params.StudentHandler,
		adminHandler:   params.AdminHandler,
		cardHandler:    params.CardHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Identify)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Student routes act on the caller's own record
	studentGroup := e.Group("/student")
	studentGroup.Use(r.authMiddleware.Authenticate)
	studentGroup.Use(r.authMiddleware.RequireRole(entity.RoleStudent))
	{
		studentGroup.GET("/profile", r.studentHandler.GetProfile)
		studentGroup.PUT("/profile", r.studentHandler.UpdateProfile)
		studentGroup.POST("/photo", r.studentHandler.UploadPhoto)
		studentGroup.GET("/photo", r.studentHandler.GetPhoto)
		studentGroup.POST("/submit-approval", r.studentHandler.SubmitForApproval)
		studentGroup.GET("/id-card", r.studentHandler.GetIDCard)
		studentGroup.GET("/id-card/qr", r.studentHandler.GetIDCardQR)
		studentGroup.GET("/dashboard", r.studentHandler.Dashboard)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/students", r.adminHandler.ListStudents)
		adminGroup.GET("/pending-requests", r.adminHandler.PendingRequests)
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/student/:id", r.adminHandler.GetStudent)
		adminGroup.DELETE("/student/:id", r.adminHandler.Remove)
		adminGroup.GET("/student/:id/photo", r.adminHandler.GetStudentPhoto)
		adminGroup.PUT("/student/:id/approve", r.adminHandler.Approve)
		adminGroup.PUT("/student/:id/reject", r.adminHandler.Reject)
		adminGroup.PUT("/student/:id/status", r.adminHandler.SetStatus)
	}

	// Card verification is public, it is what the printed QR code points at
	e.GET("/cards/:number/verify", r.cardHandler.Verify)
}
