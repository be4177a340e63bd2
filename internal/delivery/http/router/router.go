// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"vetclinic/internal/delivery/http/middleware"
	"vetclinic/internal/delivery/http/router/handler"
	"vetclinic/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	PatientHandler        *handler.PatientHandler
	AuthMiddleware        *middleware.AuthMiddleware
	CorrelationMiddleware *middleware.CorrelationMiddleware
	LoggerMiddleware      *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	patientHandler        *handler.PatientHandler
	authMiddleware        *middleware.AuthMiddleware
	correlationMiddleware *middleware.CorrelationMiddleware
	loggerMiddleware      *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		patientHandler:        params.PatientHandler,
		authMiddleware:        params.AuthMiddleware,
		correlationMiddleware: params.CorrelationMiddleware,
		loggerMiddleware:      params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every request passes the correlation and authentication middleware; the
// authentication pass never rejects on its own, so public endpoints work
// without a token while the guards protect the rest.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.correlationMiddleware.Handle)
	e.Use(r.loggerMiddleware.Handle)
	e.Use(r.authMiddleware.Authenticate)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes, public except for the session-scoped ones
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/validate", r.authHandler.Validate)
		authGroup.POST("/password-reset", r.authHandler.RequestReset)
		authGroup.POST("/password-reset/confirm", r.authHandler.ConfirmReset)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.RequireAuthenticated)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.RequireAuthenticated)
	}

	// Patient routes: any authenticated staff member can read, write access
	// excludes students, deletion is administrators only.
	writeAuthorities := make([]string, 0, len(entity.WriteRoles()))
	for _, role := range entity.WriteRoles() {
		writeAuthorities = append(writeAuthorities, role.Authority())
	}

	patientGroup := api.Group("/patients", r.authMiddleware.RequireAuthenticated)
	{
		patientGroup.GET("", r.patientHandler.List)
		patientGroup.GET("/:id", r.patientHandler.Get)
		patientGroup.POST("", r.patientHandler.Create, r.authMiddleware.RequireAuthority(writeAuthorities...))
		patientGroup.PUT("/:id", r.patientHandler.Update, r.authMiddleware.RequireAuthority(writeAuthorities...))
		patientGroup.DELETE("/:id", r.patientHandler.Delete, r.authMiddleware.RequireAuthority(entity.RoleAdmin.Authority()))
	}
}
