// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"causes/config"
	"causes/internal/delivery/http/middleware"
	"causes/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CauseHandler     *handler.CauseHandler
	AuthoringHandler *handler.AuthoringHandler
	SchemaHandler    *handler.SchemaHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	causeHandler     *handler.CauseHandler
	authoringHandler *handler.AuthoringHandler
	schemaHandler    *handler.SchemaHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		causeHandler:     params.CauseHandler,
		authoringHandler: params.AuthoringHandler,
		schemaHandler:    params.SchemaHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Schema registry routes: public, clients render forms from these
	schemasGroup := apiV1.Group("/schemas")
	{
		schemasGroup.GET("", r.schemaHandler.ListSchemas)
		schemasGroup.GET("/:category", r.schemaHandler.GetCategorySchema)
	}

	// Cause routes: reads are public, writes require authentication
	causesGroup := apiV1.Group("/causes")
	{
		causesGroup.GET("", r.causeHandler.ListCauses)
		causesGroup.GET("/:id", r.causeHandler.GetCause)
		causesGroup.GET("/:id/qr", r.causeHandler.ShareQR)

		causesGroup.POST("", r.causeHandler.CreateCause, r.authMiddleware.Authenticate)
		causesGroup.PUT("/:id", r.causeHandler.UpdateCause, r.authMiddleware.Authenticate)
		causesGroup.POST("/:id/like", r.causeHandler.LikeCause, r.authMiddleware.Authenticate)
	}

	// Authoring workflow routes, all tied to the authenticated creator
	authoringGroup := apiV1.Group("/authoring/sessions")
	authoringGroup.Use(r.authMiddleware.Authenticate)
	{
		authoringGroup.POST("", r.authoringHandler.StartSession)
		authoringGroup.GET("/:id", r.authoringHandler.GetSession)
		authoringGroup.DELETE("/:id", r.authoringHandler.CloseSession)

		authoringGroup.PUT("/:id/category", r.authoringHandler.SelectCategory)
		authoringGroup.PUT("/:id/direction", r.authoringHandler.SelectDirection)
		authoringGroup.PUT("/:id/common", r.authoringHandler.SetCommonFields)
		authoringGroup.PUT("/:id/details", r.authoringHandler.SetDetailFields)
		authoringGroup.POST("/:id/subrecords", r.authoringHandler.EditSubRecords)
		authoringGroup.PUT("/:id/images", r.authoringHandler.SetImages)

		authoringGroup.POST("/:id/advance", r.authoringHandler.Advance)
		authoringGroup.POST("/:id/back", r.authoringHandler.Back)
		authoringGroup.POST("/:id/submit", r.authoringHandler.Submit)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		// Test routes that require authentication
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
