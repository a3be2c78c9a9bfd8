// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"directory/internal/delivery/api/middleware"
	"directory/internal/delivery/api/router/handler"
	"directory/internal/domain/entity"
	"directory/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BuildingHandler     *handler.BuildingHandler
	ActivityHandler     *handler.ActivityHandler
	OrganizationHandler *handler.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	buildingHandler     *handler.BuildingHandler
	activityHandler     *handler.ActivityHandler
	organizationHandler *handler.OrganizationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		buildingHandler:     params.BuildingHandler,
		activityHandler:     params.ActivityHandler,
		organizationHandler: params.OrganizationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	apiV1 := e.Group("/api/v1")

	// Create routes need an admin token when auth is enabled.
	adminOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}

	buildingsGroup := apiV1.Group("/buildings")
	{
		buildingsGroup.GET("", r.buildingHandler.ListBuildings)
		buildingsGroup.GET("/:id", r.buildingHandler.GetBuilding)
		buildingsGroup.POST("", r.buildingHandler.CreateBuilding, adminOnly...)
		buildingsGroup.POST("/search/radius", r.buildingHandler.SearchInRadius)
		buildingsGroup.POST("/search/rectangle", r.buildingHandler.SearchInRectangle)
	}

	activitiesGroup := apiV1.Group("/activities")
	{
		activitiesGroup.GET("", r.activityHandler.ListActivities)
		activitiesGroup.GET("/:id", r.activityHandler.GetActivity)
		activitiesGroup.POST("", r.activityHandler.CreateActivity, adminOnly...)
	}

	organizationsGroup := apiV1.Group("/organizations")
	{
		organizationsGroup.GET("/:id", r.organizationHandler.GetOrganization)
		organizationsGroup.GET("/:id/card", r.organizationHandler.GetOrganizationCard)
		organizationsGroup.GET("/building/:id", r.organizationHandler.GetByBuilding)
		organizationsGroup.GET("/activity/:id", r.organizationHandler.GetByActivity)
		organizationsGroup.GET("/search/name", r.organizationHandler.SearchByName)
		organizationsGroup.GET("/search/geo", r.organizationHandler.SearchGeo)
		organizationsGroup.POST("/search/radius", r.organizationHandler.SearchInRadius)
		organizationsGroup.POST("/search/rectangle", r.organizationHandler.SearchInRectangle)
		organizationsGroup.POST("", r.organizationHandler.CreateOrganization, adminOnly...)
	}
}
