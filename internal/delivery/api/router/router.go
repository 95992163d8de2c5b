// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guardian/config"
	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	TeenHandler     *handler.TeenHandler
	LocationHandler *handler.LocationHandler
	GeofenceHandler *handler.GeofenceHandler
	ActivityHandler *handler.ActivityHandler
	AlertHandler    *handler.AlertHandler
	DeviceHandler   *handler.DeviceHandler
	LiveHandler     *handler.LiveHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	teenHandler     *handler.TeenHandler
	locationHandler *handler.LocationHandler
	geofenceHandler *handler.GeofenceHandler
	activityHandler *handler.ActivityHandler
	alertHandler    *handler.AlertHandler
	deviceHandler   *handler.DeviceHandler
	liveHandler     *handler.LiveHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		teenHandler:     params.TeenHandler,
		locationHandler: params.LocationHandler,
		geofenceHandler: params.GeofenceHandler,
		activityHandler: params.ActivityHandler,
		alertHandler:    params.AlertHandler,
		deviceHandler:   params.DeviceHandler,
		liveHandler:     params.LiveHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	// Live channel, token in the query string
	e.GET("/ws", r.liveHandler.Connect, r.authMiddleware.AuthenticateQuery)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Device reports carry the teen ID and no parent token
	{
		api.POST("/locations", r.locationHandler.IngestLocation)
		api.POST("/app-usage", r.activityHandler.RecordAppUsage)
		api.POST("/web-history", r.activityHandler.RecordWebVisit)
	}

	// Everything below requires a parent access token
	authenticate := r.authMiddleware.Authenticate

	teensGroup := api.Group("/teens", authenticate)
	{
		teensGroup.POST("", r.teenHandler.CreateTeen)
		teensGroup.GET("", r.teenHandler.ListTeens)
		teensGroup.GET("/:id", r.teenHandler.GetTeen)
		teensGroup.GET("/:id/pairing-qr", r.teenHandler.GetPairingQR)
		teensGroup.GET("/:id/locations", r.locationHandler.GetLocationHistory)
		teensGroup.GET("/:id/current-location", r.locationHandler.GetCurrentLocation)
		teensGroup.GET("/:id/geofences", r.geofenceHandler.ListGeofences)
		teensGroup.GET("/:id/app-usage", r.activityHandler.ListAppUsage)
		teensGroup.GET("/:id/app-controls", r.activityHandler.ListAppControls)
		teensGroup.GET("/:id/web-history", r.activityHandler.ListWebHistory)
	}

	geofencesGroup := api.Group("/geofences", authenticate)
	{
		geofencesGroup.POST("", r.geofenceHandler.CreateGeofence)
		geofencesGroup.PUT("/:id", r.geofenceHandler.ReplaceGeofence)
		geofencesGroup.DELETE("/:id", r.geofenceHandler.DeleteGeofence)
	}

	api.POST("/app-controls", r.activityHandler.SetAppControl, authenticate)

	alertsGroup := api.Group("/alerts", authenticate)
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.PUT("/:id/read", r.alertHandler.MarkAlertRead)
	}

	api.GET("/dashboard/:teen_id", r.alertHandler.GetDashboard, authenticate)

	devicesGroup := api.Group("/devices", authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetParentDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}
}
