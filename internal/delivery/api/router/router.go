// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pixelforge/config"
	"pixelforge/internal/delivery/api/middleware"
	"pixelforge/internal/delivery/api/router/handler"
	"pixelforge/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	SubscriptionHandler *handler.SubscriptionHandler
	ImageHandler        *handler.ImageHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
	Metrics             *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	subscriptionHandler *handler.SubscriptionHandler
	imageHandler        *handler.ImageHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		profileHandler:      params.ProfileHandler,
		subscriptionHandler: params.SubscriptionHandler,
		imageHandler:        params.ImageHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/user")
	{
		userGroup.POST("/register", r.authHandler.Register)
		userGroup.PUT("/profile/update", r.profileHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	// Logout stays public so an unknown or expired token gets a soft Failed result.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	subscriptionGroup := e.Group("/subscription")
	subscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionGroup.GET("/details", r.subscriptionHandler.Details)
		subscriptionGroup.POST("/upgrade", r.subscriptionHandler.Upgrade)
	}

	imageGroup := e.Group("/image")
	imageGroup.Use(r.authMiddleware.Authenticate)
	{
		imageGroup.POST("/upload", r.imageHandler.Upload)
		imageGroup.POST("/crop", r.imageHandler.Crop)
		imageGroup.POST("/resize", r.imageHandler.Resize)
		imageGroup.GET("/:id/qrcode", r.imageHandler.ShareQRCode)
	}

	e.GET(r.config.Storage.PublicPathPrefix+"/:name", r.imageHandler.ServeFile)
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
