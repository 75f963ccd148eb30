package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/interfaces/http/handlers"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
)

// VideoRouteConfig holds dependencies for catalog routes.
type VideoRouteConfig struct {
	VideoHandler   *handlers.VideoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupVideoRoutes configures the public catalog and the access gate.
func SetupVideoRoutes(api *gin.RouterGroup, cfg *VideoRouteConfig) {
	videos := api.Group("/videos")
	{
		// Anonymous browsing is allowed; has_access needs a caller.
		videos.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.VideoHandler.List)
		videos.GET("/:sid", cfg.AuthMiddleware.OptionalAuth(), cfg.VideoHandler.Get)

		videos.GET("/:sid/playback", cfg.AuthMiddleware.RequireAuth(), cfg.VideoHandler.Playback)
		videos.POST("/:sid/purchases", cfg.AuthMiddleware.RequireAuth(), cfg.VideoHandler.Purchase)
	}
}
