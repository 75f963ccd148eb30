package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/infrastructure/permission"
	adminHandlers "github.com/doramashorts/backend/internal/interfaces/http/handlers/admin"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	SubscriptionHandler  *adminHandlers.SubscriptionHandler
	VideoHandler         *adminHandlers.VideoHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	// Admin approval workflow
	adminSubscriptions := api.Group("/admin/subscriptions")
	adminSubscriptions.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscriptions, permission.ActionReview),
	)
	{
		adminSubscriptions.GET("/pending", cfg.SubscriptionHandler.ListPending)
		adminSubscriptions.POST("/:sid/approve", cfg.SubscriptionHandler.Approve)
		adminSubscriptions.POST("/:sid/reject", cfg.SubscriptionHandler.Reject)
	}

	// Catalog management
	adminVideos := api.Group("/admin/videos")
	adminVideos.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceVideos, permission.ActionManage),
	)
	{
		adminVideos.POST("", cfg.VideoHandler.Create)
		adminVideos.DELETE("/:sid", cfg.VideoHandler.Delete)
	}
}
