package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/interfaces/http/handlers"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
)

// EntitlementRouteConfig holds dependencies for entitlement and checkout routes.
type EntitlementRouteConfig struct {
	EntitlementHandler *handlers.EntitlementHandler
	CheckoutHandler    *handlers.CheckoutHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupEntitlementRoutes configures the entitlement snapshot, its SSE stream
// and the checkout relay endpoint.
func SetupEntitlementRoutes(api *gin.RouterGroup, cfg *EntitlementRouteConfig) {
	me := api.Group("/me")
	me.Use(cfg.AuthMiddleware.RequireAuth())
	{
		me.GET("/entitlement", cfg.EntitlementHandler.Get)
		me.GET("/entitlement/events", cfg.EntitlementHandler.Stream)
	}

	checkout := api.Group("/checkout")
	checkout.Use(cfg.AuthMiddleware.RequireAuth())
	{
		checkout.POST("/messages", cfg.CheckoutHandler.HandleMessage)
	}
}
