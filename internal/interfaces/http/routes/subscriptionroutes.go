package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/interfaces/http/handlers"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for the subscriber side of the
// monthly plan.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         *middleware.RateLimiter
}

// SetupSubscriptionRoutes configures plan and subscription routes.
func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.GET("/plan", cfg.AuthMiddleware.OptionalAuth(), cfg.SubscriptionHandler.GetPlan)
		subscriptions.POST("", cfg.AuthMiddleware.RequireAuth(), limit(cfg.RateLimiter), cfg.SubscriptionHandler.Initiate)
	}

	me := api.Group("/me")
	me.Use(cfg.AuthMiddleware.RequireAuth())
	{
		me.GET("/subscription", cfg.SubscriptionHandler.GetMine)
	}
}
