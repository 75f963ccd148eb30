package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/interfaces/http/handlers"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil when rate limiting is disabled
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", limit(cfg.RateLimiter), cfg.AuthHandler.Register)
		auth.POST("/login", limit(cfg.RateLimiter), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}

// limit returns the rate limiter, or a pass-through when none is configured.
func limit(rl *middleware.RateLimiter) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rl.Limit()
}
