package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/doramashorts/backend/docs"
	subscriptionUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/application/user/usecases"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
	"github.com/doramashorts/backend/internal/interfaces/http/routes"
	"github.com/doramashorts/backend/internal/shared/goroutine"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.hdlrs.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
		RateLimiter:         r.rateLimiter,
	})

	routes.SetupEntitlementRoutes(api, &routes.EntitlementRouteConfig{
		EntitlementHandler: r.hdlrs.entitlementHandler,
		CheckoutHandler:    r.hdlrs.checkoutHandler,
		AuthMiddleware:     r.authMiddleware,
	})

	routes.SetupVideoRoutes(api, &routes.VideoRouteConfig{
		VideoHandler:   r.hdlrs.videoHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		SubscriptionHandler:  r.hdlrs.adminSubscriptionHandler,
		VideoHandler:         r.hdlrs.adminVideoHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// StartBackground starts the entitlement bus subscriber and the expiry
// scheduler. Both stop on Shutdown.
func (r *Router) StartBackground(ctx context.Context) {
	r.entitlementMu.Lock()
	if r.entitlementCancel == nil {
		busCtx, cancel := context.WithCancel(ctx)
		r.entitlementCancel = cancel
		goroutine.SafeGo(r.log, "entitlement-bus", func() {
			logSubscriberExit(r.log, "entitlement bus subscriber", r.entitlementBus.Run(busCtx))
		})
	}
	r.entitlementMu.Unlock()

	if r.schedulerManager != nil && !r.schedulerManager.IsStarted() {
		r.schedulerManager.Start()
	}
}

// Shutdown gracefully shuts down all background services
func (r *Router) Shutdown() {
	// Stop the expiry scheduler first so no sweep publishes into a closed hub
	if r.schedulerManager != nil {
		if err := r.schedulerManager.Stop(); err != nil {
			r.log.Warnw("failed to stop scheduler", "error", err)
		}
	}

	r.entitlementMu.Lock()
	if r.entitlementCancel != nil {
		r.entitlementCancel()
		r.entitlementCancel = nil
	}
	r.entitlementMu.Unlock()

	// Close all SSE connections so HTTP server shutdown can proceed quickly
	if r.entitlementHub != nil {
		r.entitlementHub.Shutdown()
	}

	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			r.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

// GetSetRoleUseCase returns the role management use case for the admin CLI.
func (r *Router) GetSetRoleUseCase() *usecases.SetRoleUseCase {
	return r.ucs.setRoleUC
}

// GetExpireSubscriptionsUseCase returns the sweep use case for one-shot runs.
func (r *Router) GetExpireSubscriptionsUseCase() *subscriptionUsecases.ExpireSubscriptionsUseCase {
	return r.ucs.expireSubscriptionsUC
}
