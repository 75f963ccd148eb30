package http

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/infrastructure/auth"
	"github.com/doramashorts/backend/internal/infrastructure/config"
	"github.com/doramashorts/backend/internal/infrastructure/permission"
	"github.com/doramashorts/backend/internal/infrastructure/pubsub"
	"github.com/doramashorts/backend/internal/infrastructure/scheduler"
	"github.com/doramashorts/backend/internal/infrastructure/services"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases, handlers,
// and background services. It is responsible for wiring everything together and
// providing a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter // nil when disabled

	// Auth & permission infrastructure
	jwtSvc   *auth.JWTService
	hasher   *auth.BcryptPasswordHasher
	enforcer *permission.Enforcer

	// Entitlement fan-out: the hub serves local SSE streams and the bus relays
	// changes between API instances through Redis.
	entitlementHub    *services.EntitlementHub
	entitlementBus    *pubsub.RedisEntitlementBus
	entitlementCancel context.CancelFunc
	entitlementMu     sync.Mutex

	// Background jobs
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a new Container with all dependencies wired together.
// Sections run in dependency order.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Permissions
	c.initInfrastructure()

	// Section 2: Entitlement hub and cross-instance bus
	c.initEntitlement()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers
	c.initHandlers()

	// Section 5: Scheduler jobs
	c.initScheduler()

	return c
}
