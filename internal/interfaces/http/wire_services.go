package http

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	checkoutUsecases "github.com/doramashorts/backend/internal/application/checkout/usecases"
	entitlementUsecases "github.com/doramashorts/backend/internal/application/entitlement/usecases"
	purchaseUsecases "github.com/doramashorts/backend/internal/application/purchase/usecases"
	subscriptionUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/application/user/usecases"
	videoUsecases "github.com/doramashorts/backend/internal/application/video/usecases"
	"github.com/doramashorts/backend/internal/domain/checkout"
	"github.com/doramashorts/backend/internal/infrastructure/auth"
	"github.com/doramashorts/backend/internal/infrastructure/cache"
	"github.com/doramashorts/backend/internal/infrastructure/config"
	"github.com/doramashorts/backend/internal/infrastructure/email"
	"github.com/doramashorts/backend/internal/infrastructure/permission"
	"github.com/doramashorts/backend/internal/infrastructure/pubsub"
	"github.com/doramashorts/backend/internal/infrastructure/ratelimit"
	"github.com/doramashorts/backend/internal/infrastructure/scheduler"
	"github.com/doramashorts/backend/internal/infrastructure/services"
	"github.com/doramashorts/backend/internal/interfaces/http/handlers"
	adminHandlers "github.com/doramashorts/backend/internal/interfaces/http/handlers/admin"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
	shareddb "github.com/doramashorts/backend/internal/shared/db"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/services/markdown"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Auth, Permissions
// ============================================================

// initInfrastructure initializes Redis, all repositories, auth services,
// the casbin enforcer and the request middlewares.
func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	// Initialize Redis client
	c.redis = InitRedis(cfg, log)

	// Initialize all repositories
	c.repos = newRepositories(c.db, log)

	// Initialize auth services
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)

	// Initialize casbin enforcer and seed the admin policy
	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		log.Fatalw("failed to initialize permission enforcer", "error", err)
	}
	if err := enforcer.Seed(loadPolicy(cfg, log)); err != nil {
		log.Fatalw("failed to seed permission policy", "error", err)
	}
	c.enforcer = enforcer

	// Initialize middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(c.redis, cfg.RateLimit.Limit, cfg.RateLimit.Window)
		c.rateLimiter = middleware.NewRateLimiter(limiter, log)
	}
}

// InitRedis creates the Redis client and checks the connection. Redis backs
// optional concerns only, so an unreachable server is logged and the client
// is returned anyway; callers degrade per feature.
func InitRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis unavailable, continuing without rate limiting, in-flight guard and cross-instance events",
			"addr", cfg.Redis.GetAddr(),
			"error", err,
		)
		return redisClient
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

// loadPolicy reads the seed file, falling back to the built-in admin policy.
func loadPolicy(cfg *config.Config, log logger.Interface) *permission.PolicyFile {
	if cfg.Auth.PolicyPath == "" {
		return permission.DefaultPolicy()
	}
	pf, err := permission.LoadPolicyFile(cfg.Auth.PolicyPath)
	if err != nil {
		log.Warnw("failed to load policy file, using default policy",
			"path", cfg.Auth.PolicyPath,
			"error", err,
		)
		return permission.DefaultPolicy()
	}
	return pf
}

// ============================================================
// Section 2: Entitlement hub and cross-instance bus
// ============================================================

func (c *Container) initEntitlement() {
	c.entitlementHub = services.NewEntitlementHub(c.log, nil)
	c.entitlementBus = pubsub.NewRedisEntitlementBus(c.redis, c.entitlementHub, c.log)
}

// ============================================================
// Section 3: Use cases
// ============================================================

// initUseCases builds every use case and injects the optional collaborators.
func (c *Container) initUseCases() {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	txManager := shareddb.NewTransactionManager(c.db)
	markdownSvc := markdown.NewMarkdownService()
	lifecycle := subscriptionUsecases.Config{
		PeriodDays:      cfg.Subscription.PeriodDays,
		ApprovalDays:    cfg.Subscription.ApprovalDays,
		InitiateLockTTL: cfg.Subscription.InitiateLockTTL,
	}

	ucs := &allUseCases{}

	// User / Auth
	ucs.registerUC = usecases.NewRegisterUseCase(repos.userRepo, c.hasher, c.jwtSvc, log)
	ucs.loginUC = usecases.NewLoginUseCase(repos.userRepo, c.hasher, c.jwtSvc, log)
	ucs.getUserUC = usecases.NewGetUserUseCase(repos.userRepo, log)
	ucs.setRoleUC = usecases.NewSetRoleUseCase(repos.userRepo, log)

	// Subscription lifecycle
	ucs.getPlanUC = subscriptionUsecases.NewGetPlanUseCase(subscriptionUsecases.PlanConfig{
		PriceCents:      cfg.Payment.MonthlyPriceCents,
		Currency:        cfg.Payment.Currency,
		PeriodDays:      cfg.Subscription.PeriodDays,
		PixKey:          cfg.Payment.PixKey,
		WhatsAppContact: cfg.Payment.WhatsAppContact,
		WhatsAppNumber:  cfg.Payment.WhatsAppNumber,
	})

	ucs.initiateSubscriptionUC = subscriptionUsecases.NewInitiateSubscriptionUseCase(repos.subscriptionRepo, txManager, lifecycle, log)
	ucs.initiateSubscriptionUC.SetInFlightGuard(cache.NewRedisInFlightGuard(c.redis, ""))
	ucs.initiateSubscriptionUC.SetEntitlementPublisher(c.entitlementBus)
	ucs.initiateSubscriptionUC.SetSanitizer(markdownSvc)
	if cfg.Email.AdminAddress != "" {
		notifier := email.NewSMTPAdminNotifier(email.SMTPConfig{
			Host:         cfg.Email.SMTPHost,
			Port:         cfg.Email.SMTPPort,
			Username:     cfg.Email.SMTPUser,
			Password:     cfg.Email.SMTPPassword,
			FromAddress:  cfg.Email.FromAddress,
			FromName:     cfg.Email.FromName,
			AdminAddress: cfg.Email.AdminAddress,
			BaseURL:      cfg.Server.BaseURL,
		})
		ucs.initiateSubscriptionUC.SetAdminNotifier(notifier, ucs.getUserUC)
		log.Infow("admin notifications enabled", "admin_address", cfg.Email.AdminAddress)
	}

	ucs.getMySubscriptionUC = subscriptionUsecases.NewGetMySubscriptionUseCase(repos.subscriptionRepo, log)
	ucs.listPendingUC = subscriptionUsecases.NewListPendingSubscriptionsUseCase(repos.subscriptionRepo, log)

	ucs.approveSubscriptionUC = subscriptionUsecases.NewApproveSubscriptionUseCase(repos.subscriptionRepo, lifecycle, log)
	ucs.approveSubscriptionUC.SetEntitlementPublisher(c.entitlementBus)

	ucs.rejectSubscriptionUC = subscriptionUsecases.NewRejectSubscriptionUseCase(repos.subscriptionRepo, log)
	ucs.rejectSubscriptionUC.SetEntitlementPublisher(c.entitlementBus)

	ucs.activateFromCheckoutUC = subscriptionUsecases.NewActivateFromCheckoutUseCase(repos.subscriptionRepo, lifecycle, log)
	ucs.activateFromCheckoutUC.SetEntitlementPublisher(c.entitlementBus)

	ucs.expireSubscriptionsUC = subscriptionUsecases.NewExpireSubscriptionsUseCase(repos.subscriptionRepo, log)
	ucs.expireSubscriptionsUC.SetEntitlementPublisher(c.entitlementBus)

	// Per-video purchase
	ucs.initiatePurchaseUC = purchaseUsecases.NewInitiatePurchaseUseCase(repos.purchaseRepo, repos.videoRepo, log)
	ucs.markPurchasePaidUC = purchaseUsecases.NewMarkPurchasePaidUseCase(repos.purchaseRepo, log)
	ucs.markPurchasePaidUC.SetEntitlementPublisher(c.entitlementBus)

	// Checkout channel
	ucs.handleCheckoutUC = checkoutUsecases.NewHandleCheckoutMessageUseCase(
		checkout.Policy{
			CheckoutOrigin: cfg.Payment.CheckoutOrigin,
			Sentinel:       cfg.Payment.SuccessSentinel,
			HostOrigins:    cfg.Server.AllowedOrigins,
		},
		ucs.activateFromCheckoutUC,
		ucs.markPurchasePaidUC,
		cfg.Payment.ResyncDelayMS,
		log,
	)

	// Entitlement & access gate
	ucs.entitlementLoader = entitlementUsecases.NewLoader(repos.subscriptionRepo, repos.purchaseRepo)
	ucs.getEntitlementUC = entitlementUsecases.NewGetEntitlementUseCase(ucs.entitlementLoader, log)
	ucs.checkPlaybackUC = entitlementUsecases.NewCheckPlaybackUseCase(repos.videoRepo, ucs.entitlementLoader, log)

	// Catalog
	currency := cfg.Payment.Currency
	ucs.listVideosUC = videoUsecases.NewListVideosUseCase(repos.videoRepo, ucs.entitlementLoader, currency, log)
	ucs.getVideoUC = videoUsecases.NewGetVideoUseCase(repos.videoRepo, ucs.entitlementLoader, markdownSvc, currency, log)
	ucs.createVideoUC = videoUsecases.NewCreateVideoUseCase(repos.videoRepo, currency, log)
	ucs.deleteVideoUC = videoUsecases.NewDeleteVideoUseCase(repos.videoRepo, log)

	c.ucs = ucs
}

// ============================================================
// Section 4: Handlers
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		authHandler:         handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, ucs.getUserUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(ucs.getPlanUC, ucs.initiateSubscriptionUC, ucs.getMySubscriptionUC, log),
		entitlementHandler:  handlers.NewEntitlementHandler(ucs.getEntitlementUC, c.entitlementHub, log),
		checkoutHandler:     handlers.NewCheckoutHandler(ucs.handleCheckoutUC, log),
		videoHandler: handlers.NewVideoHandler(
			ucs.listVideosUC, ucs.getVideoUC, ucs.checkPlaybackUC, ucs.initiatePurchaseUC, log,
		),
		adminSubscriptionHandler: adminHandlers.NewSubscriptionHandler(
			ucs.listPendingUC, ucs.approveSubscriptionUC, ucs.rejectSubscriptionUC, log,
		),
		adminVideoHandler: adminHandlers.NewVideoHandler(ucs.createVideoUC, ucs.deleteVideoUC, log),
	}
}

// ============================================================
// Section 5: Scheduler jobs
// ============================================================

func (c *Container) initScheduler() {
	if !c.cfg.Subscription.SweepEnabled {
		c.log.Infow("in-process subscription sweep disabled")
		return
	}

	schedulerManager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		c.log.Fatalw("failed to create scheduler", "error", err)
	}
	if err := schedulerManager.RegisterExpiryJob(c.ucs.expireSubscriptionsUC, c.cfg.Subscription.SweepInterval); err != nil {
		c.log.Fatalw("failed to register subscription expiry job", "error", err)
	}
	c.schedulerManager = schedulerManager
}

// logSubscriberExit logs a bus subscriber exit at the appropriate level.
// Context cancellation during shutdown is expected and logged at INFO.
func logSubscriberExit(log logger.Interface, name string, err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		log.Infow(name+" stopped", "reason", "context canceled")
		return
	}
	log.Errorw(name+" failed", "error", err)
}
