package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	subscriptionUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/infrastructure/config"
	"github.com/doramashorts/backend/internal/infrastructure/database"
	"github.com/doramashorts/backend/internal/infrastructure/pubsub"
	"github.com/doramashorts/backend/internal/infrastructure/repository"
	"github.com/doramashorts/backend/internal/infrastructure/scheduler"
	httpRouter "github.com/doramashorts/backend/internal/interfaces/http"
	"github.com/doramashorts/backend/internal/shared/biztime"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// The worker owns the subscription expiry sweep when API instances run with
// subscription.sweep_enabled=false.
func main() {
	// Parse environment from command line or env variable
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger().Named("worker")
	log.Infow("starting subscription expiry worker", "environment", env, "interval", cfg.Subscription.SweepInterval)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		log.Fatalw("failed to initialize business timezone", "error", err)
	}

	// Initialize database
	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	// Entitlement changes reach API instances through Redis
	redisClient := httpRouter.InitRedis(cfg, log)
	defer redisClient.Close()

	subRepo := repository.NewSubscriptionRepository(database.Get(), log)
	expireUC := subscriptionUsecases.NewExpireSubscriptionsUseCase(subRepo, log)
	expireUC.SetEntitlementPublisher(pubsub.NewRedisEntitlementBus(redisClient, nil, log))

	schedulerManager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}
	if err := schedulerManager.RegisterExpiryJob(expireUC, cfg.Subscription.SweepInterval); err != nil {
		log.Fatalw("failed to register subscription expiry job", "error", err)
	}
	schedulerManager.Start()

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)
	if err := schedulerManager.Stop(); err != nil {
		log.Errorw("scheduler stopped with error", "error", err)
	}
	log.Infow("subscription expiry worker stopped")
}
