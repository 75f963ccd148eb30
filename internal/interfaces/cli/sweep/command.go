package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	subscriptionUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/infrastructure/config"
	"github.com/doramashorts/backend/internal/infrastructure/database"
	"github.com/doramashorts/backend/internal/infrastructure/pubsub"
	"github.com/doramashorts/backend/internal/infrastructure/repository"
	httpRouter "github.com/doramashorts/backend/internal/interfaces/http"
	"github.com/doramashorts/backend/internal/shared/biztime"
	"github.com/doramashorts/backend/internal/shared/logger"
)

var (
	env     string
	notify  bool
	timeout time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Expire lapsed subscriptions once",
		Long: `Mark every active subscription whose end date has passed as expired and exit.
Useful from cron when the API server's built-in sweep is disabled.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&notify, "notify", true, "Publish entitlement changes to running API instances through Redis")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Maximum duration of the sweep")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger().Named("sweep")

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	subRepo := repository.NewSubscriptionRepository(database.Get(), log)
	expireUC := subscriptionUsecases.NewExpireSubscriptionsUseCase(subRepo, log)

	if notify {
		redisClient := httpRouter.InitRedis(cfg, log)
		defer redisClient.Close()
		// No local streams in this process; events only go to Redis.
		expireUC.SetEntitlementPublisher(pubsub.NewRedisEntitlementBus(redisClient, nil, log))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	expired, err := expireUC.Execute(ctx)
	if err != nil {
		log.Errorw("subscription sweep failed", "error", err)
		return fmt.Errorf("subscription sweep failed: %w", err)
	}

	log.Infow("subscription sweep completed", "expired", expired)
	fmt.Printf("Expired %d subscription(s)\n", expired)
	return nil
}
