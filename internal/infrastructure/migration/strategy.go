package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/infrastructure/persistence/models"
	"github.com/doramashorts/backend/internal/shared/logger"
)

const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang-migrate"
	StrategyAutoMigrate   = "automigrate"
)

// Strategy applies schema changes to a database.
type Strategy interface {
	Name() string
	Up(ctx context.Context, db *gorm.DB) error
	Down(ctx context.Context, db *gorm.DB, steps int) error
	// Version returns the applied schema version. Strategies without
	// versioning return 0.
	Version(ctx context.Context, db *gorm.DB) (int64, error)
}

// Models lists every persisted model, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.VideoModel{},
		&models.SubscriptionModel{},
		&models.PurchaseModel{},
	}
}

// NewStrategy picks the strategy for a driver. SQLite always uses the gorm
// models since the SQL scripts target MySQL.
func NewStrategy(name, driver string, log logger.Interface) (Strategy, error) {
	if driver == "sqlite" {
		return NewAutoMigrateStrategy(log), nil
	}

	switch name {
	case "", StrategyGoose:
		return NewGooseStrategy(log), nil
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(log), nil
	case StrategyAutoMigrate:
		return NewAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *AutoMigrateStrategy) Name() string { return StrategyAutoMigrate }

func (s *AutoMigrateStrategy) Up(ctx context.Context, db *gorm.DB) error {
	s.logger.Infow("running gorm auto-migrate", "models", len(Models()))
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}

func (s *AutoMigrateStrategy) Down(context.Context, *gorm.DB, int) error {
	return fmt.Errorf("%s does not support down migrations", StrategyAutoMigrate)
}

func (s *AutoMigrateStrategy) Version(context.Context, *gorm.DB) (int64, error) {
	return 0, nil
}
