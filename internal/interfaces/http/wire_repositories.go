package http

import (
	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/domain/purchase"
	"github.com/doramashorts/backend/internal/domain/subscription"
	"github.com/doramashorts/backend/internal/domain/user"
	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/infrastructure/repository"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo         user.Repository
	subscriptionRepo subscription.Repository
	purchaseRepo     purchase.Repository
	videoRepo        video.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		subscriptionRepo: repository.NewSubscriptionRepository(db, log),
		purchaseRepo:     repository.NewPurchaseRepository(db, log),
		videoRepo:        repository.NewVideoRepository(db, log),
	}
}
