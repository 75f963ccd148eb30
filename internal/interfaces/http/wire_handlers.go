package http

import (
	"github.com/doramashorts/backend/internal/interfaces/http/handlers"
	adminHandlers "github.com/doramashorts/backend/internal/interfaces/http/handlers/admin"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	authHandler *handlers.AuthHandler

	// Subscription
	subscriptionHandler *handlers.SubscriptionHandler

	// Entitlement & checkout
	entitlementHandler *handlers.EntitlementHandler
	checkoutHandler    *handlers.CheckoutHandler

	// Catalog
	videoHandler *handlers.VideoHandler

	// Admin
	adminSubscriptionHandler *adminHandlers.SubscriptionHandler
	adminVideoHandler        *adminHandlers.VideoHandler
}
