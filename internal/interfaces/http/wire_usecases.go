package http

import (
	checkoutUsecases "github.com/doramashorts/backend/internal/application/checkout/usecases"
	entitlementUsecases "github.com/doramashorts/backend/internal/application/entitlement/usecases"
	purchaseUsecases "github.com/doramashorts/backend/internal/application/purchase/usecases"
	subscriptionUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/application/user/usecases"
	videoUsecases "github.com/doramashorts/backend/internal/application/video/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC *usecases.RegisterUseCase
	loginUC    *usecases.LoginUseCase
	getUserUC  *usecases.GetUserUseCase
	setRoleUC  *usecases.SetRoleUseCase

	// Subscription lifecycle
	getPlanUC              *subscriptionUsecases.GetPlanUseCase
	initiateSubscriptionUC *subscriptionUsecases.InitiateSubscriptionUseCase
	getMySubscriptionUC    *subscriptionUsecases.GetMySubscriptionUseCase
	listPendingUC          *subscriptionUsecases.ListPendingSubscriptionsUseCase
	approveSubscriptionUC  *subscriptionUsecases.ApproveSubscriptionUseCase
	rejectSubscriptionUC   *subscriptionUsecases.RejectSubscriptionUseCase
	activateFromCheckoutUC *subscriptionUsecases.ActivateFromCheckoutUseCase
	expireSubscriptionsUC  *subscriptionUsecases.ExpireSubscriptionsUseCase

	// Per-video purchase
	initiatePurchaseUC *purchaseUsecases.InitiatePurchaseUseCase
	markPurchasePaidUC *purchaseUsecases.MarkPurchasePaidUseCase

	// Checkout channel
	handleCheckoutUC *checkoutUsecases.HandleCheckoutMessageUseCase

	// Entitlement & access gate
	entitlementLoader *entitlementUsecases.Loader
	getEntitlementUC  *entitlementUsecases.GetEntitlementUseCase
	checkPlaybackUC   *entitlementUsecases.CheckPlaybackUseCase

	// Catalog
	listVideosUC  *videoUsecases.ListVideosUseCase
	getVideoUC    *videoUsecases.GetVideoUseCase
	createVideoUC *videoUsecases.CreateVideoUseCase
	deleteVideoUC *videoUsecases.DeleteVideoUseCase
}
