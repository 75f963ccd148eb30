package handlers

import (
	"context"

	checkoutUsecases "github.com/doramashorts/backend/internal/application/checkout/usecases"
	entUsecases "github.com/doramashorts/backend/internal/application/entitlement/usecases"
	purchaseUsecases "github.com/doramashorts/backend/internal/application/purchase/usecases"
	subdto "github.com/doramashorts/backend/internal/application/subscription/dto"
	subUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	userUsecases "github.com/doramashorts/backend/internal/application/user/usecases"
	videoUsecases "github.com/doramashorts/backend/internal/application/video/usecases"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result *userUsecases.AuthResult
	err    error
	got    userUsecases.RegisterCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd userUsecases.RegisterCommand) (*userUsecases.AuthResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *userUsecases.AuthResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd userUsecases.LoginCommand) (*userUsecases.AuthResult, error) {
	return m.result, m.err
}

type mockGetUserUC struct {
	result *userUsecases.UserDTO
	err    error
}

func (m *mockGetUserUC) Execute(ctx context.Context, userID uint) (*userUsecases.UserDTO, error) {
	return m.result, m.err
}

type mockGetPlanUC struct {
	gotEmail string
}

func (m *mockGetPlanUC) Execute(userEmail string) *subdto.PlanDTO {
	m.gotEmail = userEmail
	return &subdto.PlanDTO{PriceCents: 2000, PriceFormatted: "R$ 20,00", Currency: "BRL", PeriodDays: 30}
}

type mockInitiateSubscriptionUC struct {
	result *subUsecases.InitiateSubscriptionResult
	err    error
	got    subUsecases.InitiateSubscriptionCommand
	calls  int
}

func (m *mockInitiateSubscriptionUC) Execute(ctx context.Context, cmd subUsecases.InitiateSubscriptionCommand) (*subUsecases.InitiateSubscriptionResult, error) {
	m.got = cmd
	m.calls++
	return m.result, m.err
}

type mockGetMySubscriptionUC struct {
	result *subdto.SubscriptionDTO
	err    error
}

func (m *mockGetMySubscriptionUC) Execute(ctx context.Context, userID uint) (*subdto.SubscriptionDTO, error) {
	return m.result, m.err
}

type mockGetEntitlementUC struct {
	result *entUsecases.EntitlementDTO
	err    error
}

func (m *mockGetEntitlementUC) Execute(ctx context.Context, userID uint) (*entUsecases.EntitlementDTO, error) {
	return m.result, m.err
}

type mockHandleCheckoutUC struct {
	result *checkoutUsecases.HandleCheckoutMessageResult
	err    error
	got    checkoutUsecases.HandleCheckoutMessageCommand
	calls  int
}

func (m *mockHandleCheckoutUC) Execute(ctx context.Context, cmd checkoutUsecases.HandleCheckoutMessageCommand) (*checkoutUsecases.HandleCheckoutMessageResult, error) {
	m.got = cmd
	m.calls++
	return m.result, m.err
}

type mockListVideosUC struct {
	result *videoUsecases.ListVideosResult
	err    error
	got    videoUsecases.ListVideosQuery
}

func (m *mockListVideosUC) Execute(ctx context.Context, query videoUsecases.ListVideosQuery) (*videoUsecases.ListVideosResult, error) {
	m.got = query
	return m.result, m.err
}

type mockGetVideoUC struct {
	result *videoUsecases.VideoDTO
	err    error
	got    videoUsecases.GetVideoQuery
}

func (m *mockGetVideoUC) Execute(ctx context.Context, query videoUsecases.GetVideoQuery) (*videoUsecases.VideoDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockCheckPlaybackUC struct {
	result *entUsecases.PlaybackResult
	err    error
	calls  int
}

func (m *mockCheckPlaybackUC) Execute(ctx context.Context, cmd entUsecases.CheckPlaybackCommand) (*entUsecases.PlaybackResult, error) {
	m.calls++
	return m.result, m.err
}

type mockInitiatePurchaseUC struct {
	result *purchaseUsecases.InitiatePurchaseResult
	err    error
}

func (m *mockInitiatePurchaseUC) Execute(ctx context.Context, cmd purchaseUsecases.InitiatePurchaseCommand) (*purchaseUsecases.InitiatePurchaseResult, error) {
	return m.result, m.err
}
