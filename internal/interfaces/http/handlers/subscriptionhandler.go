package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subdto "github.com/doramashorts/backend/internal/application/subscription/dto"
	"github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/shared/constants"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/utils"
)

var _ = subdto.SubscriptionDTO{}

// SubscriptionHandler serves the monthly plan and the caller's payment
// requests.
type SubscriptionHandler struct {
	getPlanUseCase  getPlanUseCase
	initiateUseCase initiateSubscriptionUseCase
	getMineUseCase  getMySubscriptionUseCase
	logger          logger.Interface
}

func NewSubscriptionHandler(
	getPlanUC getPlanUseCase,
	initiateUC initiateSubscriptionUseCase,
	getMineUC getMySubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		getPlanUseCase:  getPlanUC,
		initiateUseCase: initiateUC,
		getMineUseCase:  getMineUC,
		logger:          logger,
	}
}

// InitiateSubscriptionRequest carries the optional manual-flow evidence.
type InitiateSubscriptionRequest struct {
	WhatsAppNumber  string `json:"whatsapp_number" validate:"omitempty,whatsapp"`
	PaymentProofURL string `json:"payment_proof_url" validate:"omitempty,url,max=2048"`
}

// GetPlan godoc
// @Summary Monthly plan and payment instructions
// @Description Price, PIX key and WhatsApp contact. The WhatsApp link is prefilled with the caller's email when logged in.
// @Tags subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse{data=subdto.PlanDTO} "Plan"
// @Router /subscriptions/plan [get]
func (h *SubscriptionHandler) GetPlan(c *gin.Context) {
	plan := h.getPlanUseCase.Execute(c.GetString(constants.ContextKeyUserEmail))
	utils.SuccessResponse(c, http.StatusOK, "", plan)
}

// Initiate godoc
// @Summary Submit a payment request
// @Description Creates or reuses the caller's pending request. An active subscription is returned unchanged with already_active=true.
// @Security Bearer
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body InitiateSubscriptionRequest false "Payment evidence"
// @Success 201 {object} utils.APIResponse{data=usecases.InitiateSubscriptionResult} "Request created"
// @Success 200 {object} utils.APIResponse{data=usecases.InitiateSubscriptionResult} "Existing request reused"
// @Failure 400 {object} utils.APIResponse "Invalid evidence"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 409 {object} utils.APIResponse "Request already in progress"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Initiate(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req InitiateSubscriptionRequest
	if c.Request.ContentLength != 0 && !bindAndValidate(c, &req) {
		return
	}

	result, err := h.initiateUseCase.Execute(c.Request.Context(), usecases.InitiateSubscriptionCommand{
		UserID:          userID,
		WhatsAppNumber:  req.WhatsAppNumber,
		PaymentProofURL: req.PaymentProofURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	switch {
	case result.Created:
		utils.CreatedResponse(c, result, "Payment request submitted")
	case result.AlreadyActive:
		utils.SuccessResponse(c, http.StatusOK, "Subscription already active", result)
	default:
		utils.SuccessResponse(c, http.StatusOK, "Payment request updated", result)
	}
}

// GetMine godoc
// @Summary Caller's latest subscription
// @Description Status is the effective status with lazy expiry applied. data is null when the caller never subscribed.
// @Security Bearer
// @Tags subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse{data=subdto.SubscriptionDTO} "Latest subscription"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /me/subscription [get]
func (h *SubscriptionHandler) GetMine(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	sub, err := h.getMineUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", sub)
}
