// Package admin holds the handlers behind the admin capability.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subdto "github.com/doramashorts/backend/internal/application/subscription/dto"
	subUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/shared/id"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/utils"
)

// SubscriptionHandler is the admin approval workflow.
type SubscriptionHandler struct {
	listPendingUseCase listPendingSubscriptionsUseCase
	approveUseCase     reviewSubscriptionUseCase
	rejectUseCase      reviewSubscriptionUseCase
	logger             logger.Interface
}

func NewSubscriptionHandler(
	listPendingUC listPendingSubscriptionsUseCase,
	approveUC reviewSubscriptionUseCase,
	rejectUC reviewSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		listPendingUseCase: listPendingUC,
		approveUseCase:     approveUC,
		rejectUseCase:      rejectUC,
		logger:             logger,
	}
}

// ReviewResponse is the reviewed record plus the refreshed pending list.
type ReviewResponse struct {
	Subscription *subdto.SubscriptionDTO   `json:"subscription"`
	Applied      bool                      `json:"applied"`
	Pending      []*subdto.SubscriptionDTO `json:"pending"`
}

// ListPending godoc
// @Summary List pending payment requests
// @Security Bearer
// @Tags admin-subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]subdto.SubscriptionDTO} "Pending requests, most recent first"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden - Requires admin role"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /admin/subscriptions/pending [get]
func (h *SubscriptionHandler) ListPending(c *gin.Context) {
	pending, err := h.listPendingUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", pending)
}

// Approve godoc
// @Summary Approve a payment request
// @Description pending to active. A request that is no longer pending is returned unchanged with applied=false.
// @Security Bearer
// @Tags admin-subscriptions
// @Produce json
// @Param sid path string true "Subscription ID (sub_xxx)"
// @Success 200 {object} utils.APIResponse{data=ReviewResponse} "Reviewed"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden - Requires admin role"
// @Failure 404 {object} utils.APIResponse "Subscription not found"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /admin/subscriptions/{sid}/approve [post]
func (h *SubscriptionHandler) Approve(c *gin.Context) {
	h.review(c, h.approveUseCase, "Subscription approved")
}

// Reject godoc
// @Summary Reject a payment request
// @Description pending to cancelled. A request that is no longer pending is returned unchanged with applied=false.
// @Security Bearer
// @Tags admin-subscriptions
// @Produce json
// @Param sid path string true "Subscription ID (sub_xxx)"
// @Success 200 {object} utils.APIResponse{data=ReviewResponse} "Reviewed"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden - Requires admin role"
// @Failure 404 {object} utils.APIResponse "Subscription not found"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /admin/subscriptions/{sid}/reject [post]
func (h *SubscriptionHandler) Reject(c *gin.Context) {
	h.review(c, h.rejectUseCase, "Subscription rejected")
}

func (h *SubscriptionHandler) review(c *gin.Context, uc reviewSubscriptionUseCase, appliedMsg string) {
	adminID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixSubscription, "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := uc.Execute(c.Request.Context(), subUsecases.ReviewSubscriptionCommand{
		SubscriptionSID: sid,
		AdminID:         adminID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := &ReviewResponse{
		Subscription: result.Subscription,
		Applied:      result.Applied,
	}
	pending, err := h.listPendingUseCase.Execute(c.Request.Context())
	if err != nil {
		// The review is committed; the client can refetch the list.
		h.logger.Warnw("failed to refresh pending list after review", "subscription_sid", sid, "error", err)
	} else {
		resp.Pending = pending
	}

	msg := appliedMsg
	if !result.Applied {
		msg = "Subscription already resolved"
	}
	utils.SuccessResponse(c, http.StatusOK, msg, resp)
}
