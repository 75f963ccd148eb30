package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/application/checkout/usecases"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/utils"
)

type handleCheckoutMessageUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleCheckoutMessageCommand) (*usecases.HandleCheckoutMessageResult, error)
}

// CheckoutHandler receives the checkout frame's postMessage relayed by the
// host page.
type CheckoutHandler struct {
	handleUseCase handleCheckoutMessageUseCase
	logger        logger.Interface
}

func NewCheckoutHandler(handleUC handleCheckoutMessageUseCase, logger logger.Interface) *CheckoutHandler {
	return &CheckoutHandler{
		handleUseCase: handleUC,
		logger:        logger,
	}
}

// CheckoutMessageRequest is the relayed MessageEvent. PurchaseID names a
// pending per-video purchase; without it the message settles the monthly plan.
type CheckoutMessageRequest struct {
	Origin     string `json:"origin" validate:"max=255"`
	Data       string `json:"data" validate:"max=1024"`
	PurchaseID string `json:"purchase_id" validate:"max=64"`
}

// HandleMessage godoc
// @Summary Relay a checkout frame message
// @Description Messages from an untrusted origin, relayed by an untrusted host or carrying an unknown payload are dropped with 202 and accepted=false.
// @Security Bearer
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CheckoutMessageRequest true "Relayed message"
// @Success 200 {object} utils.APIResponse{data=usecases.HandleCheckoutMessageResult} "Payment applied"
// @Success 202 {object} utils.APIResponse{data=usecases.HandleCheckoutMessageResult} "Message dropped"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "No pending request"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /checkout/messages [post]
func (h *CheckoutHandler) HandleMessage(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CheckoutMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || utils.ValidateStruct(&req) != nil {
		// Malformed relays are indistinguishable from foreign ones.
		utils.SuccessResponse(c, http.StatusAccepted, "", &usecases.HandleCheckoutMessageResult{})
		return
	}

	result, err := h.handleUseCase.Execute(c.Request.Context(), usecases.HandleCheckoutMessageCommand{
		UserID:      userID,
		Origin:      req.Origin,
		Data:        req.Data,
		PurchaseSID: req.PurchaseID,
		RelayOrigin: c.GetHeader("Origin"),
	})
	if err != nil {
		h.logger.Errorw("failed to apply checkout success", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Accepted {
		utils.SuccessResponse(c, http.StatusAccepted, "", result)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", result)
}
