package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/infrastructure/services"
	"github.com/doramashorts/backend/internal/interfaces/http/handlers/common"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/utils"
)

// SnapshotEventType is the first event of every entitlement stream.
const SnapshotEventType = "entitlement:snapshot"

type EntitlementHandler struct {
	*common.SSEHandlerBase
	getUseCase getEntitlementUseCase
	logger     logger.Interface
}

func NewEntitlementHandler(getUC getEntitlementUseCase, registry common.ConnRegistry, logger logger.Interface) *EntitlementHandler {
	return &EntitlementHandler{
		SSEHandlerBase: common.NewSSEHandlerBase(registry, logger),
		getUseCase:     getUC,
		logger:         logger,
	}
}

// Get godoc
// @Summary Caller's entitlement
// @Security Bearer
// @Tags entitlement
// @Produce json
// @Success 200 {object} utils.APIResponse{data=usecases.EntitlementDTO} "Entitlement"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /me/entitlement [get]
func (h *EntitlementHandler) Get(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ent, err := h.getUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ent)
}

// Stream godoc
// @Summary Entitlement change stream
// @Description Server-sent events. The first event is entitlement:snapshot with the current entitlement, followed by entitlement:changed whenever it may have changed.
// @Security Bearer
// @Tags entitlement
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 429 {object} utils.APIResponse "Too many open streams"
// @Router /me/entitlement/events [get]
func (h *EntitlementHandler) Stream(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	connID, conn := h.Register(userID)
	if conn == nil {
		utils.ErrorResponse(c, http.StatusTooManyRequests, "too many open entitlement streams")
		return
	}

	var initial []byte
	if ent, err := h.getUseCase.Execute(c.Request.Context(), userID); err == nil {
		initial, _ = services.FormatSSEEvent(SnapshotEventType, ent)
	} else {
		h.logger.Warnw("entitlement snapshot unavailable for stream", "user_id", userID, "error", err)
	}

	h.SetupSSEResponse(c)
	c.Status(http.StatusOK)
	if !h.SendInitialConnection(c, initial) {
		h.HandleInitialWriteError(connID)
		return
	}

	h.logger.Debugw("entitlement stream opened", "conn_id", connID, "user_id", userID)
	h.RunEventLoop(c, conn, connID, userID)
}
