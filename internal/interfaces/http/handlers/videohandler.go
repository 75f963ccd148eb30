package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	entUsecases "github.com/doramashorts/backend/internal/application/entitlement/usecases"
	purchaseUsecases "github.com/doramashorts/backend/internal/application/purchase/usecases"
	"github.com/doramashorts/backend/internal/application/video/usecases"
	"github.com/doramashorts/backend/internal/shared/id"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/utils"
)

// ErrorTypeContentLocked marks a playback refusal caused by missing entitlement.
const ErrorTypeContentLocked = "content_locked"

// VideoHandler serves the public catalog and the content access gate.
type VideoHandler struct {
	listUseCase     listVideosUseCase
	getUseCase      getVideoUseCase
	playbackUseCase checkPlaybackUseCase
	purchaseUseCase initiatePurchaseUseCase
	logger          logger.Interface
}

func NewVideoHandler(
	listUC listVideosUseCase,
	getUC getVideoUseCase,
	playbackUC checkPlaybackUseCase,
	purchaseUC initiatePurchaseUseCase,
	logger logger.Interface,
) *VideoHandler {
	return &VideoHandler{
		listUseCase:     listUC,
		getUseCase:      getUC,
		playbackUseCase: playbackUC,
		purchaseUseCase: purchaseUC,
		logger:          logger,
	}
}

// List godoc
// @Summary List the catalog
// @Description Active videos, newest first. has_access is filled for logged-in callers.
// @Tags videos
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]usecases.VideoDTO}} "Videos"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	userID, _ := utils.GetUserID(c)
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListVideosQuery{
		UserID:   userID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Videos, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary Video detail
// @Description Description rendered as sanitized HTML plus the lock reason for the caller.
// @Tags videos
// @Produce json
// @Param sid path string true "Video ID (vid_xxx)"
// @Success 200 {object} utils.APIResponse{data=usecases.VideoDTO} "Video"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Router /videos/{sid} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixVideo, "video")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, _ := utils.GetUserID(c)

	dto, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetVideoQuery{
		UserID:   userID,
		VideoSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// Playback godoc
// @Summary Resolve the playable URL
// @Description Returns video_url only when the caller is entitled. A locked video answers 403 with locked=true and a reason.
// @Security Bearer
// @Tags videos
// @Produce json
// @Param sid path string true "Video ID (vid_xxx)"
// @Success 200 {object} utils.APIResponse{data=entUsecases.PlaybackResult} "Playable"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse{data=entUsecases.PlaybackResult} "Locked"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Failure 503 {object} utils.APIResponse "Store unavailable"
// @Router /videos/{sid}/playback [get]
func (h *VideoHandler) Playback(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "login required to watch")
		return
	}
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixVideo, "video")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.playbackUseCase.Execute(c.Request.Context(), entUsecases.CheckPlaybackCommand{
		UserID:   userID,
		VideoSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Locked {
		c.JSON(http.StatusForbidden, utils.APIResponse{
			Success: false,
			Data:    result,
			Error: &utils.ErrorInfo{
				Type:    ErrorTypeContentLocked,
				Message: string(result.Reason),
			},
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Purchase godoc
// @Summary Start a per-video purchase
// @Description Idempotent: a pending purchase is reused and a paid one is reported with already_paid=true.
// @Security Bearer
// @Tags videos
// @Produce json
// @Param sid path string true "Video ID (vid_xxx)"
// @Success 201 {object} utils.APIResponse{data=purchaseUsecases.InitiatePurchaseResult} "Purchase created"
// @Success 200 {object} utils.APIResponse{data=purchaseUsecases.InitiatePurchaseResult} "Existing purchase"
// @Failure 400 {object} utils.APIResponse "Video is covered by the monthly plan"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Router /videos/{sid}/purchases [post]
func (h *VideoHandler) Purchase(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "login required to purchase")
		return
	}
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixVideo, "video")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.purchaseUseCase.Execute(c.Request.Context(), purchaseUsecases.InitiatePurchaseCommand{
		UserID:   userID,
		VideoSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Created {
		utils.CreatedResponse(c, result, "Purchase created")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
