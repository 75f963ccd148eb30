package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	videoUsecases "github.com/doramashorts/backend/internal/application/video/usecases"
	"github.com/doramashorts/backend/internal/shared/id"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/utils"
)

type VideoHandler struct {
	createUseCase createVideoUseCase
	deleteUseCase deleteVideoUseCase
	logger        logger.Interface
}

func NewVideoHandler(createUC createVideoUseCase, deleteUC deleteVideoUseCase, logger logger.Interface) *VideoHandler {
	return &VideoHandler{
		createUseCase: createUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type CreateVideoRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=10000"`
	ThumbnailURL string   `json:"thumbnail_url" validate:"omitempty,url,max=2048"`
	VideoURL     string   `json:"video_url" validate:"required,url,max=2048"`
	Tags         []string `json:"tags" validate:"max=20,dive,min=1,max=40"`
	PriceCents   int64    `json:"price_cents" validate:"gte=0"`
}

// Create godoc
// @Summary Create a video
// @Description price_cents=0 puts the video under the monthly plan.
// @Security Bearer
// @Tags admin-videos
// @Accept json
// @Produce json
// @Param request body CreateVideoRequest true "Video data"
// @Success 201 {object} utils.APIResponse{data=videoUsecases.VideoDTO} "Video created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden - Requires admin role"
// @Router /admin/videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	adminID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	video, err := h.createUseCase.Execute(c.Request.Context(), videoUsecases.CreateVideoCommand{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		Tags:         req.Tags,
		PriceCents:   req.PriceCents,
		CreatedBy:    adminID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, video, "Video created successfully")
}

// Delete godoc
// @Summary Delete a video
// @Description Soft delete. Purchases of the video are kept.
// @Security Bearer
// @Tags admin-videos
// @Produce json
// @Param sid path string true "Video ID (vid_xxx)"
// @Success 200 {object} utils.APIResponse "Video deleted"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden - Requires admin role"
// @Failure 404 {object} utils.APIResponse "Video not found"
// @Router /admin/videos/{sid} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixVideo, "video")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Video deleted successfully", nil)
}
