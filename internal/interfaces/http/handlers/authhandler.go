package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/application/user/usecases"
	"github.com/doramashorts/backend/internal/interfaces/http/middleware"
	"github.com/doramashorts/backend/internal/shared/logger"
	"github.com/doramashorts/backend/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase registerUseCase
	loginUseCase    loginUseCase
	getUserUseCase  getUserUseCase
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	getUserUC getUserUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		getUserUseCase:  getUserUC,
		logger:          logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account data"
// @Success 201 {object} utils.APIResponse{data=usecases.AuthResult} "Account created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setAccessTokenCookie(c, result)
	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=usecases.AuthResult} "Logged in"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setAccessTokenCookie(c, result)
	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", result)
}

// Logout clears the access token cookie. Bearer tokens expire on their own.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary Current user
// @Security Bearer
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=usecases.UserDTO} "Current user"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	user, err := h.getUserUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", user)
}

func setAccessTokenCookie(c *gin.Context, result *usecases.AuthResult) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, result.AccessToken, int(result.ExpiresIn), "/", "", c.Request.TLS != nil, true)
}
