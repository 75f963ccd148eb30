package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/shared/utils"
)

// bindAndValidate decodes the JSON body into req and runs the shared
// validator. It writes the error response and returns false on failure.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}
